package sinks

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/msprojectmerger/landing/pkg/pg"
	"github.com/msprojectmerger/landing/svc/collect"
)

// Migrations holds the goose migrations for the postgres sink.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of Migrations passed to pg.Migrate.
const MigrationsDir = "migrations"

const DefaultPostgresTable = "email_submissions"

// execer is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Postgres inserts one row per record.
type Postgres struct {
	db    execer
	query string
}

func NewPostgres(db execer, table string) *Postgres {
	if table == "" {
		table = DefaultPostgresTable
	}
	return &Postgres{
		db: db,
		query: fmt.Sprintf("INSERT INTO %s (email, platform, client_ts) VALUES ($1, $2, $3)",
			pgx.Identifier{table}.Sanitize()),
	}
}

func (s *Postgres) Accept(ctx context.Context, rec collect.Record) error {
	tag, err := s.db.Exec(ctx, s.query, rec.Email, rec.Platform, rec.Timestamp)
	if pg.IsUndefinedTableError(err) {
		return errors.Join(ErrStoreRecord, ErrSchemaMissing, err)
	}
	if err != nil {
		return errors.Join(ErrStoreRecord, err)
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("%w: %d rows inserted", ErrStoreRecord, tag.RowsAffected())
	}
	return nil
}
