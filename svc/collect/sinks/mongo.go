package sinks

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/msprojectmerger/landing/svc/collect"
)

const DefaultMongoCollection = "email_submissions"

// inserter is satisfied by *mongo.Collection.
type inserter interface {
	InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error)
}

type submissionDocument struct {
	collect.Record `bson:",inline"`
	ReceivedAt     time.Time `bson:"received_at"`
}

// Mongo stores one document per record.
type Mongo struct {
	coll inserter
	now  func() time.Time
}

func NewMongo(coll inserter) *Mongo {
	return &Mongo{coll: coll, now: time.Now}
}

func (s *Mongo) Accept(ctx context.Context, rec collect.Record) error {
	doc := submissionDocument{Record: rec, ReceivedAt: s.now().UTC()}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return errors.Join(ErrStoreRecord, err)
	}
	return nil
}
