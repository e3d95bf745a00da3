package sinks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/msprojectmerger/landing/svc/collect"
)

const DefaultOpenSearchIndex = "email-submissions"

type searchDocument struct {
	collect.Record
	ReceivedAt time.Time `json:"received_at"`
}

// OpenSearch indexes one document per record so submissions can be searched
// and aggregated by platform.
type OpenSearch struct {
	transport opensearchapi.Transport
	index     string
	now       func() time.Time
}

// NewOpenSearch takes an *opensearch.Client or any other Transport.
func NewOpenSearch(transport opensearchapi.Transport, index string) *OpenSearch {
	if index == "" {
		index = DefaultOpenSearchIndex
	}
	return &OpenSearch{transport: transport, index: index, now: time.Now}
}

func (s *OpenSearch) Accept(ctx context.Context, rec collect.Record) error {
	body, err := json.Marshal(searchDocument{Record: rec, ReceivedAt: s.now().UTC()})
	if err != nil {
		return errors.Join(ErrEncodeRecord, err)
	}

	res, err := opensearchapi.IndexRequest{
		Index: s.index,
		Body:  bytes.NewReader(body),
	}.Do(ctx, s.transport)
	if err != nil {
		return errors.Join(ErrStoreRecord, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("%w: index %s: %s: %s", ErrStoreRecord, s.index, res.Status(), msg)
	}
	return nil
}
