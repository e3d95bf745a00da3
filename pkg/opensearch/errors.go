package opensearch

import "errors"

var (
	ErrConnectionFailed  = errors.New("opensearch connection failed")
	ErrNoAddresses       = errors.New("no opensearch addresses configured")
	ErrHealthcheckFailed = errors.New("opensearch healthcheck failed")
)
