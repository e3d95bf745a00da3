package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("mongo: connect failed")
	ErrHealthcheckFailed      = errors.New("mongo: primary not reachable")
	ErrEmptyDatabase          = errors.New("mongo: MONGODB_DATABASE is empty")
)
