package mongo

import "errors"

// Domain-specific MongoDB errors. Use errors.Is() to check error types.
var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongodb")
	ErrEmptyConnectionURL     = errors.New("empty mongodb connection URL")
	ErrHealthcheckFailed      = errors.New("mongodb healthcheck failed")
)
