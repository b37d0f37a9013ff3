package entity

import "errors"

// Standard domain errors. Only transport and credential failures cross the
// core boundary; stage-1 parse failures are absorbed by the analyzer.
var (
	ErrMissingCredential  = errors.New("groq api key is required")
	ErrCatalogUnavailable = errors.New("product catalog is unavailable")
	ErrModelRequestFailed = errors.New("model request failed")
	ErrRateLimitExceeded  = errors.New("rate limit exceeded: too many requests")
	ErrInvalidRequest     = errors.New("invalid request parameters")
)
