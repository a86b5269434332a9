package billing

import "errors"

var (
	ErrMissingBaseURL   = errors.New("billing API base URL is required")
	ErrFetchFailed      = errors.New("failed to fetch subscription from billing API")
	ErrMalformedPayload = errors.New("malformed subscription payload")
)
