package snapshot

import "errors"

var (
	ErrFetchFailed    = errors.New("subscription snapshot fetch failed")
	ErrNilRedisClient = errors.New("redis client is required")
	ErrEmptyCacheKey  = errors.New("cache key cannot be empty")
)
