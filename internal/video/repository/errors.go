package repository

import "errors"

var (
	ErrCacheMiss      = errors.New("repository: cache miss")
	ErrCacheGetFailed = errors.New("repository: failed to read cache")
	ErrCacheSetFailed = errors.New("repository: failed to set cache")
)
