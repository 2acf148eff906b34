package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrAnalysisUnavailable = errors.New("analysis unavailable")
	ErrBatchTimeout        = errors.New("batch deadline exceeded")
	ErrCacheUnavailable    = errors.New("cache unavailable")
	ErrInvalidConfig       = errors.New("invalid configuration")
)
