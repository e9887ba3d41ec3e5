package completion

import "errors"

var (
	// ErrAllModelsFailed indicates every candidate model failed.
	ErrAllModelsFailed = errors.New("all candidate models failed")

	// ErrChainTimeout indicates the chain deadline expired before a model answered.
	ErrChainTimeout = errors.New("completion chain timed out")
)
