package ips

import "errors"

var (
	// ErrEmptyPool is returned when an entry is requested for a category
	// whose catalog pool has no items. It is a fatal configuration error:
	// the batch is aborted rather than the category silently skipped.
	ErrEmptyPool = errors.New("empty catalog pool")

	// ErrFinalized is returned when a builder is used after Finalize.
	ErrFinalized = errors.New("builder already finalized")
)
