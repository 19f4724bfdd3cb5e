package domain

import (
	"context"
	"errors"
)

// ErrBloomNotReady is returned by BloomRepository.Exists when the stored
// filter is incomplete (never warmed up, flushed or evicted).
var ErrBloomNotReady = errors.New("bloom filter is not ready")

type BloomRepository interface {
	// Add puts id into the filter
	Add(ctx context.Context, id string) error

	// Exists reports whether id may exist.
	// true: possibly present, ask the database.
	// false: definitely absent.
	// Fails with ErrBloomNotReady if the filter cannot be trusted.
	Exists(ctx context.Context, id string) (bool, error)

	// BulkAdd is used while warming the filter up
	BulkAdd(ctx context.Context, ids []string) error

	// MarkReady records that every stored id has been added.
	MarkReady(ctx context.Context) error
}
