package ports

import "context"

// Contract for storing rendered chart images keyed by their filter inputs.
// Chart output is a pure function of the filters, so entries never go stale
// while the dataset is unchanged.
type ChartCache interface {
	// Return the cached bytes and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, data []byte) error
}
