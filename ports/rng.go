package ports

import (
	"context"
	"math/rand"
)

// RNGPort provides seeded random number generation for deterministic operations
type RNGPort interface {
	// SeededStream creates a random number generator for a named operation.
	// The same name and seed always yield the same sequence.
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)
}
