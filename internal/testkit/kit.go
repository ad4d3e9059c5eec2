package testkit

import (
	"context"
	"math/rand"

	"pulsex/adapters/excel"
)

// TestKit provides synthetic survey data and deterministic randomness for
// tests and demo mode
type TestKit struct {
	config PulseGeneratorConfig
}

// NewTestKit creates a kit generating respondents rows
func NewTestKit(respondents int, seed int64) *TestKit {
	config := DefaultPulseConfig()
	config.Respondents = respondents
	config.Seed = seed
	return &TestKit{config: config}
}

// Config returns the generator configuration
func (k *TestKit) Config() PulseGeneratorConfig {
	return k.config
}

// RawData generates the synthetic table in reader form
func (k *TestKit) RawData() *excel.RawData {
	return NewPulseDataGenerator(k.config).Generate()
}

// RNGAdapter returns the kit's RNGPort implementation
func (k *TestKit) RNGAdapter() *RNGAdapter {
	return &RNGAdapter{}
}

// RNGAdapter implements the RNGPort interface with math/rand sources
type RNGAdapter struct{}

// SeededStream creates a deterministic random number generator for a named operation
func (r *RNGAdapter) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name != "" {
		seed = int64(hashString(name)) + seed
	}
	return rand.New(rand.NewSource(seed)), nil
}

// hashString creates a simple hash for deterministic seeding
func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint32(c) // djb2 algorithm
	}
	return hash
}
