package container

import (
	"context"
	"fmt"
	"time"

	"pulsex/domain/survey"
	"pulsex/internal"
	"pulsex/internal/analysis"
	"pulsex/internal/config"
	"pulsex/internal/dataset"
	"pulsex/internal/session"
	"pulsex/internal/testkit"
	"pulsex/ports"
)

// DemoSource is the dataset source name reported in demo mode
const DemoSource = "synthetic demo data"

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Data access
	Dataset *dataset.Store
	Cache   *analysis.MembershipCache

	// Per-browser state
	Sessions *session.Store

	// Randomness for the person sampler
	RNG ports.RNGPort

	TestKit *testkit.TestKit
}

// New creates a new dependency injection container
func New(cfg *config.Config, logger *internal.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}

	kit := testkit.NewTestKit(cfg.Data.DemoRows, cfg.Data.SampleSeed)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Dataset:  dataset.NewStore(),
		Sessions: session.NewStore(cfg.Session.TTL),
		RNG:      kit.RNGAdapter(),
		TestKit:  kit,
	}, nil
}

// LoadDataset loads the survey table once, from DATA_FILE or from the
// synthetic generator in demo mode, and sets up the membership cache
func (c *Container) LoadDataset() (*survey.Table, error) {
	loader := dataset.NewLoader(c.Config.Data.ReasonPrefix, c.Logger)

	source := c.Config.Data.File
	load := func() (*survey.Table, error) {
		return loader.LoadFile(source)
	}
	if c.Config.Data.DemoMode {
		source = DemoSource
		load = func() (*survey.Table, error) {
			c.Logger.Info("[Container] Generating %d synthetic respondents", c.Config.Data.DemoRows)
			return loader.BuildTable(c.TestKit.RawData())
		}
	}

	start := time.Now()
	table, err := c.Dataset.Init(source, load)
	if err != nil {
		return nil, err
	}
	if c.Cache == nil {
		c.Cache = analysis.NewMembershipCache(table, c.Config.Cache.Size)
	}
	c.Logger.Info("[Container] Dataset ready: %d rows from %s in %v", table.Len(), source, time.Since(start))
	return table, nil
}

// SampleSeed returns the configured sampler seed, or a time-based one when unset
func (c *Container) SampleSeed() int64 {
	if c.Config.Data.SampleSeed != 0 {
		return c.Config.Data.SampleSeed
	}
	return time.Now().UnixNano()
}

// StartSessionJanitor prunes idle sessions every interval until ctx is done
func (c *Container) StartSessionJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := c.Sessions.Prune(); removed > 0 {
					c.Logger.Debug("[Container] Pruned %d idle sessions", removed)
				}
			}
		}
	}()
}

// Shutdown flushes buffered log output
func (c *Container) Shutdown(ctx context.Context) error {
	c.Logger.Sync()
	return ctx.Err()
}
