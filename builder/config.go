// SPDX-License-Identifier: MIT
//
// config.go - builderConfig and the BuilderOption setters that fill it.
// Option constructors panic on programmer errors (nil functions); runtime
// validation of sizes lives in the constructors.

package builder

import (
	"math/rand"
	"strconv"
)

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"

	// DefaultEdgeWeight is the weight of every edge in a weighted graph
	// unless WithWeightFn says otherwise.
	DefaultEdgeWeight int64 = 1
)

// builderConfig is the resolved, read-only view of all BuilderOptions.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn func(*rand.Rand) int64

	leftPrefix  string
	rightPrefix string
}

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        strconv.Itoa,
		weightFn:    func(*rand.Rand) int64 { return DefaultEdgeWeight },
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// weight returns the weight of the next edge: zero on unweighted graphs.
func (c builderConfig) weight(weighted bool) int64 {
	if !weighted {
		return 0
	}

	return c.weightFn(c.rng)
}

// WithIDScheme sets the label of the i-th node a constructor adds.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand uses r for stochastic constructors and weight functions.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed uses a fresh source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn draws every edge weight from fn. fn receives the configured
// rng, which is nil unless WithSeed or WithRand was given.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithPartitionPrefix sets the label prefixes of CompleteBipartite sides.
// Empty strings keep the defaults "L" and "R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) { c.leftPrefix, c.rightPrefix = left, right }
}
