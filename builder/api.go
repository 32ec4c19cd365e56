// SPDX-License-Identifier: MIT
//
// api.go - public entry-point and Constructor type.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs,
//     including the NodeIdx and EdgeIdx each element receives.
//   - Constructors return sentinel errors; they never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/indexvec/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors must:
//   - Validate parameters before touching g.
//   - Respect core graph mode flags (directed/loops/multigraph/weighted).
//   - Add nodes and edges in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
//
// Constructors composed on one graph must produce distinct labels, for
// example through different WithIDScheme prefixes; a repeated label surfaces
// as core.ErrDuplicateLabel.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
