// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package genesis describes the initial state of a network: token allocations,
// staking engine parameters and the funding of its reserve.
package genesis

import (
	"github.com/pkg/errors"

	"github.com/paradox-labs/para/builtin"
	"github.com/paradox-labs/para/builtin/staker"
	"github.com/paradox-labs/para/state"
)

// Genesis to build the initial state.
type Genesis struct {
	builder *Builder
	name    string
	staker  staker.Config
	launch  uint64
}

// Name returns network name.
func (g *Genesis) Name() string {
	return g.name
}

// LaunchTime returns the time the emission clock starts.
func (g *Genesis) LaunchTime() uint64 {
	return g.launch
}

// StakerConfig returns the deployment parameters of the staking engine.
func (g *Genesis) StakerConfig() staker.Config {
	return g.staker
}

// Build writes the genesis state. A store that already holds an initialized
// staking engine is left untouched and reports built as false.
func (g *Genesis) Build(stater *state.Stater) (built bool, err error) {
	_, err = builtin.Staker.WithState(stater.NewState(), g.staker).VirtualPool()
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, staker.ErrNotInitialized):
		return false, err
	}
	if err := g.builder.Build(stater); err != nil {
		return false, err
	}
	return true, nil
}
