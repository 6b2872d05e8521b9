// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package solidity

import (
	"github.com/paradox-labs/para/para"
	"github.com/paradox-labs/para/state"
)

// Context binds storage wrappers to the account of a built-in contract.
type Context struct {
	address para.Address
	state   *state.State
}

func NewContext(address para.Address, state *state.State) *Context {
	return &Context{
		address: address,
		state:   state,
	}
}

func (c *Context) Address() para.Address {
	return c.address
}

func (c *Context) State() *state.State {
	return c.state
}
