// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package builtin binds the native contracts to their well known addresses.
package builtin

import (
	"github.com/paradox-labs/para/builtin/staker"
	"github.com/paradox-labs/para/builtin/token"
	"github.com/paradox-labs/para/para"
	"github.com/paradox-labs/para/state"
)

// Builtin contracts binding.
var (
	Token  = &tokenContract{contract{para.BytesToAddress([]byte("Token"))}}
	Staker = &stakerContract{contract{para.BytesToAddress([]byte("Staker"))}}
)

type contract struct {
	Address para.Address
}

type (
	tokenContract  struct{ contract }
	stakerContract struct{ contract }
)

func (t *tokenContract) WithState(state *state.State) *token.Token {
	return token.New(t.Address, state)
}

// WithState binds the staker to state, settling through the builtin token.
func (s *stakerContract) WithState(state *state.State, cfg staker.Config) *staker.Staker {
	return staker.New(s.Address, state, Token.WithState(state), cfg)
}
