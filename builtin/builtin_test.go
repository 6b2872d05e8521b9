// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradox-labs/para/builtin/staker"
	"github.com/paradox-labs/para/lvldb"
	"github.com/paradox-labs/para/para"
	"github.com/paradox-labs/para/state"
)

func TestBindings(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()
	st := state.New(db)

	assert.NotEqual(t, Token.Address, Staker.Address)

	reserve := para.BytesToAddress([]byte("reserve"))
	stk := Staker.WithState(st, staker.DefaultConfig(reserve))
	assert.Equal(t, Staker.Address, stk.Address())
	require.NoError(t, stk.Initialize(100))

	tok := Token.WithState(st)
	require.NoError(t, tok.Mint(reserve, para.Tokens(1)))
	require.NoError(t, stk.Fund(reserve, para.Tokens(1)))

	balance, err := tok.BalanceOf(Staker.Address)
	require.NoError(t, err)
	assert.Equal(t, para.Tokens(1), balance)
}
