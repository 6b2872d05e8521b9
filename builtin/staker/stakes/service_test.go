// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakes

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradox-labs/para/builtin/solidity"
	"github.com/paradox-labs/para/builtin/staker/pool"
	"github.com/paradox-labs/para/lvldb"
	"github.com/paradox-labs/para/para"
	"github.com/paradox-labs/para/state"
	"github.com/paradox-labs/para/test/datagen"
)

func newService(t *testing.T) *Service {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(solidity.NewContext(para.BytesToAddress([]byte("Staker")), state.New(db)))
}

func TestNewStake(t *testing.T) {
	s := NewStake(big.NewInt(100), 30, 1000, big.NewInt(7), big.NewInt(3))
	assert.Equal(t, uint64(1000+30*86400), s.MaturityTime)
	assert.False(t, s.Matured(s.MaturityTime-1))
	assert.True(t, s.Matured(s.MaturityTime))
	assert.False(t, s.IsEmpty())
	assert.False(t, s.Closed)
}

func TestAccountLifecycle(t *testing.T) {
	svc := newService(t)
	owner := datagen.RandAddress()

	acc, err := svc.GetAccount(owner)
	require.NoError(t, err)
	assert.Zero(t, acc.LastStakeID)
	assert.Zero(t, acc.TotalAmount.Sign())

	acc1 := new(big.Int).Mul(big.NewInt(5), pool.Precision)
	s0 := NewStake(big.NewInt(100), 30, 0, big.NewInt(10), new(big.Int))
	s1 := NewStake(big.NewInt(50), 40, 10, big.NewInt(4), acc1)

	id, err := svc.Append(owner, s0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), id)
	id, err = svc.Append(owner, s1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	acc, err = svc.GetAccount(owner)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), acc.LastStakeID)
	assert.Equal(t, big.NewInt(150), acc.TotalAmount)
	assert.Equal(t, big.NewInt(14), acc.ShareTotal)
	assert.Equal(t, big.NewInt(20), acc.RewardDebt)

	got, err := svc.GetStake(owner, 1)
	require.NoError(t, err)
	assert.Equal(t, s1, got)

	missing, err := svc.GetStake(owner, 2)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, svc.Close(owner, 1, got))
	assert.Error(t, svc.Close(owner, 1, got), "closing is terminal")

	acc, _ = svc.GetAccount(owner)
	assert.Equal(t, uint64(2), acc.LastStakeID, "ids are never reused")
	assert.Equal(t, big.NewInt(100), acc.TotalAmount)
	assert.Equal(t, big.NewInt(10), acc.ShareTotal)
	assert.Zero(t, acc.RewardDebt.Sign())

	list, err := svc.List(owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.False(t, list[0].Closed)
	assert.True(t, list[1].Closed)
}

func TestStakeKeysAreDistinct(t *testing.T) {
	a, b := datagen.RandAddress(), datagen.RandAddress()
	assert.NotEqual(t, StakeKey(a, 0), StakeKey(a, 1))
	assert.NotEqual(t, StakeKey(a, 0), StakeKey(b, 0))
}
