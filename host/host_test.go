// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package host

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradox-labs/para/builtin/staker"
	"github.com/paradox-labs/para/lvldb"
	"github.com/paradox-labs/para/para"
	"github.com/paradox-labs/para/state"
	"github.com/paradox-labs/para/test/datagen"
)

func newHost(t *testing.T) (*Host, *clockwork.FakeClock) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	clock := clockwork.NewFakeClockAt(time.Unix(1_700_000_000, 0))
	h := New(state.NewStater(db), staker.DefaultConfig(datagen.RandAddress()), clock)
	require.NoError(t, h.Execute("initialize", func(env *Env) error {
		return env.Staker.Initialize(env.Now)
	}))
	return h, clock
}

func balanceOf(t *testing.T, h *Host, addr para.Address) *big.Int {
	var balance *big.Int
	require.NoError(t, h.View(func(env *Env) (err error) {
		balance, err = env.Token.BalanceOf(addr)
		return
	}))
	return balance
}

func TestExecuteCommits(t *testing.T) {
	h, _ := newHost(t)
	user := datagen.RandAddress()

	require.NoError(t, h.Execute("mint", func(env *Env) error {
		return env.Token.Mint(user, para.Tokens(5))
	}))
	assert.Equal(t, para.Tokens(5), balanceOf(t, h, user))
}

func TestExecuteDiscardsOnError(t *testing.T) {
	h, _ := newHost(t)
	user := datagen.RandAddress()
	boom := errors.New("boom")

	err := h.Execute("mint", func(env *Env) error {
		if err := env.Token.Mint(user, para.Tokens(5)); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, balanceOf(t, h, user).Sign())
}

func TestViewDoesNotCommit(t *testing.T) {
	h, _ := newHost(t)
	user := datagen.RandAddress()

	require.NoError(t, h.View(func(env *Env) error {
		return env.Token.Mint(user, para.Tokens(5))
	}))
	assert.Zero(t, balanceOf(t, h, user).Sign())
}

func TestStakeLifecycle(t *testing.T) {
	h, clock := newHost(t)
	user := datagen.RandAddress()
	treasury := datagen.RandAddress()
	amount := para.Tokens(1_000)

	require.NoError(t, h.Execute("setup", func(env *Env) error {
		if err := env.Token.Mint(treasury, para.Tokens(1_000_000)); err != nil {
			return err
		}
		if err := env.Staker.Fund(treasury, para.Tokens(1_000_000)); err != nil {
			return err
		}
		if err := env.Token.Mint(user, amount); err != nil {
			return err
		}
		return env.Token.Approve(user, env.Staker.Address(), amount)
	}))
	require.NoError(t, h.Execute("stake", func(env *Env) error {
		_, err := env.Staker.Stake(user, amount, 28, env.Now)
		return err
	}))

	clock.Advance(27 * 24 * time.Hour)
	err := h.Execute("end stake", func(env *Env) error {
		_, err := env.Staker.EndStake(user, 0, 1, env.Now)
		return err
	})
	assert.ErrorIs(t, err, staker.ErrLockedStake)

	clock.Advance(24 * time.Hour)
	require.NoError(t, h.Execute("end stake", func(env *Env) error {
		_, err := env.Staker.EndStake(user, 0, 1, env.Now)
		return err
	}))

	// sole staker collects the whole emission of 28 days, minus rounding
	balance := balanceOf(t, h, user)
	reward := new(big.Int).Sub(balance, amount)
	assert.True(t, reward.Cmp(para.Tokens(28*5000)) <= 0)
	assert.True(t, reward.Cmp(para.Tokens(28*5000-1)) > 0)
}

func TestReportCacheStats(t *testing.T) {
	h, _ := newHost(t)
	user := datagen.RandAddress()

	balanceOf(t, h, user)
	balanceOf(t, h, user)
	h.reportCacheStats()

	_, hit, miss := h.stater.CacheStats().Stats()
	assert.Positive(t, hit)
	assert.Positive(t, miss)
}
