// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staker

import (
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradox-labs/para/builtin/token"
	"github.com/paradox-labs/para/lvldb"
	"github.com/paradox-labs/para/para"
	"github.com/paradox-labs/para/state"
)

const startTime uint64 = 1_700_000_000

var (
	stakerAddr   = para.BytesToAddress([]byte("Staker"))
	tokenAddr    = para.BytesToAddress([]byte("Token"))
	reserveAddr  = para.BytesToAddress([]byte("reserve"))
	treasuryAddr = para.BytesToAddress([]byte("treasury"))
)

func days(n uint64) uint64 {
	return n * para.SecondsPerDay
}

func newStaker(t *testing.T, opts ...func(*Config)) (*Staker, *token.Token) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	st := state.New(db)
	tok := token.New(tokenAddr, st)

	cfg := DefaultConfig(reserveAddr)
	for _, opt := range opts {
		opt(&cfg)
	}
	staker := New(stakerAddr, st, tok, cfg)
	require.NoError(t, staker.Initialize(startTime))
	return staker, tok
}

type TestFunc func(t *testing.T)

type TestSequence struct {
	staker *Staker
	token  *token.Token

	funcs []TestFunc
	mu    sync.Mutex
}

func NewSequence(staker *Staker, tok *token.Token) *TestSequence {
	return &TestSequence{funcs: make([]TestFunc, 0), staker: staker, token: tok}
}

func (st *TestSequence) AddFunc(f TestFunc) *TestSequence {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.funcs = append(st.funcs, f)
	return st
}

func (st *TestSequence) Mint(addr para.Address, amount *big.Int) *TestSequence {
	return st.AddFunc(func(t *testing.T) {
		if err := st.token.Mint(addr, amount); err != nil {
			t.Fatalf("failed to mint %s to %s: %v", amount, addr, err)
		}
	})
}

func (st *TestSequence) Fund(amount *big.Int) *TestSequence {
	return st.Mint(treasuryAddr, amount).AddFunc(func(t *testing.T) {
		if err := st.staker.Fund(treasuryAddr, amount); err != nil {
			t.Fatalf("failed to fund %s: %v", amount, err)
		}
		t.Logf("funded reserve with %s", amount)
	})
}

// Stake mints, approves and stakes amount for addr.
func (st *TestSequence) Stake(addr para.Address, amount *big.Int, lockedDays uint64, now uint64) *TestSequence {
	return st.Mint(addr, amount).AddFunc(func(t *testing.T) {
		if err := st.token.Approve(addr, st.staker.Address(), amount); err != nil {
			t.Fatalf("failed to approve %s: %v", addr, err)
		}
		id, err := st.staker.Stake(addr, amount, lockedDays, now)
		if err != nil {
			t.Fatalf("failed to stake for %s: %v", addr, err)
		}
		t.Logf("opened stake %d for %s", id, addr)
	})
}

func (st *TestSequence) EndStake(addr para.Address, index, count uint64, now uint64) *TestSequence {
	return st.AddFunc(func(t *testing.T) {
		if _, err := st.staker.EndStake(addr, index, count, now); err != nil {
			t.Fatalf("failed to end stakes [%d, %d) of %s: %v", index, index+count, addr, err)
		}
		t.Logf("closed stakes [%d, %d) of %s", index, index+count, addr)
	})
}

func (st *TestSequence) ExpectEndStakeErr(addr para.Address, index, count uint64, now uint64, expected error) *TestSequence {
	return st.AddFunc(func(t *testing.T) {
		_, err := st.staker.EndStake(addr, index, count, now)
		assert.ErrorIs(t, err, expected)
	})
}

func (st *TestSequence) Run(t *testing.T) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, f := range st.funcs {
		f(t)
	}

	t.Logf("All test functions executed successfully")
}

type AccountAssertions struct {
	staker *Staker
	addr   para.Address

	totalAmount *big.Int
	shareTotal  *big.Int
	lastStakeID *uint64
	balance     *big.Int
}

func AssertAccount(staker *Staker, addr para.Address) *AccountAssertions {
	return &AccountAssertions{staker: staker, addr: addr}
}

func (aa *AccountAssertions) TotalAmount(expected *big.Int) *AccountAssertions {
	aa.totalAmount = expected
	return aa
}

func (aa *AccountAssertions) ShareTotal(expected *big.Int) *AccountAssertions {
	aa.shareTotal = expected
	return aa
}

func (aa *AccountAssertions) LastStakeID(expected uint64) *AccountAssertions {
	aa.lastStakeID = &expected
	return aa
}

func (aa *AccountAssertions) Balance(expected *big.Int) *AccountAssertions {
	aa.balance = expected
	return aa
}

func (aa *AccountAssertions) Assert(t *testing.T) {
	position, err := aa.staker.GetUserPosition(aa.addr)
	require.NoError(t, err, "failed to get position of %s", aa.addr)

	if aa.totalAmount != nil {
		assert.Zero(t, aa.totalAmount.Cmp(position.TotalAmount), "account %s total amount mismatch: %s", aa.addr, position.TotalAmount)
	}
	if aa.shareTotal != nil {
		assert.Zero(t, aa.shareTotal.Cmp(position.ShareTotal), "account %s share total mismatch: %s", aa.addr, position.ShareTotal)
	}
	if aa.lastStakeID != nil {
		assert.Equal(t, *aa.lastStakeID, position.LastStakeID, "account %s last stake id mismatch", aa.addr)
	}
	if aa.balance != nil {
		balance, err := aa.staker.asset.BalanceOf(aa.addr)
		require.NoError(t, err)
		assert.Zero(t, aa.balance.Cmp(balance), "account %s balance mismatch: %s", aa.addr, balance)
	}
}
