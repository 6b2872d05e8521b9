// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakes

import (
	"math/big"

	"github.com/paradox-labs/para/builtin/staker/pool"
	"github.com/paradox-labs/para/para"
)

// Account aggregates the open stakes of one owner.
type Account struct {
	TotalAmount *big.Int // sum of amounts of open stakes
	ShareTotal  *big.Int // sum of shares of open stakes
	RewardDebt  *big.Int // sum of shares*ShareDebt/Precision of open stakes
	LastStakeID uint64   // stakes ever opened, also the next index
}

func (a *Account) normalize() {
	if a.TotalAmount == nil {
		a.TotalAmount = new(big.Int)
	}
	if a.ShareTotal == nil {
		a.ShareTotal = new(big.Int)
	}
	if a.RewardDebt == nil {
		a.RewardDebt = new(big.Int)
	}
}

// Stake is a single locked position. Only Closed ever changes after creation.
type Stake struct {
	Amount       *big.Int
	LockedDays   uint64
	StartTime    uint64
	MaturityTime uint64
	Shares       *big.Int
	ShareDebt    *big.Int // accumulator value at opening
	Closed       bool
}

// NewStake builds an open stake starting at now.
func NewStake(amount *big.Int, lockedDays, now uint64, shares, acc *big.Int) *Stake {
	return &Stake{
		Amount:       new(big.Int).Set(amount),
		LockedDays:   lockedDays,
		StartTime:    now,
		MaturityTime: now + lockedDays*para.SecondsPerDay,
		Shares:       new(big.Int).Set(shares),
		ShareDebt:    new(big.Int).Set(acc),
	}
}

// IsEmpty returns whether the entry can be treated as never written.
func (s *Stake) IsEmpty() bool {
	return s.Amount == nil || s.Amount.Sign() == 0
}

// Matured returns whether the stake may be closed without penalty at now.
func (s *Stake) Matured(now uint64) bool {
	return now >= s.MaturityTime
}

// Earned returns the reward of the stake given the accumulator value.
func (s *Stake) Earned(acc *big.Int) *big.Int {
	return pool.Earned(s.Shares, acc, s.ShareDebt)
}

// debt is the share of the accumulator the stake was born with.
func (s *Stake) debt() *big.Int {
	d := new(big.Int).Mul(s.Shares, s.ShareDebt)
	return d.Quo(d, pool.Precision)
}
