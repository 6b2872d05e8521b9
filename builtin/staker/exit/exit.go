// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package exit holds the policies deciding what closing a stake pays out.
package exit

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/paradox-labs/para/builtin/reverts"
	"github.com/paradox-labs/para/builtin/staker/stakes"
	"github.com/paradox-labs/para/para"
)

var ErrLockedStake = reverts.New("staker: stake is locked")

// Settlement is the outcome of closing a stake.
type Settlement struct {
	Entitlement   *big.Int // principal plus earned reward
	Payout        *big.Int // what the owner receives
	Penalty       *big.Int // uncapped early exit penalty
	CappedPenalty *big.Int // penalty actually withheld, sent to the rewards reserve
}

// Policy decides whether and how a stake may be closed.
type Policy interface {
	Name() string
	// Project returns what closing at now would yield, regardless of whether it is allowed.
	Project(stake *stakes.Stake, earned *big.Int, now uint64) *Settlement
	// Settle returns the settlement of closing at now, or an error if the policy forbids it.
	Settle(stake *stakes.Stake, earned *big.Int, now uint64) (*Settlement, error)
}

func fullPayout(stake *stakes.Stake, earned *big.Int) *Settlement {
	entitlement := new(big.Int).Add(stake.Amount, earned)
	return &Settlement{
		Entitlement:   entitlement,
		Payout:        new(big.Int).Set(entitlement),
		Penalty:       new(big.Int),
		CappedPenalty: new(big.Int),
	}
}

// HardLock forbids closing before maturity.
type HardLock struct{}

func (HardLock) Name() string { return "hardlock" }

func (HardLock) Project(stake *stakes.Stake, earned *big.Int, _ uint64) *Settlement {
	return fullPayout(stake, earned)
}

func (p HardLock) Settle(stake *stakes.Stake, earned *big.Int, now uint64) (*Settlement, error) {
	if !stake.Matured(now) {
		return nil, ErrLockedStake
	}
	return p.Project(stake, earned, now), nil
}

// EarlyExit allows closing before maturity at a penalty: all earned reward, plus
// PenaltyBasisPoints of the principal pro rata to the unserved lock time.
// The penalty is capped at the entitlement.
type EarlyExit struct {
	PenaltyBasisPoints uint64
}

func (EarlyExit) Name() string { return "earlyexit" }

func (p EarlyExit) Project(stake *stakes.Stake, earned *big.Int, now uint64) *Settlement {
	s := fullPayout(stake, earned)
	if stake.Matured(now) {
		return s
	}

	lockSecs := stake.MaturityTime - stake.StartTime
	remaining := stake.MaturityTime - max(now, stake.StartTime)

	penalty := new(big.Int).Mul(stake.Amount, new(big.Int).SetUint64(p.PenaltyBasisPoints))
	penalty.Mul(penalty, new(big.Int).SetUint64(remaining))
	penalty.Quo(penalty, new(big.Int).SetUint64(para.BasisPoints*lockSecs))
	penalty.Add(penalty, earned)

	s.Penalty = penalty
	s.CappedPenalty = new(big.Int).Set(penalty)
	if s.CappedPenalty.Cmp(s.Entitlement) > 0 {
		s.CappedPenalty.Set(s.Entitlement)
	}
	s.Payout.Sub(s.Entitlement, s.CappedPenalty)
	return s
}

func (p EarlyExit) Settle(stake *stakes.Stake, earned *big.Int, now uint64) (*Settlement, error) {
	return p.Project(stake, earned, now), nil
}

// Parse returns the policy named name.
func Parse(name string, penaltyBasisPoints uint64) (Policy, error) {
	switch strings.ToLower(name) {
	case "", "hardlock":
		return HardLock{}, nil
	case "earlyexit":
		if penaltyBasisPoints > para.BasisPoints {
			return nil, fmt.Errorf("penalty basis points %d exceeds %d", penaltyBasisPoints, para.BasisPoints)
		}
		return EarlyExit{PenaltyBasisPoints: penaltyBasisPoints}, nil
	default:
		return nil, fmt.Errorf("unknown exit policy %q", name)
	}
}
