// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package bonus converts a stake's amount and lock length into reward shares.
package bonus

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/paradox-labs/para/para"
)

// Curve weights larger and longer stakes.
// Both bonuses must be zero at zero input, non-decreasing and saturating.
type Curve interface {
	AmountBonus(amount *big.Int) *big.Int
	LengthBonus(amount *big.Int, lockedDays uint64) *big.Int
}

// Shares returns the reward shares of a stake: the sum of both bonuses, principal excluded.
// A positive amount always yields at least one share unit, so that an open stake keeps the pool non-empty.
func Shares(c Curve, amount *big.Int, lockedDays uint64) *big.Int {
	shares := new(big.Int).Add(c.AmountBonus(amount), c.LengthBonus(amount, lockedDays))
	if shares.Sign() == 0 && amount.Sign() > 0 {
		shares.SetUint64(1)
	}
	return shares
}

// Saturating is a linear curve capped at fixed ceilings.
//
//	AmountBonus = amount * min(amount, AmountCap) / AmountDivisor
//	LengthBonus = amount * min(lockedDays - MinDays, LengthCapDays) / LengthDivisorDays
type Saturating struct {
	AmountCap         *big.Int
	AmountDivisor     *big.Int
	MinDays           uint64
	LengthCapDays     uint64
	LengthDivisorDays uint64
}

// DefaultCurve returns the mainnet curve: up to +10% for size and up to 10x for length.
func DefaultCurve() *Saturating {
	return &Saturating{
		AmountCap:         para.Tokens(2_500_000),
		AmountDivisor:     para.Tokens(25_000_000),
		MinDays:           para.MinLockDays,
		LengthCapDays:     1030,
		LengthDivisorDays: 103,
	}
}

// Validate rejects curves that would divide by zero or have no amount ceiling.
func (s *Saturating) Validate() error {
	if s.AmountCap == nil || s.AmountCap.Sign() < 0 {
		return errors.New("amount cap must be non-negative")
	}
	if s.AmountDivisor == nil || s.AmountDivisor.Sign() <= 0 {
		return errors.New("amount divisor must be positive")
	}
	if s.LengthDivisorDays == 0 {
		return errors.New("length divisor must be positive")
	}
	return nil
}

func (s *Saturating) AmountBonus(amount *big.Int) *big.Int {
	capped := amount
	if capped.Cmp(s.AmountCap) > 0 {
		capped = s.AmountCap
	}
	bonus := new(big.Int).Mul(amount, capped)
	return bonus.Quo(bonus, s.AmountDivisor)
}

func (s *Saturating) LengthBonus(amount *big.Int, lockedDays uint64) *big.Int {
	if lockedDays <= s.MinDays {
		return new(big.Int)
	}
	extra := min(lockedDays-s.MinDays, s.LengthCapDays)
	bonus := new(big.Int).Mul(amount, new(big.Int).SetUint64(extra))
	return bonus.Quo(bonus, new(big.Int).SetUint64(s.LengthDivisorDays))
}

// CurveFuncs adapts a pair of plain functions to Curve.
type CurveFuncs struct {
	Amount func(amount *big.Int) *big.Int
	Length func(amount *big.Int, lockedDays uint64) *big.Int
}

func (f CurveFuncs) AmountBonus(amount *big.Int) *big.Int {
	if f.Amount == nil {
		return new(big.Int)
	}
	return f.Amount(amount)
}

func (f CurveFuncs) LengthBonus(amount *big.Int, lockedDays uint64) *big.Int {
	if f.Length == nil {
		return new(big.Int)
	}
	return f.Length(amount, lockedDays)
}
