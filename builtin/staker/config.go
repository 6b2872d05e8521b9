// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staker

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/paradox-labs/para/builtin/staker/bonus"
	"github.com/paradox-labs/para/builtin/staker/exit"
	"github.com/paradox-labs/para/para"
)

const (
	// MaxBatchSize bounds the number of stakes a single EndStake may close.
	MaxBatchSize = 32
	// LockDaysLimit caps MaxLockDays so that maturity times stay far from uint64 overflow.
	LockDaysLimit = 100 * 365
)

// DefaultEmissionPerDay is the reward released to stakers every day.
var DefaultEmissionPerDay = para.Tokens(5000)

// Config holds the deployment parameters of the engine. It is immutable once the engine is built.
type Config struct {
	EmissionRatePerSecond *big.Int
	RewardsReserve        para.Address
	DiversionBasisPoints  uint64 // share of every new stake sent to the rewards reserve
	MinLockDays           uint64
	MaxLockDays           uint64
	Bonus                 bonus.Curve
	Exit                  exit.Policy
}

// DefaultConfig returns the mainnet parameters, with hard locks and no diversion.
func DefaultConfig(reserve para.Address) Config {
	return Config{
		EmissionRatePerSecond: para.DailyToPerSecond(DefaultEmissionPerDay),
		RewardsReserve:        reserve,
		MinLockDays:           para.MinLockDays,
		MaxLockDays:           para.MaxLockDays,
		Bonus:                 bonus.DefaultCurve(),
		Exit:                  exit.HardLock{},
	}
}

func (c *Config) Validate() error {
	if c.EmissionRatePerSecond == nil || c.EmissionRatePerSecond.Sign() < 0 {
		return errors.New("emission rate must be non-negative")
	}
	if c.RewardsReserve.IsZero() {
		return errors.New("rewards reserve not set")
	}
	if c.DiversionBasisPoints > para.BasisPoints {
		return errors.Errorf("diversion %d exceeds %d basis points", c.DiversionBasisPoints, para.BasisPoints)
	}
	if c.MinLockDays == 0 || c.MinLockDays > c.MaxLockDays {
		return errors.Errorf("invalid lock bounds [%d, %d]", c.MinLockDays, c.MaxLockDays)
	}
	if c.MaxLockDays > LockDaysLimit {
		return errors.Errorf("max lock days %d exceeds %d", c.MaxLockDays, LockDaysLimit)
	}
	if c.Bonus == nil {
		return errors.New("bonus curve not set")
	}
	if v, ok := c.Bonus.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return errors.WithMessage(err, "bonus curve")
		}
	}
	if c.Exit == nil {
		return errors.New("exit policy not set")
	}
	return nil
}
