// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"math/big"

	"github.com/holiman/uint256"
)

// Precision scales AccRewardPerShare.
var Precision = big.NewInt(1e18)

var precision256 = uint256.NewInt(1e18)

// Pool is the contract-wide reward accumulator.
type Pool struct {
	TotalPrincipal        *big.Int // sum of amounts of open stakes
	TotalShares           *big.Int // sum of bonus shares of open stakes
	EmissionRatePerSecond *big.Int // reward emitted to all shares per second
	AccRewardPerShare     *big.Int // cumulative reward per share unit, scaled by Precision
	LastAccrualTime       uint64
}

// IsEmpty returns whether the pool has never been initialized.
func (p *Pool) IsEmpty() bool {
	return p.EmissionRatePerSecond == nil
}

// Clone returns a deep copy.
func (p *Pool) Clone() *Pool {
	return &Pool{
		TotalPrincipal:        new(big.Int).Set(p.TotalPrincipal),
		TotalShares:           new(big.Int).Set(p.TotalShares),
		EmissionRatePerSecond: new(big.Int).Set(p.EmissionRatePerSecond),
		AccRewardPerShare:     new(big.Int).Set(p.AccRewardPerShare),
		LastAccrualTime:       p.LastAccrualTime,
	}
}

// accumulated returns AccRewardPerShare as it would be at now.
// It never decreases: a now at or before LastAccrualTime, or an empty pool, leaves it unchanged.
func (p *Pool) accumulated(now uint64) (*big.Int, error) {
	if now <= p.LastAccrualTime || p.TotalShares.Sign() == 0 {
		return new(big.Int).Set(p.AccRewardPerShare), nil
	}

	rate, overflow := uint256.FromBig(p.EmissionRatePerSecond)
	if overflow {
		return nil, ErrOverflow
	}
	shares, overflow := uint256.FromBig(p.TotalShares)
	if overflow {
		return nil, ErrOverflow
	}
	acc, overflow := uint256.FromBig(p.AccRewardPerShare)
	if overflow {
		return nil, ErrOverflow
	}

	reward, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(now-p.LastAccrualTime), rate)
	if overflow {
		return nil, ErrOverflow
	}
	scaled, overflow := new(uint256.Int).MulOverflow(reward, precision256)
	if overflow {
		return nil, ErrOverflow
	}
	acc, overflow = new(uint256.Int).AddOverflow(acc, scaled.Div(scaled, shares))
	if overflow {
		return nil, ErrOverflow
	}
	return acc.ToBig(), nil
}

// Earned returns the reward of shares accumulated since debt, truncated.
func Earned(shares, acc, debt *big.Int) *big.Int {
	earned := new(big.Int).Sub(acc, debt)
	earned.Mul(earned, shares)
	return earned.Quo(earned, Precision)
}
