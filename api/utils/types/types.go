// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package types holds the json forms of the staking engine's values.
package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"

	"github.com/paradox-labs/para/builtin/staker"
	"github.com/paradox-labs/para/builtin/staker/exit"
	"github.com/paradox-labs/para/builtin/staker/pool"
	"github.com/paradox-labs/para/builtin/staker/stakes"
)

func hex(v *big.Int) *math.HexOrDecimal256 {
	if v == nil {
		v = new(big.Int)
	}
	return (*math.HexOrDecimal256)(new(big.Int).Set(v))
}

// Pool for marshal pool
type Pool struct {
	TotalPrincipal        *math.HexOrDecimal256 `json:"totalPrincipal"`
	TotalShares           *math.HexOrDecimal256 `json:"totalShares"`
	EmissionRatePerSecond *math.HexOrDecimal256 `json:"emissionRatePerSecond"`
	AccRewardPerShare     *math.HexOrDecimal256 `json:"accRewardPerShare"`
	LastAccrualTime       uint64                `json:"lastAccrualTime"`
}

func ConvertPool(p *pool.Pool) *Pool {
	return &Pool{
		TotalPrincipal:        hex(p.TotalPrincipal),
		TotalShares:           hex(p.TotalShares),
		EmissionRatePerSecond: hex(p.EmissionRatePerSecond),
		AccRewardPerShare:     hex(p.AccRewardPerShare),
		LastAccrualTime:       p.LastAccrualTime,
	}
}

// Stake for marshal a single stake
type Stake struct {
	ID           uint64                `json:"id"`
	Amount       *math.HexOrDecimal256 `json:"amount"`
	LockedDays   uint64                `json:"lockedDays"`
	StartTime    uint64                `json:"startTime"`
	MaturityTime uint64                `json:"maturityTime"`
	Shares       *math.HexOrDecimal256 `json:"shares"`
	ShareDebt    *math.HexOrDecimal256 `json:"shareDebt"`
	Closed       bool                  `json:"closed"`
}

func ConvertStake(id uint64, s *stakes.Stake) *Stake {
	return &Stake{
		ID:           id,
		Amount:       hex(s.Amount),
		LockedDays:   s.LockedDays,
		StartTime:    s.StartTime,
		MaturityTime: s.MaturityTime,
		Shares:       hex(s.Shares),
		ShareDebt:    hex(s.ShareDebt),
		Closed:       s.Closed,
	}
}

// Position for marshal an account's position
type Position struct {
	TotalAmount *math.HexOrDecimal256 `json:"totalAmount"`
	ShareTotal  *math.HexOrDecimal256 `json:"shareTotal"`
	RewardDebt  *math.HexOrDecimal256 `json:"rewardDebt"`
	LastStakeID uint64                `json:"lastStakeID"`
	Stakes      []*Stake              `json:"stakes"`
}

func ConvertPosition(p *staker.Position) *Position {
	list := make([]*Stake, 0, len(p.Stakes))
	for i, s := range p.Stakes {
		list = append(list, ConvertStake(uint64(i), s))
	}
	return &Position{
		TotalAmount: hex(p.TotalAmount),
		ShareTotal:  hex(p.ShareTotal),
		RewardDebt:  hex(p.RewardDebt),
		LastStakeID: p.LastStakeID,
		Stakes:      list,
	}
}

// Settlement for marshal the outcome of closing a stake
type Settlement struct {
	Entitlement   *math.HexOrDecimal256 `json:"entitlement"`
	Payout        *math.HexOrDecimal256 `json:"payout"`
	Penalty       *math.HexOrDecimal256 `json:"penalty"`
	CappedPenalty *math.HexOrDecimal256 `json:"cappedPenalty"`
}

func ConvertSettlement(s *exit.Settlement) *Settlement {
	return &Settlement{
		Entitlement:   hex(s.Entitlement),
		Payout:        hex(s.Payout),
		Penalty:       hex(s.Penalty),
		CappedPenalty: hex(s.CappedPenalty),
	}
}

func ConvertSettlements(list []*exit.Settlement) []*Settlement {
	out := make([]*Settlement, 0, len(list))
	for _, s := range list {
		out = append(out, ConvertSettlement(s))
	}
	return out
}
