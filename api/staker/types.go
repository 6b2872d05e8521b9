// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staker

import (
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/paradox-labs/para/builtin/staker"
	"github.com/paradox-labs/para/builtin/staker/exit"
	"github.com/paradox-labs/para/para"
)

// Config for marshal the deployment parameters of the staking engine.
type Config struct {
	Address               para.Address          `json:"address"`
	EmissionRatePerSecond *math.HexOrDecimal256 `json:"emissionRatePerSecond"`
	RewardsReserve        para.Address          `json:"rewardsReserve"`
	DiversionBasisPoints  uint64                `json:"diversionBasisPoints"`
	MinLockDays           uint64                `json:"minLockDays"`
	MaxLockDays           uint64                `json:"maxLockDays"`
	MaxBatchSize          uint64                `json:"maxBatchSize"`
	ExitPolicy            string                `json:"exitPolicy"`
	PenaltyBasisPoints    uint64                `json:"penaltyBasisPoints,omitempty"`
}

func convertConfig(addr para.Address, cfg staker.Config) *Config {
	c := &Config{
		Address:               addr,
		EmissionRatePerSecond: (*math.HexOrDecimal256)(cfg.EmissionRatePerSecond),
		RewardsReserve:        cfg.RewardsReserve,
		DiversionBasisPoints:  cfg.DiversionBasisPoints,
		MinLockDays:           cfg.MinLockDays,
		MaxLockDays:           cfg.MaxLockDays,
		MaxBatchSize:          staker.MaxBatchSize,
		ExitPolicy:            cfg.Exit.Name(),
	}
	if ee, ok := cfg.Exit.(exit.EarlyExit); ok {
		c.PenaltyBasisPoints = ee.PenaltyBasisPoints
	}
	return c
}

type FundRequest struct {
	From   para.Address          `json:"from"`
	Amount *math.HexOrDecimal256 `json:"amount"`
}
