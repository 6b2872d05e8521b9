// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package types

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradox-labs/para/builtin/staker"
	"github.com/paradox-labs/para/builtin/staker/exit"
	"github.com/paradox-labs/para/builtin/staker/pool"
	"github.com/paradox-labs/para/builtin/staker/stakes"
)

func TestConvertPool(t *testing.T) {
	p := &pool.Pool{
		TotalPrincipal:        big.NewInt(1000),
		TotalShares:           big.NewInt(40),
		EmissionRatePerSecond: big.NewInt(255),
		AccRewardPerShare:     new(big.Int),
		LastAccrualTime:       7,
	}
	data, err := json.Marshal(ConvertPool(p))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"totalPrincipal": "0x3e8",
		"totalShares": "0x28",
		"emissionRatePerSecond": "0xff",
		"accRewardPerShare": "0x0",
		"lastAccrualTime": 7
	}`, string(data))
}

func TestConvertPosition(t *testing.T) {
	stake := stakes.NewStake(big.NewInt(16), 30, 100, big.NewInt(2), big.NewInt(0))
	stake.Closed = true
	pos := &staker.Position{
		TotalAmount: new(big.Int),
		ShareTotal:  new(big.Int),
		RewardDebt:  new(big.Int),
		LastStakeID: 1,
		Stakes:      []*stakes.Stake{stake},
	}
	converted := ConvertPosition(pos)
	require.Len(t, converted.Stakes, 1)
	assert.Equal(t, uint64(0), converted.Stakes[0].ID)
	assert.Equal(t, uint64(100+30*86400), converted.Stakes[0].MaturityTime)
	assert.True(t, converted.Stakes[0].Closed)
	assert.Equal(t, big.NewInt(16), (*big.Int)(converted.Stakes[0].Amount))
}

func TestConvertSettlements(t *testing.T) {
	list := ConvertSettlements([]*exit.Settlement{{
		Entitlement:   big.NewInt(10),
		Payout:        big.NewInt(8),
		Penalty:       big.NewInt(3),
		CappedPenalty: big.NewInt(2),
	}})
	data, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"entitlement":"0xa","payout":"0x8","penalty":"0x3","cappedPenalty":"0x2"}]`, string(data))
}
