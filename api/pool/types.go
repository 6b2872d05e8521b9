// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/paradox-labs/para/api/utils/types"
	"github.com/paradox-labs/para/para"
)

// Snapshot is the reward pool together with the funds backing it.
type Snapshot struct {
	*types.Pool
	PendingAccRewardPerShare *math.HexOrDecimal256 `json:"pendingAccRewardPerShare"`
	RewardsReserve           para.Address          `json:"rewardsReserve"`
	ReserveBalance           *math.HexOrDecimal256 `json:"reserveBalance"`
}
