// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakes

import (
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/paradox-labs/para/para"
)

// StakeRequest opens a stake of Amount locked for LockedDays. The staker must
// have been approved to pull Amount from Caller beforehand.
type StakeRequest struct {
	Caller     para.Address          `json:"caller"`
	Amount     *math.HexOrDecimal256 `json:"amount"`
	LockedDays uint64                `json:"lockedDays"`
}

type StakeResult struct {
	ID uint64 `json:"id"`
}

// EndStakeRequest closes Count stakes of Caller starting at StakeIndex.
type EndStakeRequest struct {
	Caller     para.Address `json:"caller"`
	StakeIndex uint64       `json:"stakeIndex"`
	Count      uint64       `json:"count"`
}
