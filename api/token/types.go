// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/paradox-labs/para/para"
)

type TransferRequest struct {
	From   para.Address          `json:"from"`
	To     para.Address          `json:"to"`
	Amount *math.HexOrDecimal256 `json:"amount"`
}

type ApproveRequest struct {
	Owner   para.Address          `json:"owner"`
	Spender para.Address          `json:"spender"`
	Amount  *math.HexOrDecimal256 `json:"amount"`
}

type Supply struct {
	TotalSupply *math.HexOrDecimal256 `json:"totalSupply"`
}
