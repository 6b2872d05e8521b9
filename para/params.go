// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package para

import "math/big"

// Constants of the token economy.
const (
	Decimals      = 18
	SecondsPerDay = uint64(24 * 60 * 60)

	MinLockDays uint64 = 28   // shortest commitment a stake may take
	MaxLockDays uint64 = 2888 // longest commitment a stake may take

	BasisPoints uint64 = 10_000
)

// OneToken is 10^Decimals base units.
var OneToken = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

// Tokens converts a whole-token amount to base units.
func Tokens(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), OneToken)
}

// DailyToPerSecond converts a per-day emission into a per-second rate, truncating.
func DailyToPerSecond(perDay *big.Int) *big.Int {
	return new(big.Int).Div(perDay, new(big.Int).SetUint64(SecondsPerDay))
}
