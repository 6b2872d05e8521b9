// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staker

import (
	"math/big"

	"github.com/paradox-labs/para/metrics"
	"github.com/paradox-labs/para/para"
)

var (
	metricOperations     = metrics.LazyLoadCounterVec("staker_operations_count", []string{"op", "status"})
	metricStakedTokens   = metrics.LazyLoadCounterVec("staker_tokens_count", []string{"flow"})
	metricTotalPrincipal = metrics.LazyLoadGauge("staker_total_principal_tokens")
	metricTotalShares    = metrics.LazyLoadGauge("staker_total_shares_tokens")
)

func wholeTokens(amount *big.Int) int64 {
	return new(big.Int).Quo(amount, para.OneToken).Int64()
}

func observeOperation(op string, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	metricOperations().AddWithLabel(1, map[string]string{"op": op, "status": status})
}
