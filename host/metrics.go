// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package host

import "github.com/paradox-labs/para/metrics"

var (
	metricExecutions        = metrics.LazyLoadCounterVec("host_executions_count", []string{"name", "status"})
	metricExecutionDuration = metrics.LazyLoadHistogram("host_execution_duration_ms", metrics.BucketHTTPReqs)
	metricCacheHitMiss      = metrics.LazyLoadGaugeVec("host_storage_cache_hit_miss_count", []string{"event"})
)
