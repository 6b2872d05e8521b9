// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/common/expfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradox-labs/para/api/accounts"
	"github.com/paradox-labs/para/metrics"
	"github.com/paradox-labs/para/para"
	"github.com/paradox-labs/para/test/testnode"
)

func init() {
	metrics.InitializePrometheusMetrics()
}

func TestMetricsMiddleware(t *testing.T) {
	node, err := testnode.New()
	require.NoError(t, err)
	defer node.Close()

	ts := node.Serve(func(router *mux.Router) {
		accounts.New(node.Host()).Mount(router, "/accounts")
		router.PathPrefix("/metrics").Handler(metrics.HTTPHandler())
		router.Use(metricsMiddleware)
	})
	defer ts.Close()

	testnode.HTTPGet(t, ts.URL+"/accounts/0x")
	testnode.HTTPGet(t, ts.URL+"/accounts/"+para.Address{}.String())

	body, code := testnode.HTTPGet(t, ts.URL+"/metrics")
	require.Equal(t, http.StatusOK, code)
	parser := expfmt.TextParser{}
	families, err := parser.TextToMetricFamilies(bytes.NewReader(body))
	require.NoError(t, err)

	m := families["para_metrics_api_request_count"].GetMetric()
	require.Equal(t, 2, len(m), "should be 2 metric entries")

	labels := m[0].GetLabel()
	assert.Equal(t, 3, len(labels))
	assert.Equal(t, "code", labels[0].GetName())
	assert.Equal(t, "200", labels[0].GetValue())
	assert.Equal(t, "method", labels[1].GetName())
	assert.Equal(t, "GET", labels[1].GetValue())
	assert.Equal(t, "name", labels[2].GetName())
	assert.Equal(t, "accounts_get_account", labels[2].GetValue())
	assert.Equal(t, float64(1), m[0].GetCounter().GetValue())

	labels = m[1].GetLabel()
	assert.Equal(t, "400", labels[0].GetValue())
	assert.Equal(t, "accounts_get_account", labels[2].GetValue())
}
