// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staker_test

import (
	"encoding/json"
	"math/big"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradox-labs/para/api/staker"
	"github.com/paradox-labs/para/api/utils"
	"github.com/paradox-labs/para/builtin"
	"github.com/paradox-labs/para/genesis"
	"github.com/paradox-labs/para/host"
	"github.com/paradox-labs/para/para"
	"github.com/paradox-labs/para/test/testnode"
)

func TestStaker(t *testing.T) {
	node, err := testnode.New()
	require.NoError(t, err)
	defer node.Close()

	ts := node.Serve(func(router *mux.Router) {
		staker.New(node.Host()).Mount(router, "/staker")
	})
	defer ts.Close()

	body, code := testnode.HTTPGet(t, ts.URL+"/staker")
	require.Equal(t, http.StatusOK, code)
	var cfg staker.Config
	require.NoError(t, json.Unmarshal(body, &cfg))
	assert.Equal(t, builtin.Staker.Address, cfg.Address)
	assert.Equal(t, genesis.DevAccounts()[0].Address, cfg.RewardsReserve)
	assert.Equal(t, "hardlock", cfg.ExitPolicy)
	assert.Equal(t, para.MinLockDays, cfg.MinLockDays)
	assert.Equal(t, para.MaxLockDays, cfg.MaxLockDays)
	assert.Equal(t, uint64(32), cfg.MaxBatchSize)
	assert.Equal(t, "57870370370370370", (*big.Int)(cfg.EmissionRatePerSecond).String())

	from := node.Accounts()[3].Address
	body, code = testnode.HTTPPost(t, ts.URL+"/staker/fund", utils.M{"from": from, "amount": para.Tokens(500).String()})
	require.Equal(t, http.StatusOK, code, string(body))

	_, code = testnode.HTTPPost(t, ts.URL+"/staker/fund", utils.M{"from": from, "amount": "0"})
	assert.Equal(t, http.StatusBadRequest, code)

	_, code = testnode.HTTPPost(t, ts.URL+"/staker/fund", utils.M{"from": from, "amount": para.Tokens(1_000_000).String()})
	assert.Equal(t, http.StatusBadRequest, code)

	require.NoError(t, node.Host().View(func(env *host.Env) error {
		balance, err := env.Staker.ReserveBalance()
		require.NoError(t, err)
		assert.Zero(t, para.Tokens(100_000_500).Cmp(balance))
		return nil
	}))
}
