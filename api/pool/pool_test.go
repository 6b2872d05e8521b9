// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool_test

import (
	"encoding/json"
	"math/big"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradox-labs/para/api/pool"
	"github.com/paradox-labs/para/genesis"
	"github.com/paradox-labs/para/host"
	"github.com/paradox-labs/para/para"
	"github.com/paradox-labs/para/test/testnode"
)

func TestPool(t *testing.T) {
	node, err := testnode.New()
	require.NoError(t, err)
	defer node.Close()

	ts := node.Serve(func(router *mux.Router) {
		pool.New(node.Host()).Mount(router, "/pool")
	})
	defer ts.Close()

	snap := getPool(t, ts.URL)
	assert.Equal(t, genesis.DevAccounts()[0].Address, snap.RewardsReserve)
	assert.Equal(t, testnode.LaunchTime, snap.LastAccrualTime)
	assert.Zero(t, (*big.Int)(snap.TotalShares).Sign())
	assert.Equal(t, para.Tokens(100_000_000), (*big.Int)(snap.ReserveBalance))

	user := node.Accounts()[0].Address
	amount := para.Tokens(1000)
	require.NoError(t, node.Host().Execute("stake", func(env *host.Env) error {
		if err := env.Token.Approve(user, env.Staker.Address(), amount); err != nil {
			return err
		}
		_, err := env.Staker.Stake(user, amount, 28, env.Now)
		return err
	}))

	node.Advance(1)
	snap = getPool(t, ts.URL)
	assert.Equal(t, amount, (*big.Int)(snap.TotalPrincipal))
	assert.Positive(t, (*big.Int)(snap.TotalShares).Sign())
	// the view accrues to now without committing
	assert.Equal(t, testnode.LaunchTime, snap.LastAccrualTime)
	assert.Equal(t, 1, (*big.Int)(snap.PendingAccRewardPerShare).Cmp((*big.Int)(snap.AccRewardPerShare)))
	assert.Equal(t, new(big.Int).Add(para.Tokens(100_000_000), amount), (*big.Int)(snap.ReserveBalance))
}

func getPool(t *testing.T, url string) *pool.Snapshot {
	body, code := testnode.HTTPGet(t, url+"/pool")
	require.Equal(t, http.StatusOK, code, string(body))

	var snap pool.Snapshot
	require.NoError(t, json.Unmarshal(body, &snap))
	return &snap
}
