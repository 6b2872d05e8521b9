// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/gorilla/mux"

	"github.com/paradox-labs/para/api/utils"
	"github.com/paradox-labs/para/api/utils/types"
	"github.com/paradox-labs/para/host"
)

type Pool struct {
	host *host.Host
}

func New(h *host.Host) *Pool {
	return &Pool{host: h}
}

func (p *Pool) handleGetPool(w http.ResponseWriter, _ *http.Request) error {
	var snap *Snapshot
	err := p.host.View(func(env *host.Env) error {
		pl, err := env.Staker.VirtualPool()
		if err != nil {
			return err
		}
		pending, err := env.Staker.PendingAccRewardPerShare(env.Now)
		if err != nil {
			return err
		}
		reserve, err := env.Staker.RewardsReserve()
		if err != nil {
			return err
		}
		balance, err := env.Staker.ReserveBalance()
		if err != nil {
			return err
		}
		snap = &Snapshot{
			Pool:                     types.ConvertPool(pl),
			PendingAccRewardPerShare: (*math.HexOrDecimal256)(pending),
			RewardsReserve:           reserve,
			ReserveBalance:           (*math.HexOrDecimal256)(balance),
		}
		return nil
	})
	if err != nil {
		return utils.Revert(err)
	}
	return utils.WriteJSON(w, snap)
}

func (p *Pool) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").
		Methods(http.MethodGet).
		Name("pool_get_pool").
		HandlerFunc(utils.WrapHandlerFunc(p.handleGetPool))
}
