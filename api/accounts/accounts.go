// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package accounts

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/paradox-labs/para/api/utils"
	"github.com/paradox-labs/para/api/utils/types"
	"github.com/paradox-labs/para/builtin/staker"
	"github.com/paradox-labs/para/host"
)

type Accounts struct {
	host *host.Host
}

func New(h *host.Host) *Accounts {
	return &Accounts{host: h}
}

func (a *Accounts) handleGetAccount(w http.ResponseWriter, req *http.Request) error {
	addr, err := utils.ParseAddress(mux.Vars(req)["address"], "address")
	if err != nil {
		return err
	}

	var acc Account
	err = a.host.View(func(env *host.Env) error {
		balance, err := env.Token.BalanceOf(addr)
		if err != nil {
			return err
		}
		allowance, err := env.Token.Allowance(addr, env.Staker.Address())
		if err != nil {
			return err
		}
		acc.Balance = (*math.HexOrDecimal256)(balance)
		acc.StakerAllowance = (*math.HexOrDecimal256)(allowance)
		return nil
	})
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &acc)
}

func (a *Accounts) handleGetPosition(w http.ResponseWriter, req *http.Request) error {
	addr, err := utils.ParseAddress(mux.Vars(req)["address"], "address")
	if err != nil {
		return err
	}

	var position *types.Position
	err = a.host.View(func(env *host.Env) error {
		p, err := env.Staker.GetUserPosition(addr)
		if err != nil {
			return err
		}
		position = types.ConvertPosition(p)
		return nil
	})
	if err != nil {
		return utils.Revert(err)
	}
	return utils.WriteJSON(w, position)
}

// handleGetStakeRewards projects the settlement of a stake, at the current time
// unless the query parameter "at" names another one.
func (a *Accounts) handleGetStakeRewards(w http.ResponseWriter, req *http.Request) error {
	addr, err := utils.ParseAddress(mux.Vars(req)["address"], "address")
	if err != nil {
		return err
	}
	index, err := utils.ParseUint(mux.Vars(req)["index"], "index")
	if err != nil {
		return err
	}
	var at *uint64
	if s := req.URL.Query().Get("at"); s != "" {
		t, err := utils.ParseUint(s, "at")
		if err != nil {
			return err
		}
		at = &t
	}

	var settlement *types.Settlement
	err = a.host.View(func(env *host.Env) error {
		now := env.Now
		if at != nil {
			now = *at
		}
		s, err := env.Staker.GetStakeRewards(addr, index, now)
		if err != nil {
			return err
		}
		settlement = types.ConvertSettlement(s)
		return nil
	})
	if errors.Is(err, staker.ErrStakeNotFound) {
		return utils.NotFound(err)
	}
	if err != nil {
		return utils.Revert(err)
	}
	return utils.WriteJSON(w, settlement)
}

func (a *Accounts) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/{address}").
		Methods(http.MethodGet).
		Name("accounts_get_account").
		HandlerFunc(utils.WrapHandlerFunc(a.handleGetAccount))
	sub.Path("/{address}/position").
		Methods(http.MethodGet).
		Name("accounts_get_position").
		HandlerFunc(utils.WrapHandlerFunc(a.handleGetPosition))
	sub.Path("/{address}/stakes/{index}/rewards").
		Methods(http.MethodGet).
		Name("accounts_get_stake_rewards").
		HandlerFunc(utils.WrapHandlerFunc(a.handleGetStakeRewards))
}
