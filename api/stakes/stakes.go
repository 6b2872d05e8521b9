// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakes

import (
	"math/big"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/paradox-labs/para/api/utils"
	"github.com/paradox-labs/para/api/utils/types"
	"github.com/paradox-labs/para/builtin/staker/exit"
	"github.com/paradox-labs/para/host"
)

type Stakes struct {
	host *host.Host
}

func New(h *host.Host) *Stakes {
	return &Stakes{host: h}
}

func (s *Stakes) handleStake(w http.ResponseWriter, req *http.Request) error {
	var body StakeRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if body.Amount == nil {
		return utils.BadRequest(errors.New("amount: required"))
	}

	var id uint64
	err := s.host.Execute("stake", func(env *host.Env) (err error) {
		id, err = env.Staker.Stake(body.Caller, (*big.Int)(body.Amount), body.LockedDays, env.Now)
		return
	})
	if err != nil {
		return utils.Revert(err)
	}
	return utils.WriteJSON(w, &StakeResult{ID: id})
}

func (s *Stakes) handleEndStake(w http.ResponseWriter, req *http.Request) error {
	var body EndStakeRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}

	var settlements []*exit.Settlement
	err := s.host.Execute("end-stake", func(env *host.Env) (err error) {
		settlements, err = env.Staker.EndStake(body.Caller, body.StakeIndex, body.Count, env.Now)
		return
	})
	if err != nil {
		return utils.Revert(err)
	}
	return utils.WriteJSON(w, types.ConvertSettlements(settlements))
}

func (s *Stakes) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").
		Methods(http.MethodPost).
		Name("stakes_stake").
		HandlerFunc(utils.WrapHandlerFunc(s.handleStake))
	sub.Path("/end").
		Methods(http.MethodPost).
		Name("stakes_end_stake").
		HandlerFunc(utils.WrapHandlerFunc(s.handleEndStake))
}
