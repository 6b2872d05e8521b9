// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staker

import (
	"math/big"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/paradox-labs/para/api/utils"
	"github.com/paradox-labs/para/builtin"
	"github.com/paradox-labs/para/host"
)

type Staker struct {
	host *host.Host
}

func New(h *host.Host) *Staker {
	return &Staker{host: h}
}

func (s *Staker) handleGetConfig(w http.ResponseWriter, _ *http.Request) error {
	return utils.WriteJSON(w, convertConfig(builtin.Staker.Address, s.host.Config()))
}

// handleFund moves tokens of an account into the staker to back future rewards.
func (s *Staker) handleFund(w http.ResponseWriter, req *http.Request) error {
	var body FundRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if body.Amount == nil {
		return utils.BadRequest(errors.New("amount: required"))
	}

	err := s.host.Execute("fund", func(env *host.Env) error {
		return env.Staker.Fund(body.From, (*big.Int)(body.Amount))
	})
	if err != nil {
		return utils.Revert(err)
	}
	return utils.WriteJSON(w, utils.M{})
}

func (s *Staker) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").
		Methods(http.MethodGet).
		Name("staker_get_config").
		HandlerFunc(utils.WrapHandlerFunc(s.handleGetConfig))
	sub.Path("/fund").
		Methods(http.MethodPost).
		Name("staker_fund").
		HandlerFunc(utils.WrapHandlerFunc(s.handleFund))
}
