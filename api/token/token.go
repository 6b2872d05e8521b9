// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/paradox-labs/para/api/utils"
	"github.com/paradox-labs/para/host"
)

type Token struct {
	host *host.Host
}

func New(h *host.Host) *Token {
	return &Token{host: h}
}

func (t *Token) handleGetSupply(w http.ResponseWriter, _ *http.Request) error {
	var supply *big.Int
	err := t.host.View(func(env *host.Env) (err error) {
		supply, err = env.Token.TotalSupply()
		return
	})
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &Supply{TotalSupply: (*math.HexOrDecimal256)(supply)})
}

func (t *Token) handleTransfer(w http.ResponseWriter, req *http.Request) error {
	var body TransferRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if body.Amount == nil {
		return utils.BadRequest(errors.New("amount: required"))
	}

	err := t.host.Execute("transfer", func(env *host.Env) error {
		return env.Token.Transfer(body.From, body.To, (*big.Int)(body.Amount))
	})
	if err != nil {
		return utils.Revert(err)
	}
	return utils.WriteJSON(w, utils.M{})
}

func (t *Token) handleApprove(w http.ResponseWriter, req *http.Request) error {
	var body ApproveRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if body.Amount == nil {
		return utils.BadRequest(errors.New("amount: required"))
	}

	err := t.host.Execute("approve", func(env *host.Env) error {
		return env.Token.Approve(body.Owner, body.Spender, (*big.Int)(body.Amount))
	})
	if err != nil {
		return utils.Revert(err)
	}
	return utils.WriteJSON(w, utils.M{})
}

func (t *Token) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").
		Methods(http.MethodGet).
		Name("token_get_supply").
		HandlerFunc(utils.WrapHandlerFunc(t.handleGetSupply))
	sub.Path("/transfer").
		Methods(http.MethodPost).
		Name("token_transfer").
		HandlerFunc(utils.WrapHandlerFunc(t.handleTransfer))
	sub.Path("/approve").
		Methods(http.MethodPost).
		Name("token_approve").
		HandlerFunc(utils.WrapHandlerFunc(t.handleApprove))
}
