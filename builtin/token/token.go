// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package token implements the fungible balance ledger every value transfer goes through.
package token

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/paradox-labs/para/builtin/reverts"
	"github.com/paradox-labs/para/builtin/solidity"
	"github.com/paradox-labs/para/para"
	"github.com/paradox-labs/para/state"
)

var (
	ErrInvalidAmount         = reverts.New("token: invalid amount")
	ErrInsufficientBalance   = reverts.New("token: insufficient balance")
	ErrInsufficientAllowance = reverts.New("token: insufficient allowance")
	ErrSupplyOverflow        = reverts.New("token: total supply overflow")
)

var (
	slotTotalSupply = nameToSlot("total-supply")
	slotBalances    = nameToSlot("balances")
	slotAllowances  = nameToSlot("allowances")
)

func nameToSlot(name string) para.Bytes32 {
	return para.BytesToBytes32([]byte(name))
}

func allowanceKey(owner, spender para.Address) para.Bytes32 {
	return para.Blake2b(owner.Bytes(), spender.Bytes())
}

// Token is the balance ledger bound to a state.
type Token struct {
	addr        para.Address
	totalSupply *solidity.Uint256
	balances    *solidity.Mapping[para.Address, *big.Int]
	allowances  *solidity.Mapping[para.Bytes32, *big.Int]
}

func New(addr para.Address, state *state.State) *Token {
	ctx := solidity.NewContext(addr, state)
	return &Token{
		addr:        addr,
		totalSupply: solidity.NewUint256(ctx, slotTotalSupply),
		balances:    solidity.NewMapping[para.Address, *big.Int](ctx, slotBalances),
		allowances:  solidity.NewMapping[para.Bytes32, *big.Int](ctx, slotAllowances),
	}
}

// Address returns the account the ledger lives in.
func (t *Token) Address() para.Address {
	return t.addr
}

// TotalSupply returns the amount of tokens ever minted.
func (t *Token) TotalSupply() (*big.Int, error) {
	supply, err := t.totalSupply.Get()
	if err != nil {
		return nil, errors.Wrap(err, "get total supply")
	}
	return supply, nil
}

// BalanceOf returns the balance of addr.
func (t *Token) BalanceOf(addr para.Address) (*big.Int, error) {
	bal, err := t.balances.Get(addr)
	if err != nil {
		return nil, errors.Wrap(err, "get balance")
	}
	return bal, nil
}

func (t *Token) setBalance(addr para.Address, bal *big.Int) error {
	if bal.Sign() == 0 {
		t.balances.Delete(addr)
		return nil
	}
	return errors.Wrap(t.balances.Set(addr, bal), "set balance")
}

// Mint creates amount new tokens for to.
func (t *Token) Mint(to para.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return ErrInvalidAmount
	}
	if err := t.totalSupply.Add(amount); err != nil {
		return ErrSupplyOverflow
	}
	bal, err := t.BalanceOf(to)
	if err != nil {
		return err
	}
	return t.setBalance(to, bal.Add(bal, amount))
}

// Transfer moves amount from one account to another.
func (t *Token) Transfer(from, to para.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return ErrInvalidAmount
	}
	fromBal, err := t.BalanceOf(from)
	if err != nil {
		return err
	}
	if fromBal.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	if err := t.setBalance(from, fromBal.Sub(fromBal, amount)); err != nil {
		return err
	}
	toBal, err := t.BalanceOf(to)
	if err != nil {
		return err
	}
	return t.setBalance(to, toBal.Add(toBal, amount))
}

// Approve sets the amount spender may move out of owner's balance.
func (t *Token) Approve(owner, spender para.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return ErrInvalidAmount
	}
	key := allowanceKey(owner, spender)
	if amount.Sign() == 0 {
		t.allowances.Delete(key)
		return nil
	}
	return errors.Wrap(t.allowances.Set(key, amount), "set allowance")
}

// Allowance returns what spender may still move out of owner's balance.
func (t *Token) Allowance(owner, spender para.Address) (*big.Int, error) {
	allowance, err := t.allowances.Get(allowanceKey(owner, spender))
	if err != nil {
		return nil, errors.Wrap(err, "get allowance")
	}
	return allowance, nil
}

// TransferFrom moves amount out of owner's balance on behalf of spender, consuming allowance.
func (t *Token) TransferFrom(spender, owner, to para.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return ErrInvalidAmount
	}
	allowance, err := t.Allowance(owner, spender)
	if err != nil {
		return err
	}
	if allowance.Cmp(amount) < 0 {
		return ErrInsufficientAllowance
	}
	if err := t.Transfer(owner, to, amount); err != nil {
		return err
	}
	return t.Approve(owner, spender, allowance.Sub(allowance, amount))
}
