// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package solidity

import (
	"github.com/paradox-labs/para/para"
)

// Address is a wrapper for storage and retrieval of an address at a fixed slot.
type Address struct {
	context *Context
	pos     para.Bytes32
}

func NewAddress(context *Context, pos para.Bytes32) *Address {
	return &Address{context: context, pos: pos}
}

func (a *Address) Get() (para.Address, error) {
	storage, err := a.context.state.GetStorage(a.context.address, a.pos)
	if err != nil {
		return para.Address{}, err
	}
	return para.BytesToAddress(storage.Bytes()), nil
}

// Set stores addr, a nil addr clears the slot.
func (a *Address) Set(addr *para.Address) {
	var storage para.Bytes32
	if addr != nil {
		storage = para.BytesToBytes32(addr.Bytes())
	}
	a.context.state.SetStorage(a.context.address, a.pos, storage)
}
