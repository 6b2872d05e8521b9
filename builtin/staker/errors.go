// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staker

import (
	"github.com/paradox-labs/para/builtin/reverts"
	"github.com/paradox-labs/para/builtin/staker/exit"
)

var (
	ErrInvalidAmount         = reverts.New("staker: amount must be positive")
	ErrInvalidLockDuration   = reverts.New("staker: lock duration out of bounds")
	ErrInvalidRange          = reverts.New("staker: invalid stake range")
	ErrStakeNotFound         = reverts.New("staker: stake not found")
	ErrLockedStake           = exit.ErrLockedStake
	ErrAlreadyClosed         = reverts.New("staker: stake already closed")
	ErrInsufficientAllowance = reverts.New("staker: insufficient allowance")
	ErrTransferFailed        = reverts.New("staker: transfer failed")
	ErrInsolvent             = reverts.New("staker: reserve balance cannot cover entitlement")
	ErrNotInitialized        = reverts.New("staker: not initialized")
)
