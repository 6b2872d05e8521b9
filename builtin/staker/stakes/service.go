// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakes

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/paradox-labs/para/builtin/solidity"
	"github.com/paradox-labs/para/para"
)

var (
	slotAccounts = para.BytesToBytes32([]byte("accounts"))
	slotStakes   = para.BytesToBytes32([]byte("stakes"))
)

// StakeKey locates the stake of owner at index.
func StakeKey(owner para.Address, index uint64) para.Bytes32 {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], index)
	return para.Blake2b(owner.Bytes(), b[:])
}

// Service manages accounts and their append-only stake records.
type Service struct {
	accounts *solidity.Mapping[para.Address, *Account]
	stakes   *solidity.Mapping[para.Bytes32, *Stake]
}

func New(sctx *solidity.Context) *Service {
	return &Service{
		accounts: solidity.NewMapping[para.Address, *Account](sctx, slotAccounts),
		stakes:   solidity.NewMapping[para.Bytes32, *Stake](sctx, slotStakes),
	}
}

// GetAccount returns the account of owner, zero valued if it never staked.
func (s *Service) GetAccount(owner para.Address) (*Account, error) {
	acc, err := s.accounts.Get(owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get account")
	}
	acc.normalize()
	return acc, nil
}

// GetStake returns the stake of owner at index, nil if no such stake exists.
func (s *Service) GetStake(owner para.Address, index uint64) (*Stake, error) {
	stake, err := s.stakes.Get(StakeKey(owner, index))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get stake")
	}
	if stake.IsEmpty() {
		return nil, nil
	}
	return stake, nil
}

// List returns every stake the owner ever opened, indexed by id.
func (s *Service) List(owner para.Address) ([]*Stake, error) {
	acc, err := s.GetAccount(owner)
	if err != nil {
		return nil, err
	}
	list := make([]*Stake, 0, acc.LastStakeID)
	for i := range acc.LastStakeID {
		stake, err := s.GetStake(owner, i)
		if err != nil {
			return nil, err
		}
		if stake == nil {
			return nil, errors.Errorf("stake %d of %v missing", i, owner)
		}
		list = append(list, stake)
	}
	return list, nil
}

// Append records a new open stake and credits the owner's aggregates. It returns the stake id.
func (s *Service) Append(owner para.Address, stake *Stake) (uint64, error) {
	acc, err := s.GetAccount(owner)
	if err != nil {
		return 0, err
	}
	id := acc.LastStakeID
	if err := s.stakes.Set(StakeKey(owner, id), stake); err != nil {
		return 0, errors.Wrap(err, "failed to set stake")
	}

	acc.TotalAmount.Add(acc.TotalAmount, stake.Amount)
	acc.ShareTotal.Add(acc.ShareTotal, stake.Shares)
	acc.RewardDebt.Add(acc.RewardDebt, stake.debt())
	acc.LastStakeID++
	if err := s.accounts.Set(owner, acc); err != nil {
		return 0, errors.Wrap(err, "failed to set account")
	}
	return id, nil
}

// Close marks the stake closed and removes it from the owner's aggregates.
func (s *Service) Close(owner para.Address, index uint64, stake *Stake) error {
	if stake.Closed {
		return errors.New("stake already closed")
	}
	acc, err := s.GetAccount(owner)
	if err != nil {
		return err
	}

	stake.Closed = true
	if err := s.stakes.Set(StakeKey(owner, index), stake); err != nil {
		return errors.Wrap(err, "failed to set stake")
	}

	acc.TotalAmount.Sub(acc.TotalAmount, stake.Amount)
	acc.ShareTotal.Sub(acc.ShareTotal, stake.Shares)
	acc.RewardDebt.Sub(acc.RewardDebt, stake.debt())
	if acc.TotalAmount.Sign() < 0 || acc.ShareTotal.Sign() < 0 || acc.RewardDebt.Sign() < 0 {
		return errors.New("account aggregates underflow")
	}
	if err := s.accounts.Set(owner, acc); err != nil {
		return errors.Wrap(err, "failed to set account")
	}
	return nil
}
