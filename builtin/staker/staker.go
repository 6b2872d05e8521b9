// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package staker implements the pooled staking engine: a continuously accruing reward pool
// shared pro rata by bonus shares across independent time locked stakes.
package staker

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/paradox-labs/para/builtin/reverts"
	"github.com/paradox-labs/para/builtin/solidity"
	"github.com/paradox-labs/para/builtin/staker/bonus"
	"github.com/paradox-labs/para/builtin/staker/exit"
	"github.com/paradox-labs/para/builtin/staker/pool"
	"github.com/paradox-labs/para/builtin/staker/stakes"
	"github.com/paradox-labs/para/log"
	"github.com/paradox-labs/para/para"
	"github.com/paradox-labs/para/state"
)

var (
	logger = log.WithContext("pkg", "staker")

	slotRewardsReserve = para.BytesToBytes32([]byte("rewards-reserve"))
)

func SetLogger(l log.Logger) {
	logger = l
}

// Asset is the fungible ledger the engine moves value through.
// Every call either fully succeeds or fails without effect.
type Asset interface {
	BalanceOf(addr para.Address) (*big.Int, error)
	Allowance(owner, spender para.Address) (*big.Int, error)
	Transfer(from, to para.Address, amount *big.Int) error
	TransferFrom(spender, owner, to para.Address, amount *big.Int) error
}

// Position is the view of an account and all of its stakes.
type Position struct {
	TotalAmount *big.Int
	ShareTotal  *big.Int
	RewardDebt  *big.Int
	LastStakeID uint64
	Stakes      []*stakes.Stake
}

// Staker implements native methods of the `Staker` contract.
type Staker struct {
	addr  para.Address
	state *state.State
	asset Asset
	cfg   Config

	poolService   *pool.Service
	stakesService *stakes.Service
	reserve       *solidity.Address
}

// New create a new instance. The config is expected to be validated.
func New(addr para.Address, state *state.State, asset Asset, cfg Config) *Staker {
	sctx := solidity.NewContext(addr, state)

	return &Staker{
		addr:  addr,
		state: state,
		asset: asset,
		cfg:   cfg,

		poolService:   pool.New(sctx),
		stakesService: stakes.New(sctx),
		reserve:       solidity.NewAddress(sctx, slotRewardsReserve),
	}
}

// Address returns the account holding the engine's custody.
func (s *Staker) Address() para.Address {
	return s.addr
}

func (s *Staker) Config() Config {
	return s.cfg
}

// atomic runs fn and rolls back every state change it made if it fails.
func (s *Staker) atomic(fn func() error) error {
	revision := s.state.NewCheckpoint()
	if err := fn(); err != nil {
		s.state.RevertTo(revision)
		return err
	}
	return nil
}

// transferErr maps a failed asset call onto the engine's error taxonomy.
func transferErr(err error) error {
	if reverts.IsRevertErr(err) {
		return errors.WithMessage(ErrTransferFailed, err.Error())
	}
	return errors.Wrap(err, "asset transfer")
}

//
// Getters - no state change
//

// VirtualPool returns the pool as of its last accrual.
func (s *Staker) VirtualPool() (*pool.Pool, error) {
	p, err := s.poolService.Get()
	if errors.Is(err, pool.ErrNotInitialized) {
		return nil, ErrNotInitialized
	}
	return p, err
}

// PendingAccRewardPerShare returns the accumulator as an accrual at now would leave it.
func (s *Staker) PendingAccRewardPerShare(now uint64) (*big.Int, error) {
	acc, err := s.poolService.Pending(now)
	if errors.Is(err, pool.ErrNotInitialized) {
		return nil, ErrNotInitialized
	}
	return acc, err
}

// RewardsReserve returns the address receiving diversions and penalties.
func (s *Staker) RewardsReserve() (para.Address, error) {
	return s.reserve.Get()
}

// ReserveBalance returns the engine's own balance, from which every payout is drawn.
func (s *Staker) ReserveBalance() (*big.Int, error) {
	return s.asset.BalanceOf(s.addr)
}

// GetUserPosition returns the aggregates and stakes of addr.
func (s *Staker) GetUserPosition(addr para.Address) (*Position, error) {
	acc, err := s.stakesService.GetAccount(addr)
	if err != nil {
		return nil, err
	}
	list, err := s.stakesService.List(addr)
	if err != nil {
		return nil, err
	}
	return &Position{
		TotalAmount: acc.TotalAmount,
		ShareTotal:  acc.ShareTotal,
		RewardDebt:  acc.RewardDebt,
		LastStakeID: acc.LastStakeID,
		Stakes:      list,
	}, nil
}

// GetStakeRewards projects what closing the stake at now would yield under the exit policy.
func (s *Staker) GetStakeRewards(addr para.Address, index uint64, now uint64) (*exit.Settlement, error) {
	stake, err := s.stakesService.GetStake(addr, index)
	if err != nil {
		return nil, err
	}
	if stake == nil {
		return nil, ErrStakeNotFound
	}
	if stake.Closed {
		return nil, ErrAlreadyClosed
	}
	acc, err := s.PendingAccRewardPerShare(now)
	if err != nil {
		return nil, err
	}
	return s.cfg.Exit.Project(stake, stake.Earned(acc), now), nil
}

//
// Setters - state change
//

// Initialize starts the emission clock at now and records the rewards reserve.
func (s *Staker) Initialize(now uint64) error {
	if err := s.cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid staker config")
	}
	return s.atomic(func() error {
		if err := s.poolService.Initialize(s.cfg.EmissionRatePerSecond, now); err != nil {
			return err
		}
		s.reserve.Set(&s.cfg.RewardsReserve)
		logger.Info("staker initialized",
			"rate", s.cfg.EmissionRatePerSecond,
			"reserve", s.cfg.RewardsReserve,
			"exit", s.cfg.Exit.Name(),
		)
		return nil
	})
}

// Fund moves amount from the funder into the engine's reserve balance.
func (s *Staker) Fund(from para.Address, amount *big.Int) (err error) {
	defer func() { observeOperation("fund", err) }()

	logger.Debug("fund", "from", from, "amount", amount)
	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if err := s.asset.Transfer(from, s.addr, amount); err != nil {
		logger.Info("fund failed", "from", from, "error", err)
		return transferErr(err)
	}
	metricStakedTokens().AddWithLabel(wholeTokens(amount), map[string]string{"flow": "funded"})
	logger.Info("reserve funded", "from", from, "amount", amount)
	return nil
}

// Stake opens a new stake of amount locked for lockedDays and returns its id.
// The caller must have approved the engine to pull amount.
func (s *Staker) Stake(caller para.Address, amount *big.Int, lockedDays uint64, now uint64) (id uint64, err error) {
	defer func() { observeOperation("stake", err) }()

	logger.Debug("stake", "caller", caller, "amount", amount, "lockedDays", lockedDays)
	if amount == nil || amount.Sign() <= 0 {
		return 0, ErrInvalidAmount
	}
	if lockedDays < s.cfg.MinLockDays || lockedDays > s.cfg.MaxLockDays {
		return 0, ErrInvalidLockDuration
	}

	err = s.atomic(func() error {
		p, err := s.accrue(now)
		if err != nil {
			return err
		}

		allowance, err := s.asset.Allowance(caller, s.addr)
		if err != nil {
			return errors.Wrap(err, "get allowance")
		}
		if allowance.Cmp(amount) < 0 {
			return ErrInsufficientAllowance
		}
		if err := s.asset.TransferFrom(s.addr, caller, s.addr, amount); err != nil {
			return transferErr(err)
		}
		if err := s.divert(amount); err != nil {
			return err
		}

		shares := bonus.Shares(s.cfg.Bonus, amount, lockedDays)
		stake := stakes.NewStake(amount, lockedDays, now, shares, p.AccRewardPerShare)
		if id, err = s.stakesService.Append(caller, stake); err != nil {
			return err
		}
		return s.poolService.Add(amount, shares)
	})
	if err != nil {
		logger.Info("stake failed", "caller", caller, "error", err)
		return 0, err
	}

	metricStakedTokens().AddWithLabel(wholeTokens(amount), map[string]string{"flow": "staked"})
	s.observePool()
	logger.Info("stake opened", "caller", caller, "id", id, "amount", amount, "lockedDays", lockedDays)
	return id, nil
}

// divert sends the configured fraction of a new stake to the rewards reserve.
func (s *Staker) divert(amount *big.Int) error {
	diverted := new(big.Int).Mul(amount, new(big.Int).SetUint64(s.cfg.DiversionBasisPoints))
	diverted.Quo(diverted, new(big.Int).SetUint64(para.BasisPoints))
	if diverted.Sign() == 0 {
		return nil
	}
	reserve, err := s.reserve.Get()
	if err != nil {
		return errors.Wrap(err, "get rewards reserve")
	}
	if err := s.asset.Transfer(s.addr, reserve, diverted); err != nil {
		return transferErr(err)
	}
	return nil
}

// EndStake closes count stakes of caller starting at stakeIndex.
// Either every stake in the range is settled or none is.
func (s *Staker) EndStake(caller para.Address, stakeIndex, count uint64, now uint64) (settlements []*exit.Settlement, err error) {
	defer func() { observeOperation("end_stake", err) }()

	logger.Debug("end stake", "caller", caller, "index", stakeIndex, "count", count)
	if count == 0 || count > MaxBatchSize {
		return nil, ErrInvalidRange
	}

	err = s.atomic(func() error {
		acc, err := s.stakesService.GetAccount(caller)
		if err != nil {
			return err
		}
		if stakeIndex >= acc.LastStakeID || count > acc.LastStakeID-stakeIndex {
			return ErrStakeNotFound
		}

		settlements = make([]*exit.Settlement, 0, count)
		for index := stakeIndex; index < stakeIndex+count; index++ {
			settlement, err := s.closeStake(caller, index, now)
			if err != nil {
				return err
			}
			settlements = append(settlements, settlement)
		}
		return nil
	})
	if err != nil {
		logger.Info("end stake failed", "caller", caller, "index", stakeIndex, "error", err)
		return nil, err
	}

	paid := new(big.Int)
	for _, settlement := range settlements {
		paid.Add(paid, settlement.Payout)
	}
	metricStakedTokens().AddWithLabel(wholeTokens(paid), map[string]string{"flow": "paid"})
	s.observePool()
	logger.Info("stakes closed", "caller", caller, "index", stakeIndex, "count", count)
	return settlements, nil
}

func (s *Staker) closeStake(owner para.Address, index uint64, now uint64) (*exit.Settlement, error) {
	stake, err := s.stakesService.GetStake(owner, index)
	if err != nil {
		return nil, err
	}
	if stake == nil {
		return nil, ErrStakeNotFound
	}
	if stake.Closed {
		return nil, ErrAlreadyClosed
	}

	p, err := s.accrue(now)
	if err != nil {
		return nil, err
	}
	settlement, err := s.cfg.Exit.Settle(stake, stake.Earned(p.AccRewardPerShare), now)
	if err != nil {
		return nil, err
	}

	if err := s.stakesService.Close(owner, index, stake); err != nil {
		return nil, err
	}
	if err := s.poolService.Sub(stake.Amount, stake.Shares); err != nil {
		return nil, err
	}

	balance, err := s.asset.BalanceOf(s.addr)
	if err != nil {
		return nil, errors.Wrap(err, "get reserve balance")
	}
	if balance.Cmp(settlement.Entitlement) < 0 {
		return nil, ErrInsolvent
	}
	if settlement.Payout.Sign() > 0 {
		if err := s.asset.Transfer(s.addr, owner, settlement.Payout); err != nil {
			return nil, transferErr(err)
		}
	}
	if settlement.CappedPenalty.Sign() > 0 {
		reserve, err := s.reserve.Get()
		if err != nil {
			return nil, errors.Wrap(err, "get rewards reserve")
		}
		if err := s.asset.Transfer(s.addr, reserve, settlement.CappedPenalty); err != nil {
			return nil, transferErr(err)
		}
	}

	logger.Debug("stake settled",
		"owner", owner,
		"index", index,
		"entitlement", settlement.Entitlement,
		"penalty", settlement.CappedPenalty,
	)
	return settlement, nil
}

func (s *Staker) accrue(now uint64) (*pool.Pool, error) {
	p, err := s.poolService.Accrue(now)
	if errors.Is(err, pool.ErrNotInitialized) {
		return nil, ErrNotInitialized
	}
	return p, err
}

func (s *Staker) observePool() {
	p, err := s.poolService.Get()
	if err != nil {
		return
	}
	metricTotalPrincipal().Set(wholeTokens(p.TotalPrincipal))
	metricTotalShares().Set(wholeTokens(p.TotalShares))
}
