// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/paradox-labs/para/builtin/solidity"
	"github.com/paradox-labs/para/para"
)

var slotPool = para.BytesToBytes32([]byte("pool"))

var (
	ErrOverflow           = errors.New("pool: arithmetic overflow")
	ErrUnderflow          = errors.New("pool: totals underflow")
	ErrNotInitialized     = errors.New("pool: not initialized")
	ErrAlreadyInitialized = errors.New("pool: already initialized")
)

// Service manages the reward accumulator.
// Every mutation of the totals must be preceded by Accrue at the current time.
type Service struct {
	pool *solidity.Raw[*Pool]
}

func New(sctx *solidity.Context) *Service {
	return &Service{
		pool: solidity.NewRaw[*Pool](sctx, slotPool),
	}
}

// Initialize sets the emission rate and starts the clock at now.
func (s *Service) Initialize(rate *big.Int, now uint64) error {
	empty, err := s.pool.IsEmpty()
	if err != nil {
		return errors.Wrap(err, "failed to get pool")
	}
	if !empty {
		return ErrAlreadyInitialized
	}
	if rate == nil || rate.Sign() < 0 {
		return errors.New("pool: invalid emission rate")
	}
	return s.set(&Pool{
		TotalPrincipal:        new(big.Int),
		TotalShares:           new(big.Int),
		EmissionRatePerSecond: new(big.Int).Set(rate),
		AccRewardPerShare:     new(big.Int),
		LastAccrualTime:       now,
	})
}

// Get returns the stored pool, as of the last accrual.
func (s *Service) Get() (*Pool, error) {
	p, err := s.pool.Get()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pool")
	}
	if p.IsEmpty() {
		return nil, ErrNotInitialized
	}
	return p, nil
}

func (s *Service) set(p *Pool) error {
	if err := s.pool.Set(p); err != nil {
		return errors.Wrap(err, "failed to set pool")
	}
	return nil
}

// Accrue brings the accumulator up to now and returns the updated pool.
func (s *Service) Accrue(now uint64) (*Pool, error) {
	p, err := s.Get()
	if err != nil {
		return nil, err
	}
	if now <= p.LastAccrualTime {
		return p, nil
	}
	acc, err := p.accumulated(now)
	if err != nil {
		return nil, err
	}
	p.AccRewardPerShare = acc
	p.LastAccrualTime = now
	if err := s.set(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Pending returns the accumulator projected to now, without writing it.
func (s *Service) Pending(now uint64) (*big.Int, error) {
	p, err := s.Get()
	if err != nil {
		return nil, err
	}
	return p.accumulated(now)
}

// Add credits an opened stake to the totals.
func (s *Service) Add(amount, shares *big.Int) error {
	p, err := s.Get()
	if err != nil {
		return err
	}
	p.TotalPrincipal.Add(p.TotalPrincipal, amount)
	p.TotalShares.Add(p.TotalShares, shares)
	return s.set(p)
}

// Sub removes a closed stake from the totals.
func (s *Service) Sub(amount, shares *big.Int) error {
	p, err := s.Get()
	if err != nil {
		return err
	}
	if p.TotalPrincipal.Cmp(amount) < 0 || p.TotalShares.Cmp(shares) < 0 {
		return ErrUnderflow
	}
	p.TotalPrincipal.Sub(p.TotalPrincipal, amount)
	p.TotalShares.Sub(p.TotalShares, shares)
	return s.set(p)
}
