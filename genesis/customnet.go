// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/paradox-labs/para/builtin"
	"github.com/paradox-labs/para/builtin/staker"
	"github.com/paradox-labs/para/builtin/staker/bonus"
	"github.com/paradox-labs/para/builtin/staker/exit"
	"github.com/paradox-labs/para/para"
	"github.com/paradox-labs/para/state"
)

// CustomGenesis is the yaml description of a network.
type CustomGenesis struct {
	Name       string    `yaml:"name"`
	LaunchTime uint64    `yaml:"launchTime"`
	Accounts   []Account `yaml:"accounts"`
	Staker     Staker    `yaml:"staker"`
}

// Account is an initial token allocation.
type Account struct {
	Address para.Address          `yaml:"address"`
	Balance *math.HexOrDecimal256 `yaml:"balance"`
}

// Staker holds the staking engine parameters. Zero values take the defaults.
type Staker struct {
	EmissionPerDay       *math.HexOrDecimal256 `yaml:"emissionPerDay,omitempty"`
	RewardsReserve       para.Address          `yaml:"rewardsReserve"`
	DiversionBasisPoints uint64                `yaml:"diversionBasisPoints,omitempty"`
	MinLockDays          uint64                `yaml:"minLockDays,omitempty"`
	MaxLockDays          uint64                `yaml:"maxLockDays,omitempty"`
	ExitPolicy           string                `yaml:"exitPolicy,omitempty"`
	PenaltyBasisPoints   uint64                `yaml:"penaltyBasisPoints,omitempty"`
	Funding              *math.HexOrDecimal256 `yaml:"funding,omitempty"`
	Bonus                Bonus                 `yaml:"bonus,omitempty"`
}

// Bonus overrides the saturating bonus curve. Unset fields keep the defaults.
type Bonus struct {
	AmountCap         *math.HexOrDecimal256 `yaml:"amountCap,omitempty"`
	AmountDivisor     *math.HexOrDecimal256 `yaml:"amountDivisor,omitempty"`
	LengthCapDays     *uint64               `yaml:"lengthCapDays,omitempty"`
	LengthDivisorDays *uint64               `yaml:"lengthDivisorDays,omitempty"`
}

func (b *Bonus) curve(minDays uint64) *bonus.Saturating {
	curve := bonus.DefaultCurve()
	curve.MinDays = minDays
	if b.AmountCap != nil {
		curve.AmountCap = new(big.Int).Set((*big.Int)(b.AmountCap))
	}
	if b.AmountDivisor != nil {
		curve.AmountDivisor = new(big.Int).Set((*big.Int)(b.AmountDivisor))
	}
	if b.LengthCapDays != nil {
		curve.LengthCapDays = *b.LengthCapDays
	}
	if b.LengthDivisorDays != nil {
		curve.LengthDivisorDays = *b.LengthDivisorDays
	}
	return curve
}

// LoadCustomGenesis reads a yaml genesis file.
func LoadCustomGenesis(path string) (*CustomGenesis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read genesis file")
	}
	var gen CustomGenesis
	if err := yaml.Unmarshal(data, &gen); err != nil {
		return nil, errors.Wrap(err, "decode genesis file")
	}
	return &gen, nil
}

// Config converts the parameters into an engine config.
func (s *Staker) Config() (staker.Config, error) {
	cfg := staker.DefaultConfig(s.RewardsReserve)
	if s.EmissionPerDay != nil {
		cfg.EmissionRatePerSecond = para.DailyToPerSecond((*big.Int)(s.EmissionPerDay))
	}
	cfg.DiversionBasisPoints = s.DiversionBasisPoints
	if s.MinLockDays != 0 {
		cfg.MinLockDays = s.MinLockDays
	}
	if s.MaxLockDays != 0 {
		cfg.MaxLockDays = s.MaxLockDays
	}
	cfg.Bonus = s.Bonus.curve(cfg.MinLockDays)

	policy, err := exit.Parse(s.ExitPolicy, s.PenaltyBasisPoints)
	if err != nil {
		return staker.Config{}, err
	}
	cfg.Exit = policy

	if err := cfg.Validate(); err != nil {
		return staker.Config{}, err
	}
	return cfg, nil
}

// NewCustomNet create custom network genesis.
func NewCustomNet(gen *CustomGenesis) (*Genesis, error) {
	cfg, err := gen.Staker.Config()
	if err != nil {
		return nil, errors.Wrap(err, "staker")
	}
	for _, a := range gen.Accounts {
		if a.Balance == nil || (*big.Int)(a.Balance).Sign() < 1 {
			return nil, fmt.Errorf("%s: balance must be a positive integer", a.Address)
		}
	}
	if gen.Staker.Funding != nil && (*big.Int)(gen.Staker.Funding).Sign() < 0 {
		return nil, errors.New("staker funding must not be negative")
	}

	builder := new(Builder).
		Timestamp(gen.LaunchTime).
		State(func(state *state.State) error {
			tok := builtin.Token.WithState(state)
			for _, a := range gen.Accounts {
				if err := tok.Mint(a.Address, (*big.Int)(a.Balance)); err != nil {
					return errors.Wrapf(err, "alloc %s", a.Address)
				}
			}
			if err := builtin.Staker.WithState(state, cfg).Initialize(gen.LaunchTime); err != nil {
				return err
			}
			if gen.Staker.Funding != nil {
				return tok.Mint(builtin.Staker.Address, (*big.Int)(gen.Staker.Funding))
			}
			return nil
		})

	name := gen.Name
	if name == "" {
		name = "customnet"
	}
	return &Genesis{builder, name, cfg, gen.LaunchTime}, nil
}

// Devnet returns the yaml description matching NewDevnet, as a template for custom networks.
func Devnet(launchTime uint64) *CustomGenesis {
	accs := DevAccounts()
	gen := &CustomGenesis{
		Name:       DevnetName,
		LaunchTime: launchTime,
		Staker: Staker{
			EmissionPerDay: (*math.HexOrDecimal256)(staker.DefaultEmissionPerDay),
			RewardsReserve: accs[0].Address,
			Funding:        (*math.HexOrDecimal256)(para.Tokens(100_000_000)),
		},
	}
	for _, a := range accs[1:] {
		gen.Accounts = append(gen.Accounts, Account{a.Address, (*math.HexOrDecimal256)(para.Tokens(1_000_000))})
	}
	return gen
}
