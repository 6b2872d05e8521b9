// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package host runs the native contracts over a persistent store, one call at a time.
package host

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"github.com/paradox-labs/para/builtin"
	"github.com/paradox-labs/para/builtin/staker"
	"github.com/paradox-labs/para/builtin/token"
	"github.com/paradox-labs/para/log"
	"github.com/paradox-labs/para/state"
)

var logger = log.WithContext("pkg", "host")

// Env is what a call sees: both contracts bound to a fresh state and the call time.
type Env struct {
	Now    uint64
	State  *state.State
	Token  *token.Token
	Staker *staker.Staker
}

// Host serializes every call. A call runs on a fresh state that is committed
// only when the call succeeds.
type Host struct {
	mu     sync.Mutex
	stater *state.Stater
	cfg    staker.Config
	clock  clockwork.Clock
}

// New returns Host instance. A nil clock means the real clock.
func New(stater *state.Stater, cfg staker.Config, clock clockwork.Clock) *Host {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Host{
		stater: stater,
		cfg:    cfg,
		clock:  clock,
	}
}

// Now returns the current time in unix seconds.
func (h *Host) Now() uint64 {
	return uint64(h.clock.Now().Unix())
}

func (h *Host) Config() staker.Config {
	return h.cfg
}

func (h *Host) newEnv() *Env {
	st := h.stater.NewState()
	return &Env{
		Now:    h.Now(),
		State:  st,
		Token:  builtin.Token.WithState(st),
		Staker: builtin.Staker.WithState(st, h.cfg),
	}
}

// Execute runs fn and commits its changes if it returns nil.
func (h *Host) Execute(name string, fn func(env *Env) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	start := time.Now()
	env := h.newEnv()
	if err := fn(env); err != nil {
		metricExecutions().AddWithLabel(1, map[string]string{"name": name, "status": "reverted"})
		return err
	}

	stage := env.State.Stage()
	if err := stage.Commit(); err != nil {
		metricExecutions().AddWithLabel(1, map[string]string{"name": name, "status": "failed"})
		logger.Error("failed to commit", "name", name, "error", err)
		return errors.Wrap(err, "commit state")
	}
	metricExecutions().AddWithLabel(1, map[string]string{"name": name, "status": "committed"})
	metricExecutionDuration().Observe(time.Since(start).Milliseconds())
	logger.Debug("executed", "name", name, "changes", stage.Len(), "elapsed", time.Since(start))
	return nil
}

// View runs fn without committing anything it writes.
func (h *Host) View(fn func(env *Env) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return fn(h.newEnv())
}

// Run reports storage cache statistics every interval until ctx is done.
func (h *Host) Run(ctx context.Context, interval time.Duration) {
	ticker := h.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			h.reportCacheStats()
		}
	}
}

func (h *Host) reportCacheStats() {
	changed, hit, miss := h.stater.CacheStats().Stats()
	metricCacheHitMiss().SetWithLabel(hit, map[string]string{"event": "hit"})
	metricCacheHitMiss().SetWithLabel(miss, map[string]string{"event": "miss"})

	// only log when the hit rate moved
	if changed {
		var rate float64
		if lookups := hit + miss; lookups > 0 {
			rate = float64(hit) / float64(lookups)
		}
		logger.Info("storage cache stats", "hit", hit, "miss", miss, "rate", rate)
	}
}
