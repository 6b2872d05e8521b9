// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/paradox-labs/para/cache"
	"github.com/paradox-labs/para/kv"
)

const defaultCacheSize = 16384

// Stater is the state creator.
type Stater struct {
	db    kv.Store
	cache *cache.LRU[storageKey, rlp.RawValue]
}

// NewStater create a new stater.
func NewStater(db kv.Store) *Stater {
	c, _ := cache.NewLRU[storageKey, rlp.RawValue](defaultCacheSize)
	return &Stater{db, c}
}

// NewState create a new state object over committed storage.
func (s *Stater) NewState() *State {
	return newState(s.db, s.cache)
}

// CacheStats returns hit/miss counters of the shared read cache.
func (s *Stater) CacheStats() *cache.Stats {
	return s.cache.Stats()
}
