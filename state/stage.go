// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/paradox-labs/para/cache"
	"github.com/paradox-labs/para/kv"
)

// Stage abstracts changes of storage waiting for commit.
type Stage struct {
	db      kv.Store
	cache   *cache.LRU[storageKey, rlp.RawValue]
	changes map[storageKey]rlp.RawValue
}

// Len returns the number of changed slots.
func (s *Stage) Len() int {
	return len(s.changes)
}

// Commit writes all changes into the kv store atomically.
func (s *Stage) Commit() error {
	bulk := s.db.Bulk()
	for k, v := range s.changes {
		var err error
		if len(v) == 0 {
			err = bulk.Delete(k.encode())
		} else {
			err = bulk.Put(k.encode(), v)
		}
		if err != nil {
			return &Error{err}
		}
	}
	if err := bulk.Write(); err != nil {
		return &Error{err}
	}
	if s.cache != nil {
		for k, v := range s.changes {
			if len(v) == 0 {
				s.cache.Remove(k)
			} else {
				s.cache.Add(k, v)
			}
		}
	}
	metricStorageCommits().AddWithLabel(int64(len(s.changes)), map[string]string{"type": "slot"})
	return nil
}
