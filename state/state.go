// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/paradox-labs/para/cache"
	"github.com/paradox-labs/para/kv"
	"github.com/paradox-labs/para/para"
	"github.com/paradox-labs/para/stackedmap"
)

// StorageBucket is the kv bucket that holds committed storage.
const StorageBucket = kv.Bucket("s")

// Error is the error caused by state access failure.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("state: %v", e.cause)
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.cause
}

type storageKey struct {
	addr para.Address
	key  para.Bytes32
}

func (k storageKey) encode() []byte {
	return append(append(make([]byte, 0, 52), k.addr[:]...), k.key[:]...)
}

// State manages contract storage.
type State struct {
	db    kv.Store
	cache *cache.LRU[storageKey, rlp.RawValue]
	sm    *stackedmap.StackedMap[storageKey, rlp.RawValue]
}

// New create state object backed by db.
func New(db kv.Store) *State {
	return newState(db, nil)
}

func newState(db kv.Store, c *cache.LRU[storageKey, rlp.RawValue]) *State {
	s := &State{
		db:    StorageBucket.NewStore(db),
		cache: c,
	}
	s.sm = stackedmap.New(s.load)
	return s
}

func (s *State) load(key storageKey) (rlp.RawValue, bool, error) {
	var (
		data rlp.RawValue
		err  error
	)
	if s.cache != nil {
		data, err = s.cache.GetOrLoad(key, s.loadCommitted)
	} else {
		data, err = s.loadCommitted(key)
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// loadCommitted reads a slot from the store. Missing slots load as empty.
func (s *State) loadCommitted(key storageKey) (rlp.RawValue, error) {
	data, err := s.db.Get(key.encode())
	if err != nil {
		if !s.db.IsNotFound(err) {
			return nil, err
		}
		return nil, nil
	}
	return data, nil
}

// GetStorage returns storage value for the given address and key.
func (s *State) GetStorage(addr para.Address, key para.Bytes32) (para.Bytes32, error) {
	raw, err := s.GetRawStorage(addr, key)
	if err != nil {
		return para.Bytes32{}, err
	}
	if len(raw) == 0 {
		return para.Bytes32{}, nil
	}
	kind, content, _, err := rlp.Split(raw)
	if err != nil {
		return para.Bytes32{}, &Error{err}
	}
	if kind == rlp.List {
		// customized storage value, return hash of raw data
		return para.Blake2b(raw), nil
	}
	return para.BytesToBytes32(content), nil
}

// SetStorage set storage value for the given address and key.
func (s *State) SetStorage(addr para.Address, key, value para.Bytes32) {
	if value.IsZero() {
		s.SetRawStorage(addr, key, nil)
		return
	}
	v, _ := rlp.EncodeToBytes(bytes.TrimLeft(value[:], "\x00"))
	s.SetRawStorage(addr, key, v)
}

// GetRawStorage returns storage value in rlp raw for given address and key.
func (s *State) GetRawStorage(addr para.Address, key para.Bytes32) (rlp.RawValue, error) {
	data, _, err := s.sm.Get(storageKey{addr, key})
	if err != nil {
		return nil, &Error{err}
	}
	return data, nil
}

// SetRawStorage set storage value in rlp raw.
func (s *State) SetRawStorage(addr para.Address, key para.Bytes32, raw rlp.RawValue) {
	s.sm.Put(storageKey{addr, key}, raw)
}

// EncodeStorage set storage value encoded by given enc method.
func (s *State) EncodeStorage(addr para.Address, key para.Bytes32, enc func() ([]byte, error)) error {
	raw, err := enc()
	if err != nil {
		return &Error{err}
	}
	s.SetRawStorage(addr, key, raw)
	return nil
}

// DecodeStorage get and decode storage value.
func (s *State) DecodeStorage(addr para.Address, key para.Bytes32, dec func([]byte) error) error {
	raw, err := s.GetRawStorage(addr, key)
	if err != nil {
		return err
	}
	if err := dec(raw); err != nil {
		return &Error{err}
	}
	return nil
}

// NewCheckpoint makes a checkpoint of current state.
// It returns revision of the checkpoint.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo revert to checkpoint specified by revision.
func (s *State) RevertTo(revision int) {
	if revision < 1 {
		panic("state: invalid revision")
	}
	s.sm.PopTo(revision)
}

// Stage makes a stage object to commit changes.
func (s *State) Stage() *Stage {
	changes := make(map[storageKey]rlp.RawValue)
	s.sm.Journal(func(k storageKey, v rlp.RawValue) bool {
		changes[k] = v
		return true
	})
	return &Stage{
		db:      s.db,
		cache:   s.cache,
		changes: changes,
	}
}
