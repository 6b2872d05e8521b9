// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradox-labs/para/lvldb"
	"github.com/paradox-labs/para/para"
)

func newMemState(t *testing.T) (*Stater, *lvldb.LevelDB) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStater(db), db
}

func TestStorage(t *testing.T) {
	stater, _ := newMemState(t)
	st := stater.NewState()

	addr := para.BytesToAddress([]byte("acc1"))
	key := para.BytesToBytes32([]byte("key"))

	v, err := st.GetStorage(addr, key)
	assert.NoError(t, err)
	assert.True(t, v.IsZero())

	value := para.BytesToBytes32([]byte("value"))
	st.SetStorage(addr, key, value)
	v, err = st.GetStorage(addr, key)
	assert.NoError(t, err)
	assert.Equal(t, value, v)

	st.SetStorage(addr, key, para.Bytes32{})
	raw, err := st.GetRawStorage(addr, key)
	assert.NoError(t, err)
	assert.Empty(t, raw)

	// a list value reads back as its hash
	list, _ := rlp.EncodeToBytes([]uint64{1, 2})
	st.SetRawStorage(addr, key, list)
	v, err = st.GetStorage(addr, key)
	assert.NoError(t, err)
	assert.Equal(t, para.Blake2b(list), v)
}

func TestEncodeDecodeStorage(t *testing.T) {
	stater, _ := newMemState(t)
	st := stater.NewState()

	addr := para.BytesToAddress([]byte("acc1"))
	key := para.BytesToBytes32([]byte("key"))

	assert.NoError(t, st.EncodeStorage(addr, key, func() ([]byte, error) {
		return rlp.EncodeToBytes("foo")
	}))
	var s string
	assert.NoError(t, st.DecodeStorage(addr, key, func(raw []byte) error {
		return rlp.DecodeBytes(raw, &s)
	}))
	assert.Equal(t, "foo", s)

	err := st.EncodeStorage(addr, key, func() ([]byte, error) { return nil, errors.New("enc") })
	var stateErr *Error
	assert.ErrorAs(t, err, &stateErr)
	assert.EqualError(t, err, "state: enc")

	err = st.DecodeStorage(addr, key, func([]byte) error { return errors.New("dec") })
	assert.ErrorAs(t, err, &stateErr)
}

func TestCheckpoint(t *testing.T) {
	stater, _ := newMemState(t)
	st := stater.NewState()

	addr := para.BytesToAddress([]byte("acc1"))
	key := para.BytesToBytes32([]byte("key"))
	v1 := para.BytesToBytes32([]byte("v1"))
	v2 := para.BytesToBytes32([]byte("v2"))

	st.SetStorage(addr, key, v1)
	rev := st.NewCheckpoint()
	st.SetStorage(addr, key, v2)
	inner := st.NewCheckpoint()
	st.SetStorage(addr, key, para.Bytes32{})

	st.RevertTo(inner)
	v, _ := st.GetStorage(addr, key)
	assert.Equal(t, v2, v)

	st.RevertTo(rev)
	v, _ = st.GetStorage(addr, key)
	assert.Equal(t, v1, v)

	assert.Panics(t, func() { st.RevertTo(0) })
}

func TestStageCommit(t *testing.T) {
	stater, db := newMemState(t)
	st := stater.NewState()

	addr := para.BytesToAddress([]byte("acc1"))
	storage := map[para.Bytes32]para.Bytes32{
		para.BytesToBytes32([]byte("s1")): para.BytesToBytes32([]byte("v1")),
		para.BytesToBytes32([]byte("s2")): para.BytesToBytes32([]byte("v2")),
		para.BytesToBytes32([]byte("s3")): para.BytesToBytes32([]byte("v3")),
	}
	for k, v := range storage {
		st.SetStorage(addr, k, v)
	}

	// uncommitted changes are invisible to other states
	other := stater.NewState()
	for k := range storage {
		v, err := other.GetStorage(addr, k)
		assert.NoError(t, err)
		assert.True(t, v.IsZero())
	}

	stage := st.Stage()
	assert.Equal(t, len(storage), stage.Len())
	require.NoError(t, stage.Commit())

	for k, v := range storage {
		got, err := stater.NewState().GetStorage(addr, k)
		assert.NoError(t, err)
		assert.Equal(t, v, got)
	}

	// a state without the shared cache reads the same from disk
	fresh := New(db)
	for k, v := range storage {
		got, err := fresh.GetStorage(addr, k)
		assert.NoError(t, err)
		assert.Equal(t, v, got)
	}

	// zeroing deletes the slot
	s1 := para.BytesToBytes32([]byte("s1"))
	st = stater.NewState()
	st.SetStorage(addr, s1, para.Bytes32{})
	require.NoError(t, st.Stage().Commit())

	has, err := StorageBucket.NewGetter(db).Has(storageKey{addr, s1}.encode())
	assert.NoError(t, err)
	assert.False(t, has)
	got, _ := New(db).GetStorage(addr, s1)
	assert.True(t, got.IsZero())
}

func TestRevertedChangesAreNotStaged(t *testing.T) {
	stater, _ := newMemState(t)
	st := stater.NewState()

	addr := para.BytesToAddress([]byte("acc1"))
	key := para.BytesToBytes32([]byte("key"))

	rev := st.NewCheckpoint()
	st.SetStorage(addr, key, para.BytesToBytes32([]byte("v")))
	st.RevertTo(rev)

	stage := st.Stage()
	assert.Zero(t, stage.Len())
	require.NoError(t, stage.Commit())

	v, _ := stater.NewState().GetStorage(addr, key)
	assert.True(t, v.IsZero())
}

func TestCommittedReadCache(t *testing.T) {
	stater, _ := newMemState(t)
	addr := para.BytesToAddress([]byte("acc1"))
	key := para.BytesToBytes32([]byte("key"))
	value := para.BytesToBytes32([]byte("v"))

	st := stater.NewState()
	st.SetStorage(addr, key, value)
	require.NoError(t, st.Stage().Commit())
	assert.Equal(t, 1, stater.cache.Len())

	stats := func() (int64, int64) {
		_, hit, miss := stater.CacheStats().Stats()
		return hit, miss
	}
	hit, miss := stats()

	// committed slots are served from the cache
	got, err := stater.NewState().GetStorage(addr, key)
	require.NoError(t, err)
	assert.Equal(t, value, got)
	h, m := stats()
	assert.Equal(t, hit+1, h)
	assert.Equal(t, miss, m)

	// a missing slot is loaded once, then cached as empty
	missing := para.BytesToBytes32([]byte("missing"))
	for range 2 {
		got, err = stater.NewState().GetStorage(addr, missing)
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	}
	h, m = stats()
	assert.Equal(t, hit+2, h)
	assert.Equal(t, miss+1, m)
	assert.Equal(t, 2, stater.cache.Len())

	// deleted slots are evicted
	st = stater.NewState()
	st.SetStorage(addr, key, para.Bytes32{})
	require.NoError(t, st.Stage().Commit())
	assert.Equal(t, 1, stater.cache.Len())

	got, err = stater.NewState().GetStorage(addr, key)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}
