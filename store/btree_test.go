package store

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBTreeCacheGetSet does basic sanity checks on our cache
//
// Other tests handle deletes, setting same value,
// and iterating over ranges
func TestBTreeCacheGetSet(t *testing.T) {
	// devnull is a black hole... just to keep our types proper
	devnull := BTreeCacheable{EmptyKVStore{}}

	// base is the root of our data, we can layer on top and
	// all queries should work
	base := devnull.CacheWrap()

	// make sure the btree is empty at start but returns results
	// that are writen to it
	k, v := []byte("french"), []byte("fry")
	requireMissing(t, base, k)
	require.NoError(t, base.Set(k, v))
	requireValue(t, base, k, v)

	// now layer another btree on top and make sure that we get
	// base data
	cache := base.CacheWrap()
	requireValue(t, cache, k, v)

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	requireMissing(t, cache, k2)
	require.NoError(t, cache.Set(k2, v2))
	requireValue(t, cache, k2, v2)
	requireMissing(t, base, k2)

	// we can write the cache to the base layer...
	require.NoError(t, cache.Write())
	requireValue(t, base, k, v)
	requireValue(t, base, k2, v2)

	// we can discard one
	k3, v3 := []byte("Bayern"), []byte("Munich")
	c2 := base.CacheWrap()
	requireValue(t, c2, k, v)
	requireValue(t, c2, k2, v2)
	require.NoError(t, c2.Set(k3, v3))
	c2.Discard()

	// and commit another
	c3 := base.CacheWrap()
	requireValue(t, c3, k, v)
	requireValue(t, c3, k2, v2)
	require.NoError(t, c3.Delete(k))
	require.NoError(t, c3.Write())

	// make sure it commits proper
	requireMissing(t, base, k)
	requireValue(t, base, k2, v2)
	requireMissing(t, base, k3)
}

// TestBTreeCacheConflicts checks that we can handle
// overwriting values and deleting underlying values
func TestBTreeCacheConflicts(t *testing.T) {
	devnull := BTreeCacheable{EmptyKVStore{}}

	ks := randKeys(4, 16)
	vs := randKeys(6, 40)

	parent := devnull.CacheWrap()
	require.NoError(t, parent.Set(ks[1], vs[1]))
	require.NoError(t, parent.Set(ks[2], vs[2]))

	child := parent.CacheWrap()
	// overwrite one, delete another, add a third
	require.NoError(t, child.Set(ks[1], vs[5]))
	require.NoError(t, child.Set(ks[3], vs[3]))
	require.NoError(t, child.Delete(ks[2]))

	// the parent is unaffected
	requireValue(t, parent, ks[1], vs[1])
	requireValue(t, parent, ks[2], vs[2])
	requireMissing(t, parent, ks[3])

	// the child sees its own writes
	requireValue(t, child, ks[1], vs[5])
	requireMissing(t, child, ks[2])
	requireValue(t, child, ks[3], vs[3])

	// and after a write the parent catches up
	require.NoError(t, child.Write())
	requireValue(t, parent, ks[1], vs[5])
	requireMissing(t, parent, ks[2])
	requireValue(t, parent, ks[3], vs[3])
}

// TestBTreeCacheIterator checks that iteration merges the cache with the
// backing store, honors deletes and respects range limits.
func TestBTreeCacheIterator(t *testing.T) {
	devnull := BTreeCacheable{EmptyKVStore{}}
	base := devnull.CacheWrap()

	require.NoError(t, base.Set([]byte{1}, []byte("a")))
	require.NoError(t, base.Set([]byte{3}, []byte("c")))
	require.NoError(t, base.Set([]byte{5}, []byte("e")))

	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte{2}, []byte("b")))
	require.NoError(t, cache.Set([]byte{3}, []byte("C")))
	require.NoError(t, cache.Delete([]byte{5}))

	got := collect(t, cache, nil, nil, false)
	want := []Model{
		{Key: []byte{1}, Value: []byte("a")},
		{Key: []byte{2}, Value: []byte("b")},
		{Key: []byte{3}, Value: []byte("C")},
	}
	assert.Equal(t, want, got)

	// limited range, end is exclusive
	got = collect(t, cache, []byte{2}, []byte{3}, false)
	assert.Equal(t, []Model{{Key: []byte{2}, Value: []byte("b")}}, got)

	// descending order
	got = collect(t, cache, nil, nil, true)
	want = []Model{
		{Key: []byte{3}, Value: []byte("C")},
		{Key: []byte{2}, Value: []byte("b")},
		{Key: []byte{1}, Value: []byte("a")},
	}
	assert.Equal(t, want, got)
}

// TestBTreeCacheReverseMerge makes sure reverse iteration keeps keys in
// descending order when the cache and the backing store each hold some
// of them.
func TestBTreeCacheReverseMerge(t *testing.T) {
	devnull := BTreeCacheable{EmptyKVStore{}}
	base := devnull.CacheWrap()
	require.NoError(t, base.Set([]byte{1}, []byte("a")))

	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte{2}, []byte("b")))

	got := collect(t, cache, nil, nil, true)
	want := []Model{
		{Key: []byte{2}, Value: []byte("b")},
		{Key: []byte{1}, Value: []byte("a")},
	}
	assert.Equal(t, want, got)

	// ascending order is unaffected
	got = collect(t, cache, nil, nil, false)
	want = []Model{
		{Key: []byte{1}, Value: []byte("a")},
		{Key: []byte{2}, Value: []byte("b")},
	}
	assert.Equal(t, want, got)
}

func TestMemStore(t *testing.T) {
	db := MemStore()

	k, v := []byte("answer"), []byte("42")
	require.NoError(t, db.Set(k, v))
	requireValue(t, db, k, v)

	cache := db.CacheWrap()
	require.NoError(t, cache.Delete(k))
	cache.Discard()
	requireValue(t, db, k, v)
}

func TestShowOps(t *testing.T) {
	db, log := LogableStore()

	require.NoError(t, db.Set([]byte("a"), []byte("1")))
	require.NoError(t, db.Set([]byte("b"), []byte("2")))
	require.NoError(t, db.Delete([]byte("a")))

	ops := log.ShowOps()
	require.Len(t, ops, 3)
	assert.True(t, ops[0].IsSetOp())
	assert.True(t, ops[1].IsSetOp())
	assert.False(t, ops[2].IsSetOp())
	assert.Equal(t, []byte("a"), ops[2].Key())
}

func collect(t *testing.T, db ReadOnlyKVStore, start, end []byte, reverse bool) []Model {
	t.Helper()

	var (
		iter Iterator
		err  error
	)
	if reverse {
		iter, err = db.ReverseIterator(start, end)
	} else {
		iter, err = db.Iterator(start, end)
	}
	require.NoError(t, err)
	defer iter.Close()

	var models []Model
	for ; iter.Valid(); requireNext(t, iter) {
		models = append(models, Model{
			Key:   append([]byte(nil), iter.Key()...),
			Value: append([]byte(nil), iter.Value()...),
		})
	}
	return models
}

func requireNext(t *testing.T, iter Iterator) {
	t.Helper()
	require.NoError(t, iter.Next())
}

func requireValue(t *testing.T, db ReadOnlyKVStore, key, want []byte) {
	t.Helper()
	v, err := db.Get(key)
	require.NoError(t, err)
	assert.Equal(t, want, v)
	has, err := db.Has(key)
	require.NoError(t, err)
	assert.True(t, has)
}

func requireMissing(t *testing.T, db ReadOnlyKVStore, key []byte) {
	t.Helper()
	v, err := db.Get(key)
	require.NoError(t, err)
	assert.Nil(t, v)
	has, err := db.Has(key)
	require.NoError(t, err)
	assert.False(t, has)
}

func randKeys(n, size int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = make([]byte, size)
		rand.Read(keys[i])
	}
	return keys
}
