package store

import "github.com/iov-one/custody"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = custody.ReadOnlyKVStore
type KVStore = custody.KVStore
type SetDeleter = custody.SetDeleter
type Batch = custody.Batch
type Iterator = custody.Iterator
type CacheableKVStore = custody.CacheableKVStore
type KVCacheWrap = custody.KVCacheWrap

// Model is a key-value pair, used to feed iterators from memory.
type Model struct {
	Key   []byte
	Value []byte
}
