package orm

import (
	"bytes"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

// Indexer extracts a secondary index key from a model. A nil result (with
// no error) means the model is not indexed under this index.
type Indexer func(key []byte, value Model) ([]byte, error)

// Index maintains a secondary index over a bucket. For a unique index the
// stored value is the single primary key. For a non-unique index it is a
// MultiRef with all matching primary keys. An index row exists if and only
// if at least one model is indexed under its key.
type Index struct {
	name   string
	prefix []byte
	unique bool
	index  Indexer
}

func newIndex(bucket, name string, indexer Indexer, unique bool) Index {
	if indexer == nil {
		panic("indexer is required")
	}
	return Index{
		name:   name,
		prefix: []byte("_i." + bucket + "_" + name + ":"),
		unique: unique,
		index:  indexer,
	}
}

func (i Index) rowKey(indexKey []byte) []byte {
	return append(append([]byte(nil), i.prefix...), indexKey...)
}

// Keys returns all primary keys stored under given index key, in
// ascending order. No match is not an error, the result is empty.
func (i Index) Keys(db custody.ReadOnlyKVStore, indexKey []byte) ([][]byte, error) {
	raw, err := db.Get(i.rowKey(indexKey))
	if err != nil {
		return nil, errors.Wrap(err, "index lookup")
	}
	if raw == nil {
		return nil, nil
	}
	if i.unique {
		return [][]byte{raw}, nil
	}
	var refs MultiRef
	if err := refs.Unmarshal(raw); err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "cannot parse index %q refs: %v", i.name, err)
	}
	return refs.Refs, nil
}

// Has returns true if at least one primary key is stored under given
// index key.
func (i Index) Has(db custody.ReadOnlyKVStore, indexKey []byte) (bool, error) {
	ok, err := db.Has(i.rowKey(indexKey))
	if err != nil {
		return false, errors.Wrap(err, "index lookup")
	}
	return ok, nil
}

// update adjusts the index to a model change. Either prev or next may be
// nil, meaning insert or delete.
func (i Index) update(db custody.KVStore, pk []byte, prev, next Model) error {
	prevKey, err := i.modelKey(pk, prev)
	if err != nil {
		return err
	}
	nextKey, err := i.modelKey(pk, next)
	if err != nil {
		return err
	}
	if bytes.Equal(prevKey, nextKey) {
		return nil
	}
	if prevKey != nil {
		if err := i.removeRef(db, prevKey, pk); err != nil {
			return err
		}
	}
	if nextKey != nil {
		if err := i.insertRef(db, nextKey, pk); err != nil {
			return err
		}
	}
	return nil
}

func (i Index) modelKey(pk []byte, m Model) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	key, err := i.index(pk, m)
	if err != nil {
		return nil, errors.Wrapf(err, "index %q", i.name)
	}
	return key, nil
}

func (i Index) insertRef(db custody.KVStore, indexKey, pk []byte) error {
	row := i.rowKey(indexKey)
	raw, err := db.Get(row)
	if err != nil {
		return errors.Wrap(err, "index lookup")
	}

	if i.unique {
		if raw != nil {
			return errors.Wrapf(errors.ErrDuplicate, "index %q", i.name)
		}
		return db.Set(row, pk)
	}

	var refs MultiRef
	if raw != nil {
		if err := refs.Unmarshal(raw); err != nil {
			return errors.Wrapf(errors.ErrDatabase, "cannot parse index %q refs: %v", i.name, err)
		}
	}
	if err := refs.Add(pk); err != nil {
		return err
	}
	raw, err = refs.Marshal()
	if err != nil {
		return err
	}
	return db.Set(row, raw)
}

func (i Index) removeRef(db custody.KVStore, indexKey, pk []byte) error {
	row := i.rowKey(indexKey)
	raw, err := db.Get(row)
	if err != nil {
		return errors.Wrap(err, "index lookup")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "index %q", i.name)
	}

	if i.unique {
		return db.Delete(row)
	}

	var refs MultiRef
	if err := refs.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrDatabase, "cannot parse index %q refs: %v", i.name, err)
	}
	if err := refs.Remove(pk); err != nil {
		return err
	}
	// the row must disappear with the last reference
	if len(refs.Refs) == 0 {
		return db.Delete(row)
	}
	raw, err = refs.Marshal()
	if err != nil {
		return err
	}
	return db.Set(row, raw)
}
