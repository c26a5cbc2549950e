package orm

import (
	"reflect"
	"regexp"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

// ModelBucket is a storage engine implementation that operates on a
// single model type. All data is kept under a bucket-specific prefix, so
// that many buckets can share one KVStore.
type ModelBucket interface {
	// One queries the database for a single model instance. Lookup is
	// done by the primary key. The result is loaded into the given
	// destination model.
	// This method returns ErrNotFound if the entity does not exist in
	// the database.
	// If the given model type cannot contain the stored entity, ErrType
	// is returned.
	One(db custody.ReadOnlyKVStore, key []byte, dest Model) error

	// ByIndex returns all objects that secondary index with given name
	// and given key points to. Main index keys of all matching entities
	// are returned, and the models are loaded into the destination,
	// which must be a pointer to a slice of models.
	ByIndex(db custody.ReadOnlyKVStore, indexName string, indexKey []byte, dest ModelSlicePtr) ([][]byte, error)

	// IndexHas returns true if at least one entity is indexed under
	// given secondary index key. This avoids loading models when only
	// membership matters.
	IndexHas(db custody.ReadOnlyKVStore, indexName string, indexKey []byte) (bool, error)

	// Put saves given model in the database under given key. Before
	// being saved the model is validated. All registered secondary
	// indexes are updated.
	Put(db custody.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the
	// database. It returns ErrNotFound if an entity with given key does
	// not exist.
	Delete(db custody.KVStore, key []byte) error

	// Has returns nil if an entity with given primary key exists, or
	// ErrNotFound.
	Has(db custody.ReadOnlyKVStore, key []byte) error

	// Iterate walks all entities of the bucket in primary key order.
	// Every entity is loaded into dest before fn is called with its
	// primary key. Returning an error from fn stops the iteration and
	// is propagated to the caller.
	Iterate(db custody.ReadOnlyKVStore, dest Model, fn func(key []byte) error) error
}

// ModelSlicePtr represents a pointer to a slice of models. Think of it as
// &[]Model. Because of Go type system, using []Model would not work for
// us. Instead we use a placeholder type and the validation is done during
// the runtime.
type ModelSlicePtr interface{}

// ModelBucketOption is implemented by any function that can configure
// ModelBucket during creation.
type ModelBucketOption func(mb *modelBucket)

// WithIndex configures a ModelBucket to maintain a secondary index with
// given name, using given indexer implementation.
func WithIndex(name string, indexer Indexer, unique bool) ModelBucketOption {
	return func(mb *modelBucket) {
		if _, ok := mb.indexes[name]; ok {
			panic("index " + name + " registered twice")
		}
		mb.indexes[name] = newIndex(mb.name, name, indexer, unique)
	}
}

var isBucketName = regexp.MustCompile(`^[a-z]{3,10}$`).MatchString

// NewModelBucket returns a ModelBucket instance operating on entities of
// the same type as given model prototype.
func NewModelBucket(name string, model Model, opts ...ModelBucketOption) ModelBucket {
	if !isBucketName(name) {
		panic("invalid bucket name: " + name)
	}
	b := &modelBucket{
		name:    name,
		prefix:  []byte(name + ":"),
		model:   reflect.TypeOf(model).Elem(),
		indexes: make(map[string]Index),
	}
	for _, fn := range opts {
		fn(b)
	}
	return b
}

type modelBucket struct {
	name   string
	prefix []byte
	// model is the type of the model this bucket maintains, without the
	// pointer.
	model   reflect.Type
	indexes map[string]Index
}

var _ ModelBucket = (*modelBucket)(nil)

func (b *modelBucket) dbKey(key []byte) []byte {
	return append(append([]byte(nil), b.prefix...), key...)
}

func (b *modelBucket) One(db custody.ReadOnlyKVStore, key []byte, dest Model) error {
	if err := b.assertType(dest); err != nil {
		return err
	}
	raw, err := db.Get(b.dbKey(key))
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "unmarshaling into %T", dest)
	}
	return nil
}

func (b *modelBucket) ByIndex(db custody.ReadOnlyKVStore, indexName string, indexKey []byte, destination ModelSlicePtr) ([][]byte, error) {
	idx, ok := b.indexes[indexName]
	if !ok {
		return nil, errors.Wrapf(errors.ErrDatabase, "no index with name %q", indexName)
	}
	keys, err := idx.Keys(db, indexKey)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr {
		return nil, errors.Wrap(errors.ErrType, "destination must be a pointer to slice of models")
	}
	slice := dest.Elem()
	if slice.Kind() != reflect.Slice {
		return nil, errors.Wrap(errors.ErrType, "destination must be a pointer to slice of models")
	}
	// Both []Model and []*Model are supported.
	sliceOfPointers := slice.Type().Elem().Kind() == reflect.Ptr

	for _, key := range keys {
		raw, err := db.Get(b.dbKey(key))
		if err != nil {
			return nil, err
		}
		if raw == nil {
			return nil, errors.Wrapf(errors.ErrDatabase, "index %q contains a dangling reference %X", indexName, key)
		}
		model := reflect.New(b.model)
		if err := model.Interface().(Model).Unmarshal(raw); err != nil {
			return nil, errors.Wrapf(err, "unmarshaling into %s", b.model)
		}
		if !sliceOfPointers {
			model = model.Elem()
		}
		slice.Set(reflect.Append(slice, model))
	}
	return keys, nil
}

func (b *modelBucket) IndexHas(db custody.ReadOnlyKVStore, indexName string, indexKey []byte) (bool, error) {
	idx, ok := b.indexes[indexName]
	if !ok {
		return false, errors.Wrapf(errors.ErrDatabase, "no index with name %q", indexName)
	}
	return idx.Has(db, indexKey)
}

func (b *modelBucket) Put(db custody.KVStore, key []byte, m Model) error {
	if err := b.assertType(m); err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}

	prev, err := b.previous(db, key)
	if err != nil {
		return err
	}

	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshaling %T", m)
	}
	if err := db.Set(b.dbKey(key), raw); err != nil {
		return err
	}

	for _, idx := range b.indexes {
		if err := idx.update(db, key, prev, m); err != nil {
			return err
		}
	}
	return nil
}

func (b *modelBucket) Delete(db custody.KVStore, key []byte) error {
	prev, err := b.previous(db, key)
	if err != nil {
		return err
	}
	if prev == nil {
		return errors.Wrap(errors.ErrNotFound, "cannot delete")
	}
	if err := db.Delete(b.dbKey(key)); err != nil {
		return err
	}
	for _, idx := range b.indexes {
		if err := idx.update(db, key, prev, nil); err != nil {
			return err
		}
	}
	return nil
}

func (b *modelBucket) Has(db custody.ReadOnlyKVStore, key []byte) error {
	ok, err := db.Has(b.dbKey(key))
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrNotFound
	}
	return nil
}

func (b *modelBucket) Iterate(db custody.ReadOnlyKVStore, dest Model, fn func(key []byte) error) error {
	if err := b.assertType(dest); err != nil {
		return err
	}
	start, end := prefixRange(b.prefix)
	iter, err := db.Iterator(start, end)
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.Valid() {
		if err := dest.Unmarshal(iter.Value()); err != nil {
			return errors.Wrapf(err, "unmarshaling into %T", dest)
		}
		key := iter.Key()[len(b.prefix):]
		if err := fn(key); err != nil {
			return err
		}
		if err := iter.Next(); err != nil {
			return err
		}
	}
	return nil
}

// previous loads the stored model under given key, or returns nil if the
// key is not in use. The returned model is needed for index maintenance.
func (b *modelBucket) previous(db custody.ReadOnlyKVStore, key []byte) (Model, error) {
	raw, err := db.Get(b.dbKey(key))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	m := reflect.New(b.model).Interface().(Model)
	if err := m.Unmarshal(raw); err != nil {
		return nil, errors.Wrapf(err, "unmarshaling into %s", b.model)
	}
	return m, nil
}

func (b *modelBucket) assertType(m Model) error {
	if reflect.TypeOf(m) != reflect.PtrTo(b.model) {
		return errors.Wrapf(errors.ErrType, "%T cannot be used with %q bucket", m, b.name)
	}
	return nil
}

// prefixRange turns a prefix into (start, end) to create
// and iterator
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed the last byte? then we need to carry...
	for l > 0 && end[l] == 0 {
		l--
		end[l]++
	}
	// okay, funny guy, you gave us FFF, no end to this range...
	if l == 0 && end[0] == 0 {
		end = nil
	}
	return prefix, end
}
