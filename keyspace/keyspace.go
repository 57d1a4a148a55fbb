package keyspace

import (
	"fmt"

	apperrors "github.com/ahouts/redis-bigint/errors"
)

var (
	_ KeySpace = &KeySpaceT{}
)

type entry struct {
	dtype DataType
	value any
}

// KeySpaceT maps key names to typed values. It is not safe for concurrent
// use: the command engine runs one command at a time against it.
type KeySpaceT struct {
	sealed  bool
	types   map[string]DataType
	entries map[string]*entry
	dirty   map[string]struct{}
	store   Store
}

// NewKeySpace creates a key space with the native types registered. A nil
// store keeps everything in memory.
func NewKeySpace(store Store) *KeySpaceT {
	ks := &KeySpaceT{
		types:   make(map[string]DataType),
		entries: make(map[string]*entry),
		dirty:   make(map[string]struct{}),
		store:   store,
	}
	ks.types[StringType.Name()] = StringType
	return ks
}

// RegisterType adds a custom data type. Names are exactly TypeNameSize
// characters of [A-Za-z0-9_-] and must not collide with registered ones.
func (ks *KeySpaceT) RegisterType(dtype DataType) error {
	if ks.sealed {
		return apperrors.NewError(apperrors.CodeTypeRegistry, "type registration is closed")
	}

	name := dtype.Name()
	if !validTypeName(name) {
		return apperrors.NewError(apperrors.CodeTypeRegistry,
			fmt.Sprintf("invalid type name %q, must be %d characters of [A-Za-z0-9_-]", name, TypeNameSize))
	}
	if _, ok := ks.types[name]; ok {
		return apperrors.NewError(apperrors.CodeTypeRegistry,
			fmt.Sprintf("type name %q already registered", name))
	}

	ks.types[name] = dtype
	return nil
}

func (ks *KeySpaceT) LookupType(name string) (DataType, bool) {
	dtype, ok := ks.types[name]
	return dtype, ok
}

// Seal ends the registration phase.
func (ks *KeySpaceT) Seal() {
	ks.sealed = true
}

func (ks *KeySpaceT) Open(name string, mode Mode) Key {
	return &KeyT{
		space: ks,
		name:  name,
		mode:  mode,
	}
}

func (ks *KeySpaceT) Len() int {
	return len(ks.entries)
}

// Load reads every persisted record into memory. Types must be registered
// before calling it.
func (ks *KeySpaceT) Load() error {
	if ks.store == nil {
		return nil
	}

	return ks.store.Load(func(name string, record []byte) error {
		dtype, value, err := ks.decodeRecord(record)
		if err != nil {
			return fmt.Errorf("load key %q: %w", name, err)
		}
		ks.entries[name] = &entry{dtype: dtype, value: value}
		return nil
	})
}

// Commit writes the keys modified since the last commit.
func (ks *KeySpaceT) Commit() error {
	if len(ks.dirty) == 0 {
		return nil
	}
	if ks.store == nil {
		ks.dirty = make(map[string]struct{})
		return nil
	}

	var (
		puts = make(map[string][]byte)
		dels []string
	)

	for name := range ks.dirty {
		ent, ok := ks.entries[name]
		if !ok {
			dels = append(dels, name)
			continue
		}
		record, err := encodeRecord(ent)
		if err != nil {
			return fmt.Errorf("commit key %q: %w", name, err)
		}
		puts[name] = record
	}

	if err := ks.store.Apply(puts, dels); err != nil {
		return apperrors.WrapError(apperrors.CodeStorage, "commit", err)
	}

	ks.dirty = make(map[string]struct{})
	return nil
}

// Save rewrites the whole store from memory.
func (ks *KeySpaceT) Save() error {
	if ks.store == nil {
		return nil
	}

	all := make(map[string][]byte, len(ks.entries))
	for name, ent := range ks.entries {
		record, err := encodeRecord(ent)
		if err != nil {
			return fmt.Errorf("save key %q: %w", name, err)
		}
		all[name] = record
	}

	if err := ks.store.Replace(all); err != nil {
		return apperrors.WrapError(apperrors.CodeStorage, "save", err)
	}

	ks.dirty = make(map[string]struct{})
	return nil
}

func (ks *KeySpaceT) Close() error {
	for name, ent := range ks.entries {
		ent.dtype.Free(ent.value)
		delete(ks.entries, name)
	}
	if ks.store != nil {
		return ks.store.Close()
	}
	return nil
}

// record = len(type name) | type name | payload
func encodeRecord(ent *entry) ([]byte, error) {
	payload, err := ent.dtype.Encode(ent.value)
	if err != nil {
		return nil, err
	}
	name := ent.dtype.Name()

	record := make([]byte, 0, 1+len(name)+len(payload))
	record = append(record, byte(len(name)))
	record = append(record, name...)
	return append(record, payload...), nil
}

func (ks *KeySpaceT) decodeRecord(record []byte) (DataType, any, error) {
	if len(record) < 1 || len(record) < 1+int(record[0]) {
		return nil, nil, apperrors.ErrCorruptedRecord
	}

	name := string(record[1 : 1+int(record[0])])
	dtype, ok := ks.types[name]
	if !ok {
		return nil, nil, apperrors.NewError(apperrors.CodeCorruptedRecord,
			fmt.Sprintf("unknown data type %q", name))
	}

	value, err := dtype.Decode(record[1+int(record[0]):])
	if err != nil {
		return nil, nil, apperrors.WrapError(apperrors.CodeCorruptedRecord, "decode "+name, err)
	}
	return dtype, value, nil
}

func validTypeName(name string) bool {
	if len(name) != TypeNameSize {
		return false
	}
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}
