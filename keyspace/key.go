package keyspace

import (
	"reflect"

	apperrors "github.com/ahouts/redis-bigint/errors"
)

var (
	_ Key = &KeyT{}
)

// KeyT is a scoped handle on one key. Values returned by Value point into
// the key space, so a writable handle mutates in place and reports it with
// SignalModified. Nothing obtained through a handle may be kept after Close.
type KeyT struct {
	space  *KeySpaceT
	name   string
	mode   Mode
	closed bool
}

func (key *KeyT) Name() string {
	return key.name
}

func (key *KeyT) Mode() Mode {
	return key.mode
}

func (key *KeyT) Exists() bool {
	return key.entry() != nil
}

// Type returns nil for an empty key.
func (key *KeyT) Type() DataType {
	ent := key.entry()
	if ent == nil {
		return nil
	}
	return ent.dtype
}

func (key *KeyT) Value() any {
	ent := key.entry()
	if ent == nil {
		return nil
	}
	return ent.value
}

// SetValue binds value to the key, releasing the previous payload.
func (key *KeyT) SetValue(dtype DataType, value any) error {
	if err := key.writable(); err != nil {
		return err
	}
	if registered, ok := key.space.types[dtype.Name()]; !ok || registered != dtype {
		return apperrors.NewError(apperrors.CodeTypeRegistry, "data type "+dtype.Name()+" is not registered")
	}

	if old := key.entry(); old != nil && !sameRef(old.value, value) {
		old.dtype.Free(old.value)
	}

	key.space.entries[key.name] = &entry{dtype: dtype, value: value}
	key.space.dirty[key.name] = struct{}{}
	return nil
}

func (key *KeyT) Delete() error {
	if err := key.writable(); err != nil {
		return err
	}

	ent := key.entry()
	if ent == nil {
		return nil
	}

	ent.dtype.Free(ent.value)
	delete(key.space.entries, key.name)
	key.space.dirty[key.name] = struct{}{}
	return nil
}

// SignalModified records an in-place change of the value so the next
// commit persists it.
func (key *KeyT) SignalModified() error {
	if err := key.writable(); err != nil {
		return err
	}
	if key.entry() != nil {
		key.space.dirty[key.name] = struct{}{}
	}
	return nil
}

func (key *KeyT) Close() {
	key.closed = true
}

func (key *KeyT) entry() *entry {
	if key.closed {
		return nil
	}
	return key.space.entries[key.name]
}

// sameRef reports whether a and b are the same pointer payload. Non-pointer
// payloads are never shared, so they always compare false.
func sameRef(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != reflect.Pointer || vb.Kind() != reflect.Pointer {
		return false
	}
	return va.Type() == vb.Type() && va.Pointer() == vb.Pointer()
}

func (key *KeyT) writable() error {
	if key.closed {
		return apperrors.ErrHandleClosed
	}
	if key.mode != WriteMode {
		return apperrors.ErrReadOnlyHandle
	}
	return nil
}

// Copy duplicates the value of src into dst with the type's Dup hook.
// It reports false when src is empty.
func Copy(dst Key, src Key) (bool, error) {
	if !src.Exists() {
		return false, nil
	}

	dtype := src.Type()
	if err := dst.SetValue(dtype, dtype.Dup(src.Value())); err != nil {
		return false, err
	}
	return true, nil
}
