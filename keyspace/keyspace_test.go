package keyspace

import (
	"errors"
	"strconv"
	"testing"

	apperrors "github.com/ahouts/redis-bigint/errors"
)

// counterType stores *int64 and counts released payloads.
type counterType struct {
	freed *int
}

func (counterType) Name() string {
	return "counter__"
}

func (counterType) Encode(value any) ([]byte, error) {
	return []byte(strconv.FormatInt(*value.(*int64), 10)), nil
}

func (counterType) Decode(data []byte) (any, error) {
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (counterType) Dup(value any) any {
	n := *value.(*int64)
	return &n
}

func (c counterType) Free(any) {
	*c.freed++
}

func newCounterSpace(t *testing.T, store Store) (*KeySpaceT, counterType) {
	t.Helper()

	ctype := counterType{freed: new(int)}
	space := NewKeySpace(store)
	if err := space.RegisterType(ctype); err != nil {
		t.Fatalf("register: %v", err)
	}
	space.Seal()
	return space, ctype
}

func setCounter(t *testing.T, space *KeySpaceT, ctype counterType, name string, n int64) {
	t.Helper()

	key := space.Open(name, WriteMode)
	defer key.Close()
	if err := key.SetValue(ctype, &n); err != nil {
		t.Fatalf("set %s: %v", name, err)
	}
}

func TestRegisterTypeValidation(t *testing.T) {
	space := NewKeySpace(nil)

	for _, name := range []string{"short", "toolongname", "bad name!", "ünicode_"} {
		if err := space.RegisterType(namedType(name)); !errors.Is(err, apperrors.ErrTypeRegistry) {
			t.Fatalf("name %q: expected registry error, got %v", name, err)
		}
	}

	if err := space.RegisterType(namedType("good-name")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := space.RegisterType(namedType("good-name")); !errors.Is(err, apperrors.ErrTypeRegistry) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	space.Seal()
	if err := space.RegisterType(namedType("late_type")); !errors.Is(err, apperrors.ErrTypeRegistry) {
		t.Fatalf("expected sealed error, got %v", err)
	}
}

type namedType string

func (n namedType) Name() string             { return string(n) }
func (namedType) Encode(any) ([]byte, error) { return nil, nil }
func (namedType) Decode([]byte) (any, error) { return nil, nil }
func (namedType) Dup(value any) any          { return value }
func (namedType) Free(any)                   {}

func TestKeyTypeTagging(t *testing.T) {
	space, ctype := newCounterSpace(t, nil)
	setCounter(t, space, ctype, "c", 3)

	key := space.Open("c", ReadMode)
	defer key.Close()

	if !key.Exists() {
		t.Fatal("expected key to exist")
	}
	if key.Type() != DataType(ctype) {
		t.Fatalf("expected counter type, got %v", key.Type())
	}
	if *key.Value().(*int64) != 3 {
		t.Fatalf("expected 3, got %d", *key.Value().(*int64))
	}

	empty := space.Open("nothing", ReadMode)
	defer empty.Close()
	if empty.Exists() || empty.Type() != nil || empty.Value() != nil {
		t.Fatal("expected empty key")
	}
}

func TestSetValueRejectsUnregisteredType(t *testing.T) {
	space := NewKeySpace(nil)
	space.Seal()

	key := space.Open("x", WriteMode)
	defer key.Close()

	if err := key.SetValue(namedType("unknown__"), 1); !errors.Is(err, apperrors.ErrTypeRegistry) {
		t.Fatalf("expected registry error, got %v", err)
	}
}

func TestOverwriteAndDeleteFreePayload(t *testing.T) {
	space, ctype := newCounterSpace(t, nil)
	setCounter(t, space, ctype, "c", 1)
	setCounter(t, space, ctype, "c", 2)

	if *ctype.freed != 1 {
		t.Fatalf("expected overwrite to free once, got %d", *ctype.freed)
	}

	key := space.Open("c", WriteMode)
	if err := key.Delete(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	key.Close()

	if *ctype.freed != 2 {
		t.Fatalf("expected delete to free, got %d", *ctype.freed)
	}
	if space.Len() != 0 {
		t.Fatalf("expected no keys, got %d", space.Len())
	}
}

func TestReadOnlyAndClosedHandles(t *testing.T) {
	space, ctype := newCounterSpace(t, nil)
	n := int64(1)

	key := space.Open("c", ReadMode)
	if err := key.SetValue(ctype, &n); !errors.Is(err, apperrors.ErrReadOnlyHandle) {
		t.Fatalf("expected read-only error, got %v", err)
	}
	if err := key.Delete(); !errors.Is(err, apperrors.ErrReadOnlyHandle) {
		t.Fatalf("expected read-only error, got %v", err)
	}
	key.Close()

	key = space.Open("c", WriteMode)
	key.Close()
	key.Close()
	if err := key.SetValue(ctype, &n); !errors.Is(err, apperrors.ErrHandleClosed) {
		t.Fatalf("expected closed error, got %v", err)
	}
}

func TestCopy(t *testing.T) {
	space, ctype := newCounterSpace(t, nil)
	setCounter(t, space, ctype, "src", 7)

	src := space.Open("src", ReadMode)
	dst := space.Open("dst", WriteMode)
	ok, err := Copy(dst, src)
	src.Close()
	dst.Close()
	if err != nil || !ok {
		t.Fatalf("copy: ok=%v err=%v", ok, err)
	}

	key := space.Open("dst", WriteMode)
	*key.Value().(*int64) = 100
	key.Close()

	key = space.Open("src", ReadMode)
	defer key.Close()
	if *key.Value().(*int64) != 7 {
		t.Fatalf("copy shares storage with source")
	}

	missing := space.Open("none", ReadMode)
	target := space.Open("other", WriteMode)
	defer missing.Close()
	defer target.Close()
	if ok, err := Copy(target, missing); ok || err != nil {
		t.Fatalf("copy of missing key: ok=%v err=%v", ok, err)
	}
}

func TestSetValueOverwritesSliceValues(t *testing.T) {
	space := NewKeySpace(nil)
	space.Seal()

	for _, value := range []string{"a", "b", "b"} {
		key := space.Open("s", WriteMode)
		if err := key.SetValue(StringType, []byte(value)); err != nil {
			t.Fatalf("set %q: %v", value, err)
		}
		key.Close()
	}

	key := space.Open("s", ReadMode)
	defer key.Close()
	if string(key.Value().([]byte)) != "b" {
		t.Fatalf("expected b, got %q", key.Value())
	}
}

func TestSetValueSamePayloadIsNotFreed(t *testing.T) {
	space, ctype := newCounterSpace(t, nil)
	n := int64(4)

	key := space.Open("c", WriteMode)
	defer key.Close()
	if err := key.SetValue(ctype, &n); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := key.SetValue(ctype, &n); err != nil {
		t.Fatalf("set again: %v", err)
	}

	if *ctype.freed != 0 {
		t.Fatalf("rebinding the stored payload freed it %d times", *ctype.freed)
	}

	other := int64(4)
	if err := key.SetValue(ctype, &other); err != nil {
		t.Fatalf("set other: %v", err)
	}
	if *ctype.freed != 1 {
		t.Fatalf("expected distinct payload to free the old one, got %d", *ctype.freed)
	}
}
