package kernel

import (
	apperrors "github.com/ahouts/redis-bigint/errors"
	"github.com/ahouts/redis-bigint/keyspace"
)

var (
	_ Handle = &HandleT{}
)

// HandleT checks the type tag of a key before handing out its BigInt.
type HandleT struct {
	key keyspace.Key
}

func OpenWritable(ks Opener, name string) Handle {
	return &HandleT{key: ks.Open(name, keyspace.WriteMode)}
}

func OpenReadOnly(ks Opener, name string) Handle {
	return &HandleT{key: ks.Open(name, keyspace.ReadMode)}
}

// WithWritable runs fn with a writable handle released when fn returns.
func WithWritable(ks Opener, name string, fn func(Handle) error) error {
	h := OpenWritable(ks, name)
	defer h.Close()
	return fn(h)
}

// WithReadOnly runs fn with a read-only handle released when fn returns.
func WithReadOnly(ks Opener, name string, fn func(Handle) error) error {
	h := OpenReadOnly(ks, name)
	defer h.Close()
	return fn(h)
}

func (h *HandleT) Name() string {
	return h.key.Name()
}

// Get returns nil, nil for an absent key and ErrWrongType when the key holds
// another data type. The result aliases the stored value.
func (h *HandleT) Get() (BigInt, error) {
	if !h.key.Exists() {
		return nil, nil
	}
	if h.key.Type() != BigIntType {
		return nil, apperrors.ErrWrongType
	}
	return h.key.Value().(*BigIntT), nil
}

// Create binds x as the value of the key, replacing any previous value.
func (h *HandleT) Create(x BigInt) error {
	return h.key.SetValue(BigIntType, x)
}

// Modified marks the value returned by Get as changed in place.
func (h *HandleT) Modified() error {
	return h.key.SignalModified()
}

func (h *HandleT) Close() {
	h.key.Close()
}
