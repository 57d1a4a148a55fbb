package kernel

import (
	"errors"
	"testing"

	apperrors "github.com/ahouts/redis-bigint/errors"
	"github.com/ahouts/redis-bigint/keyspace"
)

func TestBigIntTypeEncoding(t *testing.T) {
	x := NewInt("-987654321987654321987654321")

	data, err := BigIntType.Encode(x)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if data[0] != TypeVersion {
		t.Fatalf("expected version byte %d, got %d", TypeVersion, data[0])
	}

	value, err := BigIntType.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if value.(*BigIntT).Cmp(x) != 0 {
		t.Fatalf("expected %s, got %s", x, value.(*BigIntT))
	}
}

func TestBigIntTypeDecodeErrors(t *testing.T) {
	for _, data := range [][]byte{nil, {TypeVersion + 1, 0, 1}, {TypeVersion}, {TypeVersion, 9}} {
		if _, err := BigIntType.Decode(data); !errors.Is(err, apperrors.ErrCorruptedRecord) {
			t.Fatalf("decode %v: expected corrupted record, got %v", data, err)
		}
	}

	if _, err := BigIntType.Encode([]byte("nope")); !errors.Is(err, apperrors.ErrWrongType) {
		t.Fatalf("expected wrong type on foreign value, got %v", err)
	}
}

func TestBigIntTypeDupAndFree(t *testing.T) {
	x := NewInt64(41)
	dup := BigIntType.Dup(x).(*BigIntT)
	x.Inc()

	if dup.String() != "41" {
		t.Fatalf("dup followed original: %s", dup)
	}

	BigIntType.Free(x)
	if x.Sign() != 0 {
		t.Fatalf("expected freed value to be zeroed, got %s", x)
	}
}

func TestRegister(t *testing.T) {
	space := keyspace.NewKeySpace(nil)

	if err := Register(space); err != nil {
		t.Fatalf("register: %v", err)
	}
	dtype, ok := space.LookupType(TypeName)
	if !ok || dtype != BigIntType {
		t.Fatalf("expected %s to be registered", TypeName)
	}

	if err := Register(space); !errors.Is(err, apperrors.ErrTypeRegistry) {
		t.Fatalf("expected duplicate registration error, got %v", err)
	}
}
