package kernel

import (
	"fmt"

	apperrors "github.com/ahouts/redis-bigint/errors"
	"github.com/ahouts/redis-bigint/keyspace"
)

var (
	_ keyspace.DataType = bigIntType{}
)

// BigIntType is the key space data type holding a *BigIntT.
var BigIntType keyspace.DataType = bigIntType{}

type bigIntType struct{}

// Registrar is the registration phase of a key space.
type Registrar interface {
	RegisterType(keyspace.DataType) error
}

func Register(reg Registrar) error {
	if err := reg.RegisterType(BigIntType); err != nil {
		return fmt.Errorf("register %s: %w", TypeName, err)
	}
	return nil
}

func (bigIntType) Name() string {
	return TypeName
}

// payload = version | sign | magnitude
func (bigIntType) Encode(value any) ([]byte, error) {
	x, ok := value.(*BigIntT)
	if !ok {
		return nil, apperrors.ErrWrongType
	}
	return append([]byte{TypeVersion}, x.Bytes()...), nil
}

func (bigIntType) Decode(data []byte) (any, error) {
	if len(data) < 1 || data[0] != TypeVersion {
		return nil, apperrors.NewError(apperrors.CodeCorruptedRecord, "unsupported "+TypeName+" encoding version")
	}
	x, ok := LoadInt(data[1:])
	if !ok {
		return nil, apperrors.NewError(apperrors.CodeCorruptedRecord, "invalid "+TypeName+" payload")
	}
	return x, nil
}

func (bigIntType) Dup(value any) any {
	return value.(*BigIntT).Copy()
}

func (bigIntType) Free(value any) {
	if x, ok := value.(*BigIntT); ok {
		x.ptr().SetInt64(0)
	}
}
