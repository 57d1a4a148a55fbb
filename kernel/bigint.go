package kernel

import (
	"math/big"
)

var (
	_ BigInt = &BigIntT{}
)

type BigIntT big.Int

func NewInt(strnum string) BigInt {
	res, ok := big.NewInt(0).SetString(strnum, DefaultRadix)
	if !ok {
		return nil
	}
	return (*BigIntT)(res)
}

func NewInt64(x int64) BigInt {
	return (*BigIntT)(big.NewInt(x))
}

func ZeroInt() BigInt {
	return NewInt64(0)
}

// LoadInt decodes the output of Bytes.
func LoadInt(data []byte) (BigInt, bool) {
	if len(data) < 1 {
		return nil, false
	}

	res := big.NewInt(0).SetBytes(data[1:])
	switch data[0] {
	case signPositive:
	case signNegative:
		res.Neg(res)
	default:
		return nil, false
	}

	return (*BigIntT)(res), true
}

func (x *BigIntT) Set(y BigInt) BigInt {
	return (*BigIntT)(x.ptr().Set(toBig(y)))
}

func (x *BigIntT) Add(y BigInt) BigInt {
	return (*BigIntT)(x.ptr().Add(x.ptr(), toBig(y)))
}

func (x *BigIntT) AddInt64(y int64) BigInt {
	return (*BigIntT)(x.ptr().Add(x.ptr(), big.NewInt(y)))
}

func (x *BigIntT) Inc() BigInt {
	return x.AddInt64(1)
}

func (x *BigIntT) Dec() BigInt {
	return x.AddInt64(-1)
}

func (x *BigIntT) Cmp(y BigInt) int {
	return x.ptr().Cmp(toBig(y))
}

func (x *BigIntT) Sign() int {
	return x.ptr().Sign()
}

func (x *BigIntT) Copy() BigInt {
	return (*BigIntT)(new(big.Int).Set(x.ptr()))
}

func (x *BigIntT) Text(radix int) string {
	return x.ptr().Text(radix)
}

func (x *BigIntT) String() string {
	return x.ptr().String()
}

// Bytes is a sign byte followed by the big endian magnitude.
func (x *BigIntT) Bytes() []byte {
	sign := signPositive
	if x.ptr().Sign() < 0 {
		sign = signNegative
	}
	return append([]byte{sign}, x.ptr().Bytes()...)
}

func (x *BigIntT) ptr() *big.Int {
	return (*big.Int)(x)
}

func toBig(y BigInt) *big.Int {
	return (*big.Int)(y.(*BigIntT))
}
