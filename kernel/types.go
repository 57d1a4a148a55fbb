package kernel

import "github.com/ahouts/redis-bigint/keyspace"

// BigInt is an arbitrary-precision signed integer stored in one key slot.
// Mutating methods change the receiver in place and return it.
type BigInt interface {
	Set(BigInt) BigInt
	Add(BigInt) BigInt
	AddInt64(int64) BigInt
	Inc() BigInt
	Dec() BigInt

	Cmp(BigInt) int
	Sign() int
	Copy() BigInt

	Text(int) string
	String() string
	Bytes() []byte
}

// Handle is a typed view of one key, valid for a single command.
type Handle interface {
	Name() string
	Get() (BigInt, error)
	Create(BigInt) error
	Modified() error
	Close()
}

// Opener is the part of the host key space the accessor consumes.
type Opener interface {
	Open(name string, mode keyspace.Mode) keyspace.Key
}
