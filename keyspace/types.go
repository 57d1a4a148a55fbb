package keyspace

// Mode selects the access a key handle grants.
type Mode int

const (
	ReadMode Mode = iota
	WriteMode
)

// DataType is a registered value kind with the hooks the key space needs to
// persist, copy and release its payloads.
type DataType interface {
	Name() string

	Encode(any) ([]byte, error)
	Decode([]byte) (any, error)
	Dup(any) any
	Free(any)
}

// Key is a handle on one key slot, valid until Close.
type Key interface {
	Name() string
	Mode() Mode

	Exists() bool
	Type() DataType
	Value() any

	SetValue(DataType, any) error
	SignalModified() error
	Delete() error

	Close()
}

type KeySpace interface {
	RegisterType(DataType) error
	LookupType(string) (DataType, bool)
	Seal()

	Open(string, Mode) Key
	Len() int

	Load() error
	Commit() error
	Save() error
	Close() error
}

// Store is the durable backend of a key space. Records are opaque bytes.
type Store interface {
	Load(func(name string, record []byte) error) error
	Apply(puts map[string][]byte, dels []string) error
	Replace(all map[string][]byte) error
	Close() error
}
