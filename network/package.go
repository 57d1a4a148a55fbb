package network

import (
	"encoding/binary"
)

var (
	_ Package = PackageT{}
)

const (
	SizeUint64 = 8 // bytes
)

type PackageT []byte

func (pack PackageT) Size() uint64 {
	return uint64(len(pack.Bytes()))
}

// Size of package in big endian bytes.
func (pack PackageT) SizeToBytes() []byte {
	data := make([]byte, SizeUint64)
	binary.BigEndian.PutUint64(data, pack.Size())
	return data
}

// From big endian bytes to size.
func (pack PackageT) BytesToSize() uint64 {
	if len(pack) < SizeUint64 {
		return 0
	}
	return binary.BigEndian.Uint64(pack.Bytes())
}

func (pack PackageT) Bytes() []byte {
	return []byte(pack)
}
