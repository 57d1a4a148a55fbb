package network

import (
	"net"
)

type MsgType uint32

type HandleFunc func(Node, Conn, Message)

type Message interface {
	Head() MsgType
	Body() []byte
	Nonce() string

	Hash() string
	Bytes() []byte
}

type Package interface {
	Size() uint64
	Bytes() []byte

	SizeToBytes() []byte
	BytesToSize() uint64
}

type Conn interface {
	ID() string
	RemoteAddr() net.Addr

	Read() (Message, error)
	Write(Message) error
	Close() error
}

type Node interface {
	Listen(string) error
	Serve(net.Listener) error
	Handle(MsgType, HandleFunc) Node

	Connections() []Conn
	Close() error
}

type Client interface {
	Request(Message) (Message, error)
	Close() error
}
