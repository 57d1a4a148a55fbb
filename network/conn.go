package network

import (
	"fmt"
	"io"
	"net"
	"time"

	"github.com/number571/gopeer/crypto"
)

var (
	_ Conn = &ConnT{}
)

type ConnT struct {
	id      string
	ptr     net.Conn
	timeout time.Duration
}

func newConn(conn net.Conn, timeout time.Duration) *ConnT {
	return &ConnT{
		id:      crypto.RandString(NonceSize),
		ptr:     conn,
		timeout: timeout,
	}
}

func (conn *ConnT) ID() string {
	return conn.id
}

func (conn *ConnT) RemoteAddr() net.Addr {
	return conn.ptr.RemoteAddr()
}

func (conn *ConnT) Close() error {
	return conn.ptr.Close()
}

func (conn *ConnT) Write(msg Message) error {
	data := msg.Bytes()
	if data == nil {
		return fmt.Errorf("encode message")
	}
	_, err := conn.ptr.Write(data)
	return err
}

// Read blocks until a full message arrives or the timeout expires.
// io.EOF is returned unchanged when the peer closed the connection.
func (conn *ConnT) Read() (Message, error) {
	if conn.timeout > 0 {
		if err := conn.ptr.SetReadDeadline(time.Now().Add(conn.timeout)); err != nil {
			return nil, err
		}
	}

	buflen := make([]byte, SizeUint64)
	if _, err := io.ReadFull(conn.ptr, buflen); err != nil {
		return nil, err
	}

	mustLen := PackageT(buflen).BytesToSize()
	if mustLen > PackSize {
		return nil, fmt.Errorf("package size %d exceeds limit %d", mustLen, PackSize)
	}

	pack := make([]byte, mustLen)
	if _, err := io.ReadFull(conn.ptr, pack); err != nil {
		return nil, fmt.Errorf("read package: %w", err)
	}

	return LoadMessage(pack)
}
