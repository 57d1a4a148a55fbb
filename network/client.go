package network

import (
	"fmt"
	"net"
	"time"
)

var (
	_ Client = &ClientT{}
)

type ClientT struct {
	conn *ConnT
}

func NewClient(address string, timeout time.Duration) (*ClientT, error) {
	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", address, err)
	}

	if _, err := conn.Write([]byte{IsClient}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("handshake %s: %w", address, err)
	}
	return &ClientT{newConn(conn, timeout)}, nil
}

// Request sends msg and waits for the reply carrying the same nonce.
func (client *ClientT) Request(msg Message) (Message, error) {
	if err := client.conn.Write(msg); err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	rmsg, err := client.conn.Read()
	if err != nil {
		return nil, fmt.Errorf("read reply: %w", err)
	}
	if rmsg.Head() != msg.Head()|MaskBit || rmsg.Nonce() != msg.Nonce() {
		return nil, fmt.Errorf("unexpected reply head=%d nonce=%s", rmsg.Head(), rmsg.Nonce())
	}

	return rmsg, nil
}

func (client *ClientT) Close() error {
	return client.conn.Close()
}
