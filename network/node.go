package network

import (
	"errors"
	"io"
	"net"
	"sync"
	"time"
)

var (
	_ Node = &NodeT{}
)

// NodeT accepts client connections and routes messages to handlers by
// message type.
type NodeT struct {
	mtx sync.Mutex

	listener     net.Listener
	closed       bool
	connSize     int
	timeout      time.Duration
	connections  map[string]*ConnT
	handleRoutes map[MsgType]HandleFunc
	wg           sync.WaitGroup
}

type Option func(*NodeT)

// WithConnSize caps simultaneous connections.
func WithConnSize(n int) Option {
	return func(node *NodeT) {
		if n > 0 {
			node.connSize = n
		}
	}
}

// WithTimeout sets the idle read deadline of every connection.
func WithTimeout(d time.Duration) Option {
	return func(node *NodeT) {
		node.timeout = d
	}
}

func NewNode(opts ...Option) *NodeT {
	node := &NodeT{
		connSize:     ConnSize,
		timeout:      TimeLimit,
		connections:  make(map[string]*ConnT),
		handleRoutes: make(map[MsgType]HandleFunc),
	}
	for _, opt := range opts {
		opt(node)
	}
	return node
}

// Add function to mapping for route use.
func (node *NodeT) Handle(tmsg MsgType, handle HandleFunc) Node {
	node.mtx.Lock()
	defer node.mtx.Unlock()

	node.handleRoutes[tmsg] = handle
	return node
}

// Turn on listener by address.
func (node *NodeT) Listen(address string) error {
	listen, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}
	return node.Serve(listen)
}

// Serve accepts connections until Close. It returns nil after Close.
func (node *NodeT) Serve(listen net.Listener) error {
	node.mtx.Lock()
	if node.closed {
		node.mtx.Unlock()
		listen.Close()
		return nil
	}
	node.listener = listen
	node.mtx.Unlock()

	for {
		conn, err := listen.Accept()
		if err != nil {
			if node.isClosed() {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}

		// Registered before the handshake so that silent peers count toward
		// the cap and are closed by Close.
		nconn := newConn(conn, node.timeout)
		if !node.setConnection(nconn) {
			nconn.Close()
			continue
		}

		go node.handleConn(nconn)
	}
}

func (node *NodeT) handleConn(conn *ConnT) {
	defer node.delConnection(conn)

	if node.timeout > 0 {
		if err := conn.ptr.SetReadDeadline(time.Now().Add(node.timeout)); err != nil {
			return
		}
	}
	whoIs := make([]byte, 1)
	if _, err := io.ReadFull(conn.ptr, whoIs); err != nil || whoIs[0] != IsClient {
		return
	}

	for {
		msg, err := conn.Read()
		if err != nil {
			return
		}

		f, ok := node.getFunction(msg.Head())
		if !ok {
			return
		}
		f(node, conn, msg)
	}
}

// Get list of connections.
func (node *NodeT) Connections() []Conn {
	node.mtx.Lock()
	defer node.mtx.Unlock()

	var list []Conn
	for _, conn := range node.connections {
		list = append(list, conn)
	}

	return list
}

// Close stops accepting, closes every connection and waits for handlers.
func (node *NodeT) Close() error {
	node.mtx.Lock()
	node.closed = true

	var err error
	if node.listener != nil {
		err = node.listener.Close()
	}
	for _, conn := range node.connections {
		conn.Close()
	}
	node.mtx.Unlock()

	node.wg.Wait()
	return err
}

func (node *NodeT) getFunction(tmsg MsgType) (HandleFunc, bool) {
	node.mtx.Lock()
	defer node.mtx.Unlock()

	f, ok := node.handleRoutes[tmsg]
	return f, ok
}

func (node *NodeT) isClosed() bool {
	node.mtx.Lock()
	defer node.mtx.Unlock()

	return node.closed
}

func (node *NodeT) setConnection(conn *ConnT) bool {
	node.mtx.Lock()
	defer node.mtx.Unlock()

	if node.closed || len(node.connections) >= node.connSize {
		return false
	}
	node.connections[conn.id] = conn
	node.wg.Add(1)
	return true
}

func (node *NodeT) delConnection(conn *ConnT) {
	node.mtx.Lock()
	defer node.mtx.Unlock()

	delete(node.connections, conn.id)
	conn.Close()
	node.wg.Done()
}
