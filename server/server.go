// Package server carries engine commands over the network package.
package server

import (
	"encoding/json"
	"fmt"

	"github.com/ahouts/redis-bigint/commands"
	"github.com/ahouts/redis-bigint/network"
)

// Executor runs one command.
type Executor interface {
	Execute(argv []string) commands.Reply
}

// Logger receives one line per failed exchange.
type Logger func(format string, args ...any)

// NewNode builds a node routing MsgCommand to exec.
func NewNode(exec Executor, logf Logger, opts ...network.Option) *network.NodeT {
	node := network.NewNode(opts...)
	node.Handle(network.MsgCommand, handleCommand(exec, logf))
	return node
}

func handleCommand(exec Executor, logf Logger) network.HandleFunc {
	if logf == nil {
		logf = func(string, ...any) {}
	}

	return func(node network.Node, conn network.Conn, msg network.Message) {
		var (
			argv  []string
			reply commands.Reply
		)

		if err := json.Unmarshal(msg.Body(), &argv); err != nil {
			reply = commands.ErrorReply(fmt.Errorf("malformed command body: %w", err))
		} else {
			reply = exec.Execute(argv)
		}

		body, err := json.Marshal(reply)
		if err != nil {
			logf("encode reply for request %s: %v", msg.Hash(), err)
			return
		}

		if err := conn.Write(network.NewReply(msg, body)); err != nil {
			logf("write reply to %s: %v", conn.RemoteAddr(), err)
		}
	}
}
