package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ahouts/redis-bigint/commands"
	"github.com/ahouts/redis-bigint/network"
)

// Client sends commands to a server node.
type Client struct {
	ptr network.Client
}

func Dial(address string, timeout time.Duration) (*Client, error) {
	client, err := network.NewClient(address, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{ptr: client}, nil
}

// Do runs one command remotely. Error replies are returned as replies, not
// as errors; err is only set for transport failures.
func (client *Client) Do(argv ...string) (commands.Reply, error) {
	body, err := json.Marshal(argv)
	if err != nil {
		return commands.Reply{}, fmt.Errorf("encode command: %w", err)
	}

	rmsg, err := client.ptr.Request(network.NewMessage(network.MsgCommand, body))
	if err != nil {
		return commands.Reply{}, err
	}

	var reply commands.Reply
	if err := json.Unmarshal(rmsg.Body(), &reply); err != nil {
		return commands.Reply{}, fmt.Errorf("decode reply: %w", err)
	}
	return reply, nil
}

func (client *Client) Close() error {
	return client.ptr.Close()
}
