package network

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/number571/gopeer/crypto"
)

var (
	_ Message = &MessageT{}
)

type MessageT struct {
	HeadT  MsgType `json:"head"`
	BodyT  []byte  `json:"body"`
	NonceT string  `json:"nonce"`
}

// Create message with title and data.
func NewMessage(head MsgType, body []byte) Message {
	return &MessageT{
		HeadT:  head,
		BodyT:  body,
		NonceT: crypto.RandString(NonceSize),
	}
}

// NewReply answers req, keeping its nonce.
func NewReply(req Message, body []byte) Message {
	return &MessageT{
		HeadT:  req.Head() | MaskBit,
		BodyT:  body,
		NonceT: req.Nonce(),
	}
}

func LoadMessage(data []byte) (Message, error) {
	msg := new(MessageT)
	if err := json.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("decode message: %w", err)
	}
	return msg, nil
}

func (msg *MessageT) Head() MsgType {
	return msg.HeadT
}

func (msg *MessageT) Body() []byte {
	return msg.BodyT
}

func (msg *MessageT) Nonce() string {
	return msg.NonceT
}

func (msg *MessageT) Hash() string {
	return fmt.Sprintf("%X", crypto.NewSHA256(msg.Bytes()).Bytes())
}

// Serialize with JSON format.
func (msg *MessageT) Bytes() []byte {
	jsonData, err := json.Marshal(msg)
	if err != nil {
		return nil
	}

	pack := PackageT(jsonData)
	return bytes.Join(
		[][]byte{
			pack.SizeToBytes(),
			pack.Bytes(),
		},
		[]byte{},
	)
}
