package network

import "time"

const (
	NonceSize = 16        // random chars
	PackSize  = (1 << 20) // 1MiB
	ConnSize  = 256       // max num connections
	TimeLimit = 5 * time.Minute
)

const (
	IsClient byte = 2
)

const (
	MsgCommand MsgType = iota + 1
)

const (
	MaskBit = MsgType(1 << 31)
)
