package kernel

const (
	TypeName     = "___BIGINT" // 9 chars, reserved in the key space type namespace
	TypeVersion  = 1           // encoding version written before every payload
	DefaultRadix = 10
	MinRadix     = 2
	MaxRadix     = 36
)

const (
	signPositive byte = 0
	signNegative byte = 1
)
