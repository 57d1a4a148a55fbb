package commands

import (
	"errors"
	"strconv"

	apperrors "github.com/ahouts/redis-bigint/errors"
)

type ReplyKind string

const (
	KindNone    ReplyKind = "none"
	KindString  ReplyKind = "string"
	KindNull    ReplyKind = "null"
	KindInteger ReplyKind = "integer"
	KindError   ReplyKind = "error"
)

// Reply is the result of one command.
type Reply struct {
	Kind ReplyKind `json:"kind"`
	Str  string    `json:"str,omitempty"`
	Int  int64     `json:"int,omitempty"`
}

func NoneReply() Reply {
	return Reply{Kind: KindNone}
}

func StringReply(s string) Reply {
	return Reply{Kind: KindString, Str: s}
}

func NullReply() Reply {
	return Reply{Kind: KindNull}
}

func IntegerReply(n int64) Reply {
	return Reply{Kind: KindInteger, Int: n}
}

func ErrorReply(err error) Reply {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return Reply{Kind: KindError, Str: appErr.Reply()}
	}
	return Reply{Kind: KindError, Str: "ERR " + err.Error()}
}

func (r Reply) IsError() bool {
	return r.Kind == KindError
}

func (r Reply) String() string {
	switch r.Kind {
	case KindNone:
		return "OK"
	case KindNull:
		return "(nil)"
	case KindInteger:
		return "(integer) " + strconv.FormatInt(r.Int, 10)
	case KindError:
		return "(error) " + r.Str
	default:
		return `"` + r.Str + `"`
	}
}
