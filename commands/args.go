package commands

import (
	"strconv"

	apperrors "github.com/ahouts/redis-bigint/errors"
	"github.com/ahouts/redis-bigint/kernel"
)

// Args walks the arguments of one command, without the command name.
type Args struct {
	list []string
	pos  int
}

func NewArgs(list []string) *Args {
	return &Args{list: list}
}

func (args *Args) Len() int {
	return len(args.list)
}

func (args *Args) Remaining() int {
	return len(args.list) - args.pos
}

func (args *Args) NextString() (string, error) {
	if args.pos >= len(args.list) {
		return "", apperrors.ErrWrongArity
	}
	s := args.list[args.pos]
	args.pos++
	return s, nil
}

func (args *Args) NextInt64() (int64, error) {
	s, err := args.NextString()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, apperrors.WrapError(apperrors.CodeArgumentParse, "value is not an integer or out of range", err)
	}
	return n, nil
}

// NextRadix reads an optional trailing radix, kernel.DefaultRadix when absent.
func (args *Args) NextRadix() (int, error) {
	if args.Remaining() == 0 {
		return kernel.DefaultRadix, nil
	}
	s, err := args.NextString()
	if err != nil {
		return 0, err
	}
	return kernel.ParseRadix(s)
}

// Rest consumes every argument left.
func (args *Args) Rest() []string {
	rest := args.list[args.pos:]
	args.pos = len(args.list)
	return rest
}
