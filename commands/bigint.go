package commands

import (
	apperrors "github.com/ahouts/redis-bigint/errors"
	"github.com/ahouts/redis-bigint/kernel"
	"github.com/ahouts/redis-bigint/keyspace"
)

const (
	CmdBigIntSet    = "bigint.set"
	CmdBigIntGet    = "bigint.get"
	CmdBigIntAdd    = "bigint.add"
	CmdBigIntAddInt = "bigint.addint"
	CmdBigIntInc    = "bigint.inc"
	CmdBigIntDec    = "bigint.dec"
)

func BigIntCommands() []Command {
	return []Command{
		{Name: CmdBigIntSet, Handler: bigintSet, Flags: FlagWrite, MinArgs: 2, MaxArgs: 3},
		{Name: CmdBigIntGet, Handler: bigintGet, Flags: FlagReadOnly, MinArgs: 1, MaxArgs: 2},
		{Name: CmdBigIntAdd, Handler: bigintAdd, Flags: FlagWrite, MinArgs: 2, MaxArgs: 2},
		{Name: CmdBigIntAddInt, Handler: bigintAddInt, Flags: FlagWrite, MinArgs: 2, MaxArgs: 2},
		{Name: CmdBigIntInc, Handler: bigintInc, Flags: FlagWrite, MinArgs: 1, MaxArgs: 1},
		{Name: CmdBigIntDec, Handler: bigintDec, Flags: FlagWrite, MinArgs: 1, MaxArgs: 1},
	}
}

// BIGINT.SET key value [radix]
func bigintSet(ks keyspace.KeySpace, args *Args) (Reply, error) {
	name, err := args.NextString()
	if err != nil {
		return Reply{}, err
	}
	text, err := args.NextString()
	if err != nil {
		return Reply{}, err
	}
	radix, err := args.NextRadix()
	if err != nil {
		return Reply{}, err
	}

	err = kernel.WithWritable(ks, name, func(h kernel.Handle) error {
		current, err := h.Get()
		if err != nil {
			return err
		}

		x, err := kernel.Parse(text, radix)
		if err != nil {
			return err
		}

		if current != nil {
			current.Set(x)
			return h.Modified()
		}
		return h.Create(x)
	})
	if err != nil {
		return Reply{}, err
	}

	return NoneReply(), nil
}

// BIGINT.GET key [radix]
func bigintGet(ks keyspace.KeySpace, args *Args) (Reply, error) {
	name, err := args.NextString()
	if err != nil {
		return Reply{}, err
	}
	radix, err := args.NextRadix()
	if err != nil {
		return Reply{}, err
	}

	reply := NullReply()
	err = kernel.WithReadOnly(ks, name, func(h kernel.Handle) error {
		x, err := h.Get()
		if err != nil || x == nil {
			return err
		}

		text, err := kernel.Format(x, radix)
		if err != nil {
			return err
		}
		reply = StringReply(text)
		return nil
	})
	if err != nil {
		return Reply{}, err
	}

	return reply, nil
}

// BIGINT.ADD target other
func bigintAdd(ks keyspace.KeySpace, args *Args) (Reply, error) {
	targetName, err := args.NextString()
	if err != nil {
		return Reply{}, err
	}
	otherName, err := args.NextString()
	if err != nil {
		return Reply{}, err
	}

	if targetName == otherName {
		return Reply{}, apperrors.ErrSelfOperation
	}

	err = kernel.WithWritable(ks, targetName, func(th kernel.Handle) error {
		target, err := getExisting(th, "target")
		if err != nil {
			return err
		}

		return kernel.WithReadOnly(ks, otherName, func(oh kernel.Handle) error {
			other, err := getExisting(oh, "other")
			if err != nil {
				return err
			}

			target.Add(other)
			return th.Modified()
		})
	})
	if err != nil {
		return Reply{}, err
	}

	return NoneReply(), nil
}

// BIGINT.ADDINT target integer
func bigintAddInt(ks keyspace.KeySpace, args *Args) (Reply, error) {
	name, err := args.NextString()
	if err != nil {
		return Reply{}, err
	}
	n, err := args.NextInt64()
	if err != nil {
		return Reply{}, err
	}

	return mutate(ks, name, func(x kernel.BigInt) {
		x.AddInt64(n)
	})
}

// BIGINT.INC target
func bigintInc(ks keyspace.KeySpace, args *Args) (Reply, error) {
	name, err := args.NextString()
	if err != nil {
		return Reply{}, err
	}

	return mutate(ks, name, func(x kernel.BigInt) {
		x.Inc()
	})
}

// BIGINT.DEC target
func bigintDec(ks keyspace.KeySpace, args *Args) (Reply, error) {
	name, err := args.NextString()
	if err != nil {
		return Reply{}, err
	}

	return mutate(ks, name, func(x kernel.BigInt) {
		x.Dec()
	})
}

// mutate applies fn in place to the existing BigInt at name.
func mutate(ks keyspace.KeySpace, name string, fn func(kernel.BigInt)) (Reply, error) {
	err := kernel.WithWritable(ks, name, func(h kernel.Handle) error {
		x, err := getExisting(h, "target")
		if err != nil {
			return err
		}
		fn(x)
		return h.Modified()
	})
	if err != nil {
		return Reply{}, err
	}

	return NoneReply(), nil
}

func getExisting(h kernel.Handle, role string) (kernel.BigInt, error) {
	x, err := h.Get()
	if err != nil {
		return nil, err
	}
	if x == nil {
		return nil, apperrors.NewError(apperrors.CodeMissingKey, role+" key does not exist")
	}
	return x, nil
}
