package commands

import (
	apperrors "github.com/ahouts/redis-bigint/errors"
	"github.com/ahouts/redis-bigint/keyspace"
)

const (
	CmdPing   = "ping"
	CmdSet    = "set"
	CmdGet    = "get"
	CmdDel    = "del"
	CmdExists = "exists"
	CmdType   = "type"
	CmdCopy   = "copy"
	CmdSave   = "save"
)

// NativeCommands are the generic key space commands every value type shares.
func NativeCommands() []Command {
	return []Command{
		{Name: CmdPing, Handler: ping, MinArgs: 0, MaxArgs: 1},
		{Name: CmdSet, Handler: set, Flags: FlagWrite, MinArgs: 2, MaxArgs: 2},
		{Name: CmdGet, Handler: get, Flags: FlagReadOnly, MinArgs: 1, MaxArgs: 1},
		{Name: CmdDel, Handler: del, Flags: FlagWrite, MinArgs: 1, MaxArgs: -1},
		{Name: CmdExists, Handler: exists, Flags: FlagReadOnly, MinArgs: 1, MaxArgs: -1},
		{Name: CmdType, Handler: typeOf, Flags: FlagReadOnly, MinArgs: 1, MaxArgs: 1},
		{Name: CmdCopy, Handler: copyKey, Flags: FlagWrite, MinArgs: 2, MaxArgs: 2},
		{Name: CmdSave, Handler: save, MinArgs: 0, MaxArgs: 0},
	}
}

func ping(_ keyspace.KeySpace, args *Args) (Reply, error) {
	if args.Remaining() == 0 {
		return StringReply("PONG"), nil
	}
	msg, err := args.NextString()
	if err != nil {
		return Reply{}, err
	}
	return StringReply(msg), nil
}

// SET key value stores a native string, replacing any value type.
func set(ks keyspace.KeySpace, args *Args) (Reply, error) {
	name, err := args.NextString()
	if err != nil {
		return Reply{}, err
	}
	value, err := args.NextString()
	if err != nil {
		return Reply{}, err
	}

	key := ks.Open(name, keyspace.WriteMode)
	defer key.Close()

	if err := key.SetValue(keyspace.StringType, []byte(value)); err != nil {
		return Reply{}, err
	}
	return NoneReply(), nil
}

func get(ks keyspace.KeySpace, args *Args) (Reply, error) {
	name, err := args.NextString()
	if err != nil {
		return Reply{}, err
	}

	key := ks.Open(name, keyspace.ReadMode)
	defer key.Close()

	if !key.Exists() {
		return NullReply(), nil
	}
	if key.Type() != keyspace.StringType {
		return Reply{}, apperrors.ErrWrongType
	}
	return StringReply(string(key.Value().([]byte))), nil
}

func del(ks keyspace.KeySpace, args *Args) (Reply, error) {
	var deleted int64

	for _, name := range args.Rest() {
		ok, err := deleteKey(ks, name)
		if err != nil {
			return Reply{}, err
		}
		if ok {
			deleted++
		}
	}

	return IntegerReply(deleted), nil
}

func deleteKey(ks keyspace.KeySpace, name string) (bool, error) {
	key := ks.Open(name, keyspace.WriteMode)
	defer key.Close()

	if !key.Exists() {
		return false, nil
	}
	return true, key.Delete()
}

func exists(ks keyspace.KeySpace, args *Args) (Reply, error) {
	var found int64

	for _, name := range args.Rest() {
		key := ks.Open(name, keyspace.ReadMode)
		if key.Exists() {
			found++
		}
		key.Close()
	}

	return IntegerReply(found), nil
}

func typeOf(ks keyspace.KeySpace, args *Args) (Reply, error) {
	name, err := args.NextString()
	if err != nil {
		return Reply{}, err
	}

	key := ks.Open(name, keyspace.ReadMode)
	defer key.Close()

	if !key.Exists() {
		return StringReply("none"), nil
	}
	return StringReply(key.Type().Name()), nil
}

// COPY src dst copies through the type's Dup hook. Existing dst is kept.
func copyKey(ks keyspace.KeySpace, args *Args) (Reply, error) {
	srcName, err := args.NextString()
	if err != nil {
		return Reply{}, err
	}
	dstName, err := args.NextString()
	if err != nil {
		return Reply{}, err
	}
	if srcName == dstName {
		return Reply{}, apperrors.NewError(apperrors.CodeSelfOperation, "source and destination objects are the same")
	}

	src := ks.Open(srcName, keyspace.ReadMode)
	defer src.Close()
	dst := ks.Open(dstName, keyspace.WriteMode)
	defer dst.Close()

	if dst.Exists() {
		return IntegerReply(0), nil
	}

	ok, err := keyspace.Copy(dst, src)
	if err != nil {
		return Reply{}, err
	}
	if !ok {
		return IntegerReply(0), nil
	}
	return IntegerReply(1), nil
}

func save(ks keyspace.KeySpace, _ *Args) (Reply, error) {
	if err := ks.Save(); err != nil {
		return Reply{}, err
	}
	return NoneReply(), nil
}
