package commands

import (
	"fmt"
	"strings"

	"github.com/ahouts/redis-bigint/keyspace"
)

type Flags uint8

const (
	FlagWrite Flags = 1 << iota
	FlagReadOnly
)

// HandleFunc runs one command against the key space. Errors become error
// replies.
type HandleFunc func(keyspace.KeySpace, *Args) (Reply, error)

// Command binds a name to its handler. MinArgs and MaxArgs count arguments
// after the name; MaxArgs < 0 means unbounded.
type Command struct {
	Name    string
	Handler HandleFunc
	Flags   Flags
	MinArgs int
	MaxArgs int
}

func (cmd Command) checkArity(n int) bool {
	if n < cmd.MinArgs {
		return false
	}
	return cmd.MaxArgs < 0 || n <= cmd.MaxArgs
}

// Table is an immutable command table.
type Table struct {
	commands map[string]Command
	names    []string
}

func NewTable(cmds ...Command) (*Table, error) {
	table := &Table{
		commands: make(map[string]Command, len(cmds)),
	}

	for _, cmd := range cmds {
		name := strings.ToLower(cmd.Name)
		if name == "" || cmd.Handler == nil {
			return nil, fmt.Errorf("command %q: name and handler are required", cmd.Name)
		}
		if cmd.Flags&FlagWrite != 0 && cmd.Flags&FlagReadOnly != 0 {
			return nil, fmt.Errorf("command %q: write and readonly flags are exclusive", cmd.Name)
		}
		if _, ok := table.commands[name]; ok {
			return nil, fmt.Errorf("command %q registered twice", cmd.Name)
		}
		cmd.Name = name
		table.commands[name] = cmd
		table.names = append(table.names, name)
	}

	return table, nil
}

func MustTable(cmds ...Command) *Table {
	table, err := NewTable(cmds...)
	if err != nil {
		panic(err)
	}
	return table
}

// Lookup is case-insensitive.
func (table *Table) Lookup(name string) (Command, bool) {
	cmd, ok := table.commands[strings.ToLower(name)]
	return cmd, ok
}

// Names lists commands in registration order.
func (table *Table) Names() []string {
	return append([]string(nil), table.names...)
}

var defaultTable = MustTable(append(BigIntCommands(), NativeCommands()...)...)

// Default is the table with the BIGINT commands and the native ones.
func Default() *Table {
	return defaultTable
}
