package commands

import (
	"fmt"
	"sync"

	apperrors "github.com/ahouts/redis-bigint/errors"
	"github.com/ahouts/redis-bigint/keyspace"
)

// Engine runs commands one at a time against a key space and commits the
// keys touched by write commands.
type Engine struct {
	mtx   sync.Mutex
	space keyspace.KeySpace
	table *Table
	logf  Logger
}

// Logger receives failures that do not reach the caller's reply.
type Logger func(format string, args ...any)

type EngineOption func(*Engine)

func WithLogger(logf Logger) EngineOption {
	return func(engine *Engine) {
		if logf != nil {
			engine.logf = logf
		}
	}
}

func NewEngine(space keyspace.KeySpace, table *Table, opts ...EngineOption) *Engine {
	engine := &Engine{
		space: space,
		table: table,
		logf:  func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// Execute runs argv, whose first element is the command name.
func (engine *Engine) Execute(argv []string) Reply {
	if len(argv) == 0 {
		return ErrorReply(apperrors.NewError(apperrors.CodeUnknownCommand, "empty command"))
	}

	cmd, ok := engine.table.Lookup(argv[0])
	if !ok {
		return ErrorReply(apperrors.NewError(apperrors.CodeUnknownCommand,
			fmt.Sprintf("unknown command '%s'", argv[0])))
	}
	if !cmd.checkArity(len(argv) - 1) {
		return ErrorReply(apperrors.NewError(apperrors.CodeWrongArity,
			fmt.Sprintf("wrong number of arguments for '%s' command", cmd.Name)))
	}

	engine.mtx.Lock()
	defer engine.mtx.Unlock()

	reply, err := cmd.Handler(engine.space, NewArgs(argv[1:]))

	// The in-memory state already reflects the command, so a failed commit
	// is logged rather than reported as a failure of the command itself.
	if cmd.Flags&FlagWrite != 0 {
		if cerr := engine.space.Commit(); cerr != nil {
			engine.logf("commit after '%s': %v", cmd.Name, cerr)
		}
	}
	if err != nil {
		return ErrorReply(err)
	}

	return reply
}
