package commands

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ahouts/redis-bigint/keyspace"
)

func newTestEngine(t *testing.T, store keyspace.Store) (*Engine, *keyspace.KeySpaceT) {
	t.Helper()

	space, err := NewKeySpace(store)
	if err != nil {
		t.Fatalf("key space: %v", err)
	}
	return NewEngine(space, Default()), space
}

func mustExec(t *testing.T, engine *Engine, argv ...string) Reply {
	t.Helper()

	reply := engine.Execute(argv)
	if reply.IsError() {
		t.Fatalf("%v: unexpected error %s", argv, reply.Str)
	}
	return reply
}

func expectString(t *testing.T, engine *Engine, want string, argv ...string) {
	t.Helper()

	reply := mustExec(t, engine, argv...)
	if reply.Kind != KindString || reply.Str != want {
		t.Fatalf("%v: expected %q, got %s", argv, want, reply)
	}
}

func expectError(t *testing.T, engine *Engine, prefix string, argv ...string) {
	t.Helper()

	reply := engine.Execute(argv)
	if !reply.IsError() {
		t.Fatalf("%v: expected error %q, got %s", argv, prefix, reply)
	}
	if !strings.HasPrefix(reply.Str, prefix) {
		t.Fatalf("%v: expected error starting with %q, got %q", argv, prefix, reply.Str)
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	expectError(t, engine, "ERR unknown command 'bigint.mul'", "bigint.mul", "x")
	expectError(t, engine, "ERR empty command")
}

func TestExecuteArity(t *testing.T) {
	engine, space := newTestEngine(t, nil)

	tests := [][]string{
		{"bigint.set", "x"},
		{"bigint.set", "x", "1", "10", "extra"},
		{"bigint.get"},
		{"bigint.get", "x", "10", "extra"},
		{"bigint.add", "a"},
		{"bigint.addint", "a"},
		{"bigint.inc"},
		{"bigint.dec", "a", "b"},
		{"del"},
	}

	for _, argv := range tests {
		expectError(t, engine, "ERR wrong number of arguments for '"+argv[0]+"' command", argv...)
	}
	if space.Len() != 0 {
		t.Fatalf("arity errors touched the key space: %d keys", space.Len())
	}
}

func TestExecuteIsCaseInsensitive(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	mustExec(t, engine, "BIGINT.SET", "x", "7")
	expectString(t, engine, "7", "BigInt.Get", "x")
}

func TestExecutePersistsWrites(t *testing.T) {
	store, err := keyspace.NewMemStore()
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	defer store.Close()

	engine, _ := newTestEngine(t, store)
	mustExec(t, engine, "bigint.set", "big", "-123456789012345678901234567890")
	mustExec(t, engine, "bigint.inc", "big")
	mustExec(t, engine, "set", "s", "hello")

	reloaded, _ := newTestEngine(t, store)
	expectString(t, reloaded, "-123456789012345678901234567889", "bigint.get", "big")
	expectString(t, reloaded, "hello", "get", "s")

	mustExec(t, engine, "del", "big")
	again, _ := newTestEngine(t, store)
	if reply := again.Execute([]string{"bigint.get", "big"}); reply.Kind != KindNull {
		t.Fatalf("deleted key survived reload: %s", reply)
	}
}

// recordingStore counts applied batches and fails them when err is set.
type recordingStore struct {
	applied int
	err     error
}

func (s *recordingStore) Load(func(string, []byte) error) error { return nil }
func (s *recordingStore) Replace(map[string][]byte) error       { return s.err }
func (s *recordingStore) Close() error                          { return nil }

func (s *recordingStore) Apply(map[string][]byte, []string) error {
	s.applied++
	return s.err
}

func TestExecuteLogsCommitFailure(t *testing.T) {
	store := &recordingStore{err: errors.New("disk full")}
	space, err := NewKeySpace(store)
	if err != nil {
		t.Fatalf("key space: %v", err)
	}

	var logged []string
	engine := NewEngine(space, Default(), WithLogger(func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}))

	if reply := mustExec(t, engine, "bigint.set", "n", "1"); reply.Kind != KindNone {
		t.Fatalf("expected empty reply, got %s", reply)
	}
	if reply := mustExec(t, engine, "bigint.inc", "n"); reply.Kind != KindNone {
		t.Fatalf("expected empty reply, got %s", reply)
	}
	expectString(t, engine, "2", "bigint.get", "n")

	if len(logged) != 2 {
		t.Fatalf("expected two logged commit failures, got %q", logged)
	}
	if !strings.Contains(logged[0], "disk full") {
		t.Fatalf("log line lost the cause: %q", logged[0])
	}

	expectError(t, engine, "ERR target key does not exist", "bigint.inc", "missing")
	expectError(t, engine, "WRONGTYPE", "get", "n")
}

func TestFailedWriteCommandsDoNotReachStore(t *testing.T) {
	store := &recordingStore{}
	engine, _ := newTestEngine(t, store)

	mustExec(t, engine, "set", "s", "text")
	if store.applied != 1 {
		t.Fatalf("expected one batch, got %d", store.applied)
	}

	expectError(t, engine, "WRONGTYPE", "bigint.inc", "s")
	expectError(t, engine, "WRONGTYPE", "bigint.addint", "s", "3")
	expectError(t, engine, "ERR target key does not exist", "bigint.dec", "missing")
	if store.applied != 1 {
		t.Fatalf("failed commands committed %d extra batches", store.applied-1)
	}
}
