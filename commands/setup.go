package commands

import (
	"github.com/ahouts/redis-bigint/kernel"
	"github.com/ahouts/redis-bigint/keyspace"
)

// NewKeySpace registers every data type the default table operates on,
// closes registration and loads the persisted keys. store may be nil.
func NewKeySpace(store keyspace.Store) (*keyspace.KeySpaceT, error) {
	space := keyspace.NewKeySpace(store)
	if err := kernel.Register(space); err != nil {
		space.Close()
		return nil, err
	}
	space.Seal()

	if err := space.Load(); err != nil {
		space.Close()
		return nil, err
	}
	return space, nil
}
