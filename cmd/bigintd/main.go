package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/ahouts/redis-bigint/commands"
	"github.com/ahouts/redis-bigint/config"
	"github.com/ahouts/redis-bigint/keyspace"
	"github.com/ahouts/redis-bigint/network"
	"github.com/ahouts/redis-bigint/server"
)

func main() {
	var cfg config.Server
	if err := config.ParseEnv(&cfg); err != nil {
		Log().Error("CONFIG", "%v", err)
		os.Exit(1)
	}

	space, err := openKeySpace(cfg.DataPath)
	if err != nil {
		Log().Error("KEYSPACE", "%v", err)
		os.Exit(1)
	}
	Log().Info("KEYSPACE", "path=%q keys=%d", cfg.DataPath, space.Len())

	engine := commands.NewEngine(space, commands.Default(),
		commands.WithLogger(func(format string, args ...any) { Log().Error("KEYSPACE", format, args...) }),
	)
	node := server.NewNode(engine,
		func(format string, args ...any) { Log().Warning("REQUEST", format, args...) },
		network.WithConnSize(cfg.MaxConns),
		network.WithTimeout(cfg.ReadTimeout),
	)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		Log().Info("SHUTDOWN", "closing node")
		node.Close()
	}()

	Log().Info("LISTEN", "address=%s", cfg.Address)
	if err := node.Listen(cfg.Address); err != nil {
		Log().Error("LISTEN", "%v", err)
	}

	if err := space.Close(); err != nil {
		Log().Error("KEYSPACE", "close: %v", err)
		os.Exit(1)
	}
}

func openKeySpace(path string) (*keyspace.KeySpaceT, error) {
	if path == "" {
		return commands.NewKeySpace(nil)
	}

	db, err := keyspace.NewStore(path)
	if err != nil {
		return nil, err
	}
	return commands.NewKeySpace(db)
}
