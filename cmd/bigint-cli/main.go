package main

import (
	"fmt"
	"os"

	"github.com/ahouts/redis-bigint/config"
	"github.com/ahouts/redis-bigint/server"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: bigint-cli COMMAND [ARG...]")
		os.Exit(2)
	}

	var cfg config.Client
	if err := config.ParseEnv(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	client, err := server.Dial(cfg.Address, cfg.Timeout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer client.Close()

	reply, err := client.Do(os.Args[1:]...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(reply)
	if reply.IsError() {
		os.Exit(1)
	}
}
