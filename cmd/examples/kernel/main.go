package main

import (
	"fmt"
	"os"

	"github.com/ahouts/redis-bigint/commands"
)

func main() {
	space, err := commands.NewKeySpace(nil)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer space.Close()

	engine := commands.NewEngine(space, commands.Default())

	script := [][]string{
		{"BIGINT.SET", "x", "ff", "16"},
		{"BIGINT.GET", "x", "10"},
		{"BIGINT.SET", "y", "340282366920938463463374607431768211456"},
		{"BIGINT.ADD", "x", "y"},
		{"BIGINT.GET", "x", "2"},
		{"BIGINT.INC", "x"},
		{"BIGINT.GET", "x"},
		{"BIGINT.ADD", "x", "x"},
		{"SET", "s", "hello"},
		{"BIGINT.INC", "s"},
		{"TYPE", "x"},
	}

	for _, argv := range script {
		fmt.Printf("%v -> %s\n", argv, engine.Execute(argv))
	}
}
