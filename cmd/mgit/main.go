package main

import (
	"fmt"
	"os"

	"github.com/keshon/mgit/internal/cli"

	_ "github.com/keshon/mgit/internal/command/add"
	_ "github.com/keshon/mgit/internal/command/cat"
	_ "github.com/keshon/mgit/internal/command/commit"
	_ "github.com/keshon/mgit/internal/command/init"
	_ "github.com/keshon/mgit/internal/command/status"
	_ "github.com/keshon/mgit/internal/command/verify"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: mgit <command> [args...]")
		fmt.Println("Available commands:")
		for _, cmd := range cli.AllCommands() {
			fmt.Printf("  %-8s %s\n", cmd.Name(), cmd.Brief())
		}
		os.Exit(0)
	}

	cmdName := os.Args[1]
	cmd, ok := cli.GetCommand(cmdName)
	if !ok {
		fmt.Printf("Unknown command: %s\n", cmdName)
		os.Exit(1)
	}

	ctx := &cli.Context{
		Args: os.Args[2:],
	}

	if err := cmd.Run(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
