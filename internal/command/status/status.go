package status

import (
	"fmt"

	"github.com/keshon/mgit/internal/cli"
	"github.com/keshon/mgit/internal/config"
	"github.com/keshon/mgit/internal/middleware"
	"github.com/keshon/mgit/internal/repo"
	"github.com/keshon/mgit/internal/util"
)

type Command struct{}

func (c *Command) Name() string      { return "status" }
func (c *Command) Short() string     { return "s" }
func (c *Command) Aliases() []string { return []string{"st"} }
func (c *Command) Usage() string     { return "status" }
func (c *Command) Brief() string     { return "Show the staged paths and their digests" }
func (c *Command) Help() string {
	return `Show what is currently staged for the next commit.`
}

func (c *Command) Run(ctx *cli.Context) error {
	r, err := repo.OpenAt(config.ResolveRepoRoot())
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	entries, err := r.Index.Load()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("Nothing staged")
		return nil
	}

	fmt.Printf("Staged files (%d):\n", len(entries))
	for _, path := range util.SortedKeys(entries) {
		fmt.Printf("  %s  %s\n", entries[path], path)
	}
	return nil
}

func init() {
	cli.RegisterCommand(
		cli.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
