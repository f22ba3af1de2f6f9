package cat

import (
	"fmt"
	"os"

	"github.com/keshon/mgit/internal/cli"
	"github.com/keshon/mgit/internal/config"
	"github.com/keshon/mgit/internal/middleware"
	"github.com/keshon/mgit/internal/repo"
	"github.com/keshon/mgit/internal/util"
)

type Command struct{}

func (c *Command) Name() string      { return "cat" }
func (c *Command) Short() string     { return "" }
func (c *Command) Aliases() []string { return []string{"cat-object"} }
func (c *Command) Usage() string     { return "cat [--commit] <digest>" }
func (c *Command) Brief() string     { return "Print the contents of a stored object" }
func (c *Command) Help() string {
	return `Print a stored object by digest.

Usage:
  cat <digest>          - write the raw object bytes to stdout
  cat --commit <digest> - decode the object as a commit and pretty-print it`
}

func (c *Command) Run(ctx *cli.Context) error {
	var digest string
	var asCommit bool

	for _, arg := range ctx.Args {
		if arg == "--commit" || arg == "-c" {
			asCommit = true
			continue
		}
		digest = arg
	}
	if digest == "" {
		return fmt.Errorf("object digest required")
	}

	r, err := repo.OpenAt(config.ResolveRepoRoot())
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	if asCommit {
		cm, err := r.Commits.Read(digest)
		if err != nil {
			return err
		}
		fmt.Printf("commit %s\n", digest)
		if cm.Parent != "" {
			fmt.Printf("parent %s\n", cm.Parent)
		}
		fmt.Printf("\n    %s\n\nFiles (%d):\n", cm.Message, len(cm.Files))
		for _, path := range util.SortedKeys(cm.Files) {
			fmt.Printf("  %s  %s\n", cm.Files[path], path)
		}
		return nil
	}

	data, err := r.Objects.Get(digest)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func init() {
	cli.RegisterCommand(
		cli.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
