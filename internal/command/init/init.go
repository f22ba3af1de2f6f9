package init

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/keshon/mgit/internal/cli"
	"github.com/keshon/mgit/internal/config"
	"github.com/keshon/mgit/internal/middleware"
	"github.com/keshon/mgit/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "init" }
func (c *Command) Short() string     { return "i" }
func (c *Command) Aliases() []string { return []string{"initialize"} }
func (c *Command) Usage() string     { return "init [options]" }
func (c *Command) Brief() string     { return "Initialize a new repository" }
func (c *Command) Help() string {
	return `Initialize a new repository in the current directory.

Options:
  -q, --quiet                  Suppress normal output.
      --object-format=<algo>   Hash algorithm: xxh3 or blake3 (default xxh3).
      --separate-mgit-dir=<d>  Store repository data in a separate directory.

Usage:
  mgit init [options]

Examples:
  mgit init
  mgit init -q
  mgit init --object-format=blake3
  mgit init --separate-mgit-dir=~/.mgit
`
}

func (c *Command) Run(ctx *cli.Context) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)

	quiet := fs.Bool("quiet", false, "")
	fs.BoolVar(quiet, "q", false, "alias for --quiet")
	objectFmt := fs.String("object-format", config.DefaultHash, "")
	sepDir := fs.String("separate-mgit-dir", "", "")

	if err := fs.Parse(ctx.Args); err != nil {
		return err
	}

	repoDir := config.RepoDir
	if *sepDir != "" {
		repoDir = *sepDir

		// pointer file lets later commands find the relocated repository
		linkFile := filepath.Join(".", config.PointerFile)
		if err := os.WriteFile(linkFile, []byte(*sepDir), 0o644); err != nil {
			return fmt.Errorf("failed to write separate-mgit-dir pointer file: %w", err)
		}
	}

	r, created, err := repo.InitAt(repoDir, *objectFmt)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			if !*quiet {
				fmt.Printf("Reinitialized existing repository at %q\n", r.Config.Root)
			}
			return nil
		}
		return err
	}

	if !*quiet && created {
		fmt.Printf("Initialized empty repository in %q\n", r.Config.Root)
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
