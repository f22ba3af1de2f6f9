package commit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/keshon/mgit/internal/cli"
	"github.com/keshon/mgit/internal/commit"
	"github.com/keshon/mgit/internal/config"
	"github.com/keshon/mgit/internal/middleware"
	"github.com/keshon/mgit/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "commit" }
func (c *Command) Short() string     { return "c" }
func (c *Command) Aliases() []string { return []string{"ci"} }
func (c *Command) Usage() string     { return `commit -m "<message>" [--allow-empty]` }
func (c *Command) Brief() string     { return "Record a snapshot of the staged files" }
func (c *Command) Help() string {
	return `Create a commit from the current staging index.

The commit digest is derived from the staged state and the message, so
committing the same state with the same message yields the same digest.
The staging index is left unchanged.

Usage:
  commit -m "<message>"               - commit with a given message
  commit -m "<message>" --allow-empty - permit committing an empty index`
}

func (c *Command) Run(ctx *cli.Context) error {
	var messages []string
	var allowEmpty bool

	for i := 0; i < len(ctx.Args); i++ {
		arg := ctx.Args[i]

		switch {
		case arg == "-m" && i+1 < len(ctx.Args):
			messages = append(messages, ctx.Args[i+1])
			i++
		case strings.HasPrefix(arg, "-m="):
			messages = append(messages, strings.TrimPrefix(arg, "-m="))
		case arg == "--message" && i+1 < len(ctx.Args):
			messages = append(messages, ctx.Args[i+1])
			i++
		case strings.HasPrefix(arg, "--message="):
			messages = append(messages, strings.TrimPrefix(arg, "--message="))
		case arg == "--allow-empty":
			allowEmpty = true
		default:
			if len(messages) == 0 {
				messages = append(messages, arg)
			}
		}
	}

	if len(messages) == 0 {
		return fmt.Errorf("commit message required (use -m or pass message directly)")
	}

	message := strings.Join(messages, "\n\n")

	r, err := repo.OpenAt(config.ResolveRepoRoot())
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}
	r.Commits.AllowEmpty = allowEmpty

	digest, err := r.Commit(message)
	if err != nil {
		if errors.Is(err, commit.ErrNothingToCommit) {
			return fmt.Errorf("no staged changes to commit (use --allow-empty to force)")
		}
		return err
	}

	fmt.Println("Committed:", digest)
	return nil
}

func init() {
	cli.RegisterCommand(
		cli.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
			middleware.WithObjectIntegrityCheck(),
		),
	)
}
