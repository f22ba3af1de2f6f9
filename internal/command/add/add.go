package add

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/keshon/mgit/internal/cli"
	"github.com/keshon/mgit/internal/config"
	"github.com/keshon/mgit/internal/middleware"
	"github.com/keshon/mgit/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "add" }
func (c *Command) Short() string     { return "a" }
func (c *Command) Aliases() []string { return []string{"stage"} }
func (c *Command) Usage() string     { return "add <file|dir|.>" }
func (c *Command) Brief() string     { return "Stage files for the next commit" }
func (c *Command) Help() string {
	return `Stage file contents for commit.

Usage:
  add .          - stage every file in the working tree
  add <path>     - stage a specific file or directory
  add <pattern>  - stage files matching a glob like *.go`
}

func (c *Command) Run(ctx *cli.Context) error {
	args := ctx.Args
	if len(args) == 0 {
		return fmt.Errorf("nothing specified (use `add .` to stage everything)")
	}

	r, err := repo.OpenAt(config.ResolveRepoRoot())
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	var toStage []string
	for _, arg := range args {
		switch {
		case arg == "." || isDir(arg):
			files, err := scanWorkingTree(arg)
			if err != nil {
				return err
			}
			toStage = append(toStage, files...)
		case strings.ContainsAny(arg, "*?"):
			matches, err := filepath.Glob(arg)
			if err != nil {
				return err
			}
			toStage = append(toStage, matches...)
		default:
			toStage = append(toStage, arg)
		}
	}

	if len(toStage) == 0 {
		return fmt.Errorf("no matching files to add")
	}

	n, err := r.StageAll(toStage)
	if err != nil {
		return err
	}

	fmt.Printf("Staged %d file(s)\n", n)
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// scanWorkingTree lists regular files under root, skipping the
// repository directory and the pointer file.
func scanWorkingTree(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if name == config.RepoDir {
				return filepath.SkipDir
			}
			return nil
		}
		if name == config.PointerFile {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", root, err)
	}
	return files, nil
}

func init() {
	cli.RegisterCommand(
		cli.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
