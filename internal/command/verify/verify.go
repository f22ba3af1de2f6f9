package verify

import (
	"fmt"

	"github.com/keshon/mgit/internal/cli"
	"github.com/keshon/mgit/internal/config"
	"github.com/keshon/mgit/internal/middleware"
	"github.com/keshon/mgit/internal/object"
	"github.com/keshon/mgit/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "verify" }
func (c *Command) Short() string     { return "v" }
func (c *Command) Aliases() []string { return []string{"fsck"} }
func (c *Command) Usage() string     { return "verify" }
func (c *Command) Brief() string     { return "Re-hash every stored object and report corruption" }
func (c *Command) Help() string {
	return `Verify the object store.

Every object's digest is recomputed from its stored bytes and compared
against its storage key. Mismatches are reported as damaged.`
}

func (c *Command) Run(ctx *cli.Context) error {
	r, err := repo.OpenAt(config.ResolveRepoRoot())
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	checks, err := r.VerifyObjects()
	if err != nil {
		return err
	}

	bad := 0
	for _, check := range checks {
		if check.Status != object.OK {
			bad++
			fmt.Printf("%s  %s\n", check.Status, check.Digest)
		}
	}

	if bad > 0 {
		return fmt.Errorf("%d of %d object(s) failed verification", bad, len(checks))
	}

	fmt.Printf("Verified %d object(s), all ok\n", len(checks))
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
