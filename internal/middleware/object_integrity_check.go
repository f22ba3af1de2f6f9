package middleware

import (
	"fmt"

	"github.com/keshon/mgit/internal/cli"
	"github.com/keshon/mgit/internal/config"
	"github.com/keshon/mgit/internal/object"
	"github.com/keshon/mgit/internal/repo"
)

// WithObjectIntegrityCheck verifies the object store before running the
// command, so a commit never snapshots on top of corrupted objects.
func WithObjectIntegrityCheck() cli.Middleware {
	return func(cmd cli.Command) cli.Command {
		return &cli.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *cli.Context) error {
				r, err := repo.OpenAt(config.ResolveRepoRoot())
				if err != nil {
					// Not a repository yet; let the command report it.
					return cmd.Run(ctx)
				}

				checks, err := r.VerifyObjects()
				if err != nil {
					return fmt.Errorf("repository verification failed: %w", err)
				}
				for _, c := range checks {
					if c.Status != object.OK {
						return fmt.Errorf(
							"object %s is %s\nRun `mgit verify` for the full report",
							c.Digest, c.Status,
						)
					}
				}
				return cmd.Run(ctx)
			},
		}
	}
}
