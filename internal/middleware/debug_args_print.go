package middleware

import (
	"fmt"

	"github.com/keshon/mgit/internal/cli"
	"github.com/keshon/mgit/internal/config"
)

// WithDebugArgsPrint prints the raw command arguments in dev builds.
func WithDebugArgsPrint() cli.Middleware {
	return func(cmd cli.Command) cli.Command {
		return &cli.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *cli.Context) error {
				if config.IsDev {
					fmt.Printf("Args: %+v\n", ctx.Args)
				}
				return cmd.Run(ctx)
			},
		}
	}
}
