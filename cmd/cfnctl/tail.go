// File: cmd/cfnctl/tail.go
// Brief: Standalone event tail for an operation already in flight.

package main

import (
	"fmt"

	"github.com/example/cfnctl/internal/config"
	"github.com/example/cfnctl/internal/tailer"
	"github.com/spf13/cobra"
)

func newTailCommand(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tail <stack>",
		Short: "Watch a stack's events until it reaches a terminal status",
		Args:  cobra.ExactArgs(1),
		Example: `  # Watch a create/update/delete started elsewhere
  cfnctl tail mywebsite-test`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			triple, err := resolveTriple(args, false)
			if err != nil {
				return err
			}
			client, log, err := newStackClient(ctx, opts)
			if err != nil {
				return err
			}
			tail := tailer.New(client, triple.Stack,
				tailer.WithInterval(opts.PollInterval),
				tailer.WithColorMode(opts.ColorMode),
				tailer.WithLogger(log),
			)
			outcome, err := tail.Run(ctx)
			if err != nil {
				return err
			}
			// Watching is not mutating: a FAILED status is reported, not
			// turned into a process failure.
			fmt.Printf("stack %s settled at %s\n", triple.Stack, outcome.Status)
			return nil
		},
	}
	return cmd
}
