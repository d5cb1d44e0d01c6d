// File: cmd/cfnctl/delete.go
// Brief: Bulk stack deletion with per-stack event tails.

package main

import (
	"errors"
	"fmt"
	"sync"

	"github.com/example/cfnctl/internal/cfn"
	"github.com/example/cfnctl/internal/config"
	"github.com/example/cfnctl/internal/resolve"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newDeleteCommand(opts *config.Options) *cobra.Command {
	var noTail bool
	cmd := &cobra.Command{
		Use:   "delete <stack>...",
		Short: "Delete one or more stacks and watch each until it is gone",
		Args:  cobra.MinimumNArgs(1),
		Example: `  # Delete a single stack
  cfnctl delete mywebsite-test

  # Bulk delete; each stack gets its own event tail
  cfnctl delete mywebsite-test mywebsite-staging`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, log, err := newStackClient(ctx, opts)
			if err != nil {
				return err
			}

			// A failure on one stack must not abort the rest of the batch.
			var errs []error
			var submitted []string
			for _, arg := range args {
				triple, err := resolveDeleteTarget(arg, len(args) == 1)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				if err := client.Delete(ctx, triple.Stack); err != nil {
					errs = append(errs, err)
					continue
				}
				fmt.Printf("delete requested for %s\n", triple.Stack)
				submitted = append(submitted, triple.Stack)
			}
			if noTail {
				return errors.Join(errs...)
			}

			// Independent sequential loops, one per stack, no shared snapshot
			// state. The group does not cancel siblings on failure.
			var eg errgroup.Group
			var mu sync.Mutex
			for _, stack := range submitted {
				eg.Go(func() error {
					err := tailToTerminal(ctx, client, log, opts, stack)
					// The stack vanishing mid-tail is the expected end of a
					// delete: the event history query starts failing once the
					// stack is gone.
					if err != nil && !cfn.IsNotFound(err) {
						mu.Lock()
						errs = append(errs, err)
						mu.Unlock()
					}
					return nil
				})
			}
			_ = eg.Wait()
			return errors.Join(errs...)
		},
	}
	cmd.Flags().BoolVar(&noTail, "no-tail", false, "Request deletion and exit without watching events")
	return cmd
}

// resolveDeleteTarget classifies a lone token but treats every member of a
// multi-stack batch as a bare stack name. Deletion needs no template.
func resolveDeleteTarget(arg string, classify bool) (resolve.Triple, error) {
	if classify {
		return resolveTriple([]string{arg}, false)
	}
	return resolve.New(".", nil).Resolve(resolve.Partial{Stack: arg}, false)
}
