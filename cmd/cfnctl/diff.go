// File: cmd/cfnctl/diff.go
// Brief: Compare local template and parameters against the live stack.

package main

import (
	"fmt"
	"os"

	"github.com/example/cfnctl/internal/cfn"
	"github.com/example/cfnctl/internal/compare"
	"github.com/example/cfnctl/internal/config"
	"github.com/spf13/cobra"
)

func newDiffCommand(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <stack|template|params>",
		Short: "Show how local template and parameters differ from the live stack",
		Args:  cobra.RangeArgs(1, 3),
		Example: `  # What would an update of mywebsite-test change?
  cfnctl diff mywebsite-test`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			triple, err := resolveTriple(args, true)
			if err != nil {
				return err
			}
			local, err := os.ReadFile(triple.Template)
			if err != nil {
				return fmt.Errorf("read template %s: %w", triple.Template, err)
			}
			client, _, err := newStackClient(ctx, opts)
			if err != nil {
				return err
			}
			remote, err := client.Template(ctx, triple.Stack)
			if err != nil {
				return err
			}
			tmplDiff, err := compare.Templates(local, []byte(remote))
			if err != nil {
				return err
			}
			if tmplDiff.InSync {
				fmt.Printf("template: %s matches the live stack\n", triple.Template)
			} else {
				fmt.Printf("template: %s differs from the live stack\n", triple.Template)
				fmt.Print(tmplDiff.Unified)
			}

			params, err := cfn.LoadParameters(triple.Params)
			if err != nil {
				return err
			}
			if len(params) == 0 {
				return nil
			}
			desc, err := client.Describe(ctx, triple.Stack)
			if err != nil {
				return err
			}
			paramDiff := compare.Parameters(params, desc.Parameters)
			if paramDiff.InSync {
				fmt.Println("parameters: in sync")
				return nil
			}
			for _, line := range paramDiff.OnlyLocal {
				fmt.Printf("parameters: only local:  %s\n", line)
			}
			for _, line := range paramDiff.OnlyRemote {
				fmt.Printf("parameters: only live:   %s\n", line)
			}
			return nil
		},
	}
	return cmd
}
