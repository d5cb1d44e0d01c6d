// File: cmd/cfnctl/list.go
// Brief: Stack, export, and resource listings.

package main

import (
	"os"
	"time"

	"github.com/example/cfnctl/internal/config"
	"github.com/example/cfnctl/internal/console"
	"github.com/spf13/cobra"
)

func newListCommand(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls [filter]",
		Aliases: []string{"list"},
		Short:   "List live stacks, optionally filtered by name substring",
		Args:    cobra.MaximumNArgs(1),
		Example: `  # All stacks in the region
  cfnctl ls

  # Only the website stacks
  cfnctl ls mywebsite`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			filter := ""
			if len(args) == 1 {
				filter = args[0]
			}
			client, _, err := newStackClient(ctx, opts)
			if err != nil {
				return err
			}
			stacks, err := client.List(ctx, filter)
			if err != nil {
				return err
			}
			table := console.NewTable("NAME", "STATUS", "CREATED", "UPDATED")
			for _, s := range stacks {
				updated := "-"
				if s.Updated != nil {
					updated = s.Updated.Format(time.RFC3339)
				}
				table.AddRow(s.Name, s.Status, s.Created.Format(time.RFC3339), updated)
			}
			table.Render(os.Stdout)
			return nil
		},
	}
	return cmd
}

func newExportsCommand(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "exports",
		Short:         "List cross-stack exports",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			client, _, err := newStackClient(ctx, opts)
			if err != nil {
				return err
			}
			exports, err := client.Exports(ctx)
			if err != nil {
				return err
			}
			table := console.NewTable("NAME", "VALUE", "EXPORTING STACK")
			for _, e := range exports {
				table.AddRow(e.Name, e.Value, e.StackID)
			}
			table.Render(os.Stdout)
			return nil
		},
	}
	return cmd
}

func newResourcesCommand(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "resources <stack>",
		Short:         "List the provisioned resources of a stack",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			triple, err := resolveTriple(args, false)
			if err != nil {
				return err
			}
			client, _, err := newStackClient(ctx, opts)
			if err != nil {
				return err
			}
			resources, err := client.Resources(ctx, triple.Stack)
			if err != nil {
				return err
			}
			table := console.NewTable("LOGICAL ID", "TYPE", "STATUS", "PHYSICAL ID")
			for _, r := range resources {
				table.AddRow(r.LogicalID, r.Type, r.Status, r.PhysicalID)
			}
			table.Render(os.Stdout)
			return nil
		},
	}
	return cmd
}

func newArnCommand(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "arn <stack>...",
		Short:         "Print the ARN of one or more stacks",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, _, err := newStackClient(ctx, opts)
			if err != nil {
				return err
			}
			for _, name := range args {
				desc, err := client.Describe(ctx, name)
				if err != nil {
					return err
				}
				cmd.Println(desc.ID)
			}
			return nil
		},
	}
	return cmd
}
