// File: cmd/cfnctl/status.go
// Brief: Detailed view of one live stack.

package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/example/cfnctl/internal/config"
	"github.com/example/cfnctl/internal/console"
	"github.com/spf13/cobra"
)

func newStatusCommand(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "status <stack>",
		Short:         "Show a stack's status, parameters, outputs, and tags",
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
			desc, err := client.Describe(ctx, triple.Stack)
			if err != nil {
				return err
			}
			fmt.Printf("Name:     %s\n", desc.Name)
			fmt.Printf("Status:   %s\n", desc.Status)
			if desc.StatusReason != "" {
				fmt.Printf("Reason:   %s\n", desc.StatusReason)
			}
			fmt.Printf("Created:  %s\n", desc.Created.Format(time.RFC3339))
			if desc.Updated != nil {
				fmt.Printf("Updated:  %s\n", desc.Updated.Format(time.RFC3339))
			}
			if desc.Description != "" {
				fmt.Printf("About:    %s\n", desc.Description)
			}
			if len(desc.Capabilities) > 0 {
				fmt.Printf("Caps:     %v\n", desc.Capabilities)
			}
			printKeyValueSection("PARAMETERS", desc.Parameters)
			printKeyValueSection("OUTPUTS", desc.Outputs)
			printKeyValueSection("TAGS", desc.Tags)
			return nil
		},
	}
	return cmd
}

func printKeyValueSection(title string, values map[string]string) {
	if len(values) == 0 {
		return
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Println()
	table := console.NewTable(title, "")
	for _, k := range keys {
		table.AddRow(k, values[k])
	}
	table.Render(os.Stdout)
}
