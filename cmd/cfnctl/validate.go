// File: cmd/cfnctl/validate.go
// Brief: Local size check plus server-side template validation.

package main

import (
	"fmt"

	"github.com/example/cfnctl/internal/cfn"
	"github.com/example/cfnctl/internal/config"
	"github.com/example/cfnctl/internal/version"
	"github.com/spf13/cobra"
)

func newValidateCommand(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "validate <template>",
		Short:         "Validate a template locally and against the service",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			body, err := cfn.LoadTemplate(args[0])
			if err != nil {
				return err
			}
			if err := cfn.CheckTemplateSize(body); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			client, _, err := newStackClient(ctx, opts)
			if err != nil {
				return err
			}
			result, err := client.Validate(ctx, body)
			if err != nil {
				return err
			}
			fmt.Printf("%s is valid\n", args[0])
			if result.Description != "" {
				fmt.Printf("description: %s\n", result.Description)
			}
			if len(result.Capabilities) > 0 {
				fmt.Printf("requires capabilities: %v\n", result.Capabilities)
			}
			for _, p := range result.Parameters {
				if p.Default != "" {
					fmt.Printf("parameter %s (default %s)\n", p.Key, p.Default)
					continue
				}
				fmt.Printf("parameter %s (required)\n", p.Key)
			}
			return nil
		},
	}
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Println(version.Get().String())
			return nil
		},
	}
}
