// File: cmd/cfnctl/submit.go
// Brief: Shared create/update submission flow.

package main

import (
	"context"
	"fmt"

	"github.com/example/cfnctl/internal/cfn"
	"github.com/example/cfnctl/internal/config"
	"github.com/spf13/cobra"
)

type submitFlags struct {
	capabilities []string
	roleARN      string
	noTail       bool
}

func (f *submitFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.capabilities, "capabilities", nil, "IAM capabilities to acknowledge (e.g. CAPABILITY_IAM)")
	cmd.Flags().StringVar(&f.roleARN, "role-arn", "", "IAM role CloudFormation assumes for the operation")
	cmd.Flags().BoolVar(&f.noTail, "no-tail", false, "Submit and exit without watching events")
}

// runSubmit resolves the artifact triple, loads the local artifacts, submits
// the mutation, and tails the stack to its terminal status.
func runSubmit(ctx context.Context, opts *config.Options, args []string, flags submitFlags, verb string) error {
	triple, err := resolveTriple(args, true)
	if err != nil {
		return err
	}
	body, err := cfn.LoadTemplate(triple.Template)
	if err != nil {
		return err
	}
	if err := cfn.CheckTemplateSize(body); err != nil {
		return fmt.Errorf("%s: %w", triple.Template, err)
	}
	params, err := cfn.LoadParameters(triple.Params)
	if err != nil {
		return err
	}
	client, log, err := newStackClient(ctx, opts)
	if err != nil {
		return err
	}
	in := cfn.StackInput{
		Name:         triple.Stack,
		TemplateBody: body,
		Parameters:   params,
		Capabilities: flags.capabilities,
		RoleARN:      flags.roleARN,
	}
	var id string
	switch verb {
	case "create":
		id, err = client.Create(ctx, in)
	default:
		id, err = client.Update(ctx, in)
	}
	if err != nil {
		return err
	}
	fmt.Println(id)
	if flags.noTail {
		return nil
	}
	return tailToTerminal(ctx, client, log, opts, triple.Stack)
}

func newCreateCommand(opts *config.Options) *cobra.Command {
	var flags submitFlags
	cmd := &cobra.Command{
		Use:   "create <stack|template|params> | create <stack> <template> [params]",
		Short: "Create a stack, deriving its template and parameters by convention",
		Args:  cobra.RangeArgs(1, 3),
		Example: `  # mywebsite.yml and mywebsite-params-test.json are found automatically
  cfnctl create mywebsite-test

  # Explicit triple with IAM capability
  cfnctl create mywebsite-test mywebsite.yml params/mywebsite-params-test.json --capabilities CAPABILITY_IAM`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd.Context(), opts, args, flags, "create")
		},
	}
	flags.bind(cmd)
	return cmd
}

func newUpdateCommand(opts *config.Options) *cobra.Command {
	var flags submitFlags
	cmd := &cobra.Command{
		Use:   "update <stack|template|params> | update <stack> <template> [params]",
		Short: "Update a stack with the local template and parameters",
		Args:  cobra.RangeArgs(1, 3),
		Example: `  # Apply local changes to the live stack
  cfnctl update mywebsite-test`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd.Context(), opts, args, flags, "update")
		},
	}
	flags.bind(cmd)
	return cmd
}
