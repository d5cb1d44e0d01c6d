// main.go bootstraps cfnctl: it builds the root Cobra command, wires viper
// overrides, and executes with a signal-aware context.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/example/cfnctl/internal/cfn"
	"github.com/example/cfnctl/internal/config"
	"github.com/example/cfnctl/internal/resolve"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCommand()
	err := rootCmd.ExecuteContext(ctx)
	handleError(err)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := config.NewOptions()
	cmd := &cobra.Command{
		Use:   "cfnctl",
		Short: "Convention-driven CloudFormation stack management",
		Long: `cfnctl creates, updates, deletes and watches CloudFormation stacks.
Given any one of a stack name, template file, or parameters file, it derives
the rest by naming convention: stack <token>-<env>, template <token>.yml, and
parameters <token>-params-<env>.json in the working directory or params/.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.Validate()
		},
	}
	opts.BindFlags(cmd.PersistentFlags())

	createCmd := newCreateCommand(opts)
	updateCmd := newUpdateCommand(opts)
	deleteCmd := newDeleteCommand(opts)
	tailCmd := newTailCommand(opts)
	statusCmd := newStatusCommand(opts)
	listCmd := newListCommand(opts)
	exportsCmd := newExportsCommand(opts)
	resourcesCmd := newResourcesCommand(opts)
	arnCmd := newArnCommand(opts)
	diffCmd := newDiffCommand(opts)
	validateCmd := newValidateCommand(opts)
	cmd.AddCommand(
		createCmd,
		updateCmd,
		deleteCmd,
		tailCmd,
		statusCmd,
		listCmd,
		exportsCmd,
		resourcesCmd,
		arnCmd,
		diffCmd,
		validateCmd,
		newVersionCommand(),
	)
	cmd.Example = `  # Create mywebsite-test from mywebsite.yml and mywebsite-params-test.json
  cfnctl create mywebsite-test

  # Watch an update already in flight
  cfnctl tail mywebsite-test

  # Compare the local template against the live stack
  cfnctl diff mywebsite-test`
	bindViper(cmd, createCmd, updateCmd, deleteCmd, tailCmd, statusCmd, listCmd,
		exportsCmd, resourcesCmd, arnCmd, diffCmd, validateCmd)
	return cmd
}

func bindViper(commands ...*cobra.Command) {
	if len(commands) == 0 {
		return
	}
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("CFNCTL")
	v.AutomaticEnv()
	configFile := os.Getenv("CFNCTL_CONFIG")
	configureConfigFile(v, configFile)

	cobra.OnInitialize(func() {
		for _, cmd := range commands {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				cobra.CheckErr(err)
			}
			if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
				cobra.CheckErr(err)
			}
		}
		if err := readConfigFile(v, configFile != ""); err != nil {
			cobra.CheckErr(err)
		}
		for _, cmd := range commands {
			flagSets := []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()}
			for _, fs := range flagSets {
				fs.VisitAll(func(f *pflag.Flag) {
					if f.Changed {
						return
					}
					if !v.IsSet(f.Name) {
						return
					}
					val := fmt.Sprintf("%v", v.Get(f.Name))
					if val != "" {
						_ = f.Value.Set(val)
					}
				})
			}
		}
	})
}

func configureConfigFile(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName("cfnctl")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config"))
	}
	v.AddConfigPath(".")
}

func readConfigFile(v *viper.Viper, strict bool) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	if strict {
		return err
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return nil
	}
	return err
}

func handleError(err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	message := err.Error()
	var resErr *resolve.ResolutionError
	var remote *cfn.RemoteError
	switch {
	case errors.Is(err, context.Canceled):
		message = "interrupted"
	case errors.As(err, &resErr) && resErr.Reason == resolve.MissingTemplate:
		message = fmt.Sprintf("%s\nHint: pass an explicit template path when the file does not follow the naming convention.", err)
	case errors.As(err, &resErr) && resErr.Reason == resolve.Ambiguous:
		message = fmt.Sprintf("%s\nHint: supply the artifacts explicitly: cfnctl <command> <stack> <template> [params].", err)
	case errors.As(err, &remote) && remote.Kind == cfn.NotFound:
		message = fmt.Sprintf("%s\nHint: the stack is unknown in this region. Check 'cfnctl ls' and --region.", err)
	case errors.As(err, &remote) && remote.Kind == cfn.Throttled:
		message = fmt.Sprintf("%s\nHint: the CloudFormation API is throttling requests; wait a moment and rerun.", err)
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}
