// File: cmd/cfnctl/resolve.go
// Brief: Positional-argument handling shared by the stack commands.

package main

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/example/cfnctl/internal/cfn"
	"github.com/example/cfnctl/internal/config"
	"github.com/example/cfnctl/internal/logging"
	"github.com/example/cfnctl/internal/resolve"
	"github.com/example/cfnctl/internal/tailer"
	"github.com/example/cfnctl/internal/version"
	"github.com/go-logr/logr"
)

// resolveTriple turns positional arguments into a full artifact triple. A
// single token is classified first; two or three tokens are taken as the
// explicit ordered triple, skipping classification.
func resolveTriple(args []string, needTemplate bool) (resolve.Triple, error) {
	r := resolve.New(".", nil)
	if len(args) == 1 {
		known, err := classifyToken(args[0])
		if err != nil {
			return resolve.Triple{}, err
		}
		return r.Resolve(known, needTemplate)
	}
	known := resolve.Partial{Stack: args[0], Template: args[1]}
	if len(args) > 2 {
		known.Params = args[2]
	}
	return r.Resolve(known, needTemplate)
}

func classifyToken(token string) (resolve.Partial, error) {
	switch resolve.Classify(token) {
	case resolve.KindStack:
		return resolve.Partial{Stack: token}, nil
	case resolve.KindTemplate:
		return resolve.Partial{Template: token}, nil
	case resolve.KindParams:
		return resolve.Partial{Params: token}, nil
	default:
		return resolve.Partial{}, &resolve.ResolutionError{Reason: resolve.Ambiguous, Token: token}
	}
}

// newStackClient resolves AWS configuration and wraps the CloudFormation
// service. Credential and region resolution follow the SDK chain; --region
// only overrides the result.
func newStackClient(ctx context.Context, opts *config.Options) (*cfn.Client, logr.Logger, error) {
	log, err := logging.New(opts.LogLevel)
	if err != nil {
		return nil, logr.Logger{}, err
	}
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithAppID(version.AppID()),
	}
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, logr.Logger{}, fmt.Errorf("load AWS configuration: %w", err)
	}
	return cfn.NewFromConfig(cfg, log), log, nil
}

// tailToTerminal watches one stack until it settles. A terminal status that
// means the operation did not converge comes back as an error so the process
// exits non-zero.
func tailToTerminal(ctx context.Context, client *cfn.Client, log logr.Logger, opts *config.Options, stack string) error {
	tail := tailer.New(client, stack,
		tailer.WithInterval(opts.PollInterval),
		tailer.WithColorMode(opts.ColorMode),
		tailer.WithLogger(log),
	)
	outcome, err := tail.Run(ctx)
	if err != nil {
		return err
	}
	if outcome.Failed() {
		return fmt.Errorf("stack %s finished %s", stack, outcome.Status)
	}
	return nil
}
