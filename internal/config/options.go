// File: internal/config/options.go
// Brief: Shared CLI options and flag binding.

// Package config carries the options shared by every cfnctl command.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Options holds the global knobs. Per-command flags (capabilities, role ARN)
// live next to their commands.
type Options struct {
	Region       string
	ColorMode    string
	LogLevel     string
	PollInterval time.Duration
}

// NewOptions returns Options with defaults.
func NewOptions() *Options {
	return &Options{
		ColorMode:    "auto",
		LogLevel:     "info",
		PollInterval: time.Second,
	}
}

// BindFlags registers the global flags on the given set.
func (o *Options) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Region, "region", o.Region, "AWS region override (defaults to the SDK resolution chain)")
	fs.StringVar(&o.ColorMode, "color", o.ColorMode, "Colorize output: auto, always, or never")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level for cfnctl diagnostics (debug, info, warn, error)")
	fs.DurationVar(&o.PollInterval, "poll-interval", o.PollInterval, "Pause between event polls while tailing")
}

// Validate rejects option values no command could honor.
func (o *Options) Validate() error {
	switch o.ColorMode {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid --color %q (expected auto, always, or never)", o.ColorMode)
	}
	if o.PollInterval <= 0 {
		return fmt.Errorf("--poll-interval must be positive")
	}
	return nil
}
