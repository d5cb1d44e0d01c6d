// File: internal/config/options_test.go
// Brief: Shared CLI options and flag binding.

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestBindFlagsAndValidate(t *testing.T) {
	opts := NewOptions()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	opts.BindFlags(fs)
	if err := fs.Parse([]string{"--region=eu-west-1", "--color=never", "--poll-interval=250ms"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.Region != "eu-west-1" || opts.ColorMode != "never" || opts.PollInterval != 250*time.Millisecond {
		t.Fatalf("flags not bound: %+v", opts)
	}
	if err := opts.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	opts := NewOptions()
	opts.ColorMode = "rainbow"
	if err := opts.Validate(); err == nil {
		t.Fatal("expected invalid color mode to fail")
	}
	opts = NewOptions()
	opts.PollInterval = 0
	if err := opts.Validate(); err == nil {
		t.Fatal("expected zero poll interval to fail")
	}
}
