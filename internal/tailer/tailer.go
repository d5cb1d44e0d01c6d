// File: internal/tailer/tailer.go
// Brief: Polling event tailer with two-buffer snapshot diffing.

// Package tailer follows the live event stream of one stack. The service
// only answers full-history queries, so each cycle re-fetches everything,
// renders it to lines, and emits the ordered set difference against the
// previous snapshot. The loop ends when the stack itself reaches a terminal
// status or a fetch fails.
package tailer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/example/cfnctl/internal/cfn"
	"github.com/example/cfnctl/internal/snapdiff"
	"github.com/go-logr/logr"
)

// DefaultInterval is the fixed pause between polls. There is no backoff;
// tails are human-attended and responsiveness wins over politeness.
const DefaultInterval = time.Second

// EventsClient fetches the full ordered event history of a stack.
type EventsClient interface {
	Events(ctx context.Context, stack string) ([]cfn.StackEvent, error)
}

// Outcome reports how a tail ended. A FAILED terminal status is an outcome,
// not an error: the tail itself succeeded in observing it.
type Outcome struct {
	Status string
	Event  cfn.StackEvent
}

// Failed reports whether the operation the tail was watching did not
// converge. A rollback that completed still means the requested change
// failed.
func (o Outcome) Failed() bool {
	return strings.HasSuffix(o.Status, "_FAILED") ||
		o.Status == "ROLLBACK_COMPLETE" ||
		o.Status == "UPDATE_ROLLBACK_COMPLETE"
}

// Option configures optional Tailer behavior.
type Option func(*Tailer)

// WithOutput overrides the writer rendered event lines go to.
func WithOutput(w io.Writer) Option {
	return func(t *Tailer) {
		if w != nil {
			t.writer = w
		}
	}
}

// WithInterval overrides the poll interval.
func WithInterval(d time.Duration) Option {
	return func(t *Tailer) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithSleeper replaces the inter-poll sleep, letting tests run the loop
// without wall-clock delays.
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(t *Tailer) {
		if sleep != nil {
			t.sleep = sleep
		}
	}
}

// WithColorMode sets status colorization: auto, always, or never.
func WithColorMode(mode string) Option {
	return func(t *Tailer) { t.colorMode = mode }
}

// WithLogger attaches a logger for poll-cycle diagnostics.
func WithLogger(log logr.Logger) Option {
	return func(t *Tailer) { t.log = log.WithName("tailer") }
}

// Tailer drives one sequential poll loop for one stack. It owns its snapshot
// buffers exclusively; concurrent tails of different stacks each get their
// own Tailer.
type Tailer struct {
	client    EventsClient
	stack     string
	writer    io.Writer
	log       logr.Logger
	interval  time.Duration
	sleep     func(ctx context.Context, d time.Duration) error
	colorMode string

	previous []string
	fetched  bool
}

// New creates a Tailer for one stack.
func New(client EventsClient, stack string, opts ...Option) *Tailer {
	t := &Tailer{
		client:   client,
		stack:    stack,
		writer:   os.Stdout,
		log:      logr.Discard(),
		interval: DefaultInterval,
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Run polls until the stack reaches a terminal status, a fetch fails, or the
// context ends. Each cycle emits only the event lines not seen before.
func (t *Tailer) Run(ctx context.Context) (Outcome, error) {
	for {
		events, err := t.client.Events(ctx, t.stack)
		if err != nil {
			// A vanished stack (e.g. after a delete finishes) and a genuine
			// failure are the same stop-watching condition for the operator.
			return Outcome{}, fmt.Errorf("tail %s: %w", t.stack, err)
		}
		if len(events) == 0 {
			t.log.V(1).Info("no events yet", "stack", t.stack)
			if err := t.sleep(ctx, t.interval); err != nil {
				return Outcome{}, err
			}
			continue
		}

		lines := renderAll(events)
		body, finalLine := lines[:len(lines)-1], lines[len(lines)-1]
		finalEvent := events[len(events)-1]

		if !t.fetched {
			for i, line := range body {
				t.emit(line, events[i].Status)
			}
		} else {
			delta := snapdiff.Diff(t.previous, body)
			if len(delta) > 0 {
				statuses := statusIndex(events[:len(events)-1], body)
				for _, line := range delta {
					t.emit(line, statuses[line])
				}
			}
		}
		t.previous = body
		t.fetched = true

		if t.isTerminal(finalEvent) {
			t.emit(finalLine, finalEvent.Status)
			t.log.V(1).Info("tail finished", "stack", t.stack, "status", finalEvent.Status)
			return Outcome{Status: finalEvent.Status, Event: finalEvent}, nil
		}
		if err := t.sleep(ctx, t.interval); err != nil {
			return Outcome{}, err
		}
	}
}

// isTerminal matches the final line against the stack's own terminal
// transition. Either identifier field may carry the stack name.
func (t *Tailer) isTerminal(e cfn.StackEvent) bool {
	if e.LogicalID != t.stack && e.PhysicalID != t.stack {
		return false
	}
	return strings.HasSuffix(e.Status, "_COMPLETE") || strings.HasSuffix(e.Status, "_FAILED")
}

func (t *Tailer) emit(line, status string) {
	fmt.Fprintln(t.writer, colorizeStatus(line, status, t.colorMode))
}

// statusIndex maps rendered lines back to their event status so deltas can
// be colorized. Rendered lines embed the timestamp, so collisions only occur
// for fully identical events, which carry the same status anyway.
func statusIndex(events []cfn.StackEvent, lines []string) map[string]string {
	idx := make(map[string]string, len(lines))
	for i, line := range lines {
		idx[line] = events[i].Status
	}
	return idx
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
