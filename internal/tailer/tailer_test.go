// File: internal/tailer/tailer_test.go
// Brief: Polling event tailer with two-buffer snapshot diffing.

package tailer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/example/cfnctl/internal/cfn"
)

type scriptedClient struct {
	snapshots [][]cfn.StackEvent
	err       error
	calls     int
}

func (s *scriptedClient) Events(_ context.Context, _ string) ([]cfn.StackEvent, error) {
	if s.calls >= len(s.snapshots) {
		if s.err != nil {
			return nil, s.err
		}
		return nil, errors.New("script exhausted")
	}
	snap := s.snapshots[s.calls]
	s.calls++
	return snap, nil
}

func instantSleep(context.Context, time.Duration) error { return nil }

func ev(logical, status string, offset int) cfn.StackEvent {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return cfn.StackEvent{
		Timestamp: base.Add(time.Duration(offset) * time.Second),
		LogicalID: logical,
		Type:      "AWS::CloudFormation::Stack",
		Status:    status,
	}
}

func emittedLines(buf *bytes.Buffer) []string {
	out := strings.TrimRight(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestTailEmitsOnlyNewLinesAndTerminates(t *testing.T) {
	a := ev("bucket", "CREATE_IN_PROGRESS", 0)
	b := ev("bucket", "CREATE_COMPLETE", 1)
	c := ev("mywebsite-test", "CREATE_COMPLETE", 2)
	client := &scriptedClient{snapshots: [][]cfn.StackEvent{
		{},
		{a},
		{a, b},
		{a, b, c},
	}}
	var buf bytes.Buffer
	tail := New(client, "mywebsite-test",
		WithOutput(&buf), WithSleeper(instantSleep), WithColorMode("never"))
	outcome, err := tail.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if outcome.Status != "CREATE_COMPLETE" {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
	if outcome.Failed() {
		t.Fatal("CREATE_COMPLETE must not be a failure")
	}
	lines := emittedLines(&buf)
	if len(lines) != 3 {
		t.Fatalf("expected 3 emitted lines, got %d: %v", len(lines), lines)
	}
	for i, want := range []string{"CREATE_IN_PROGRESS", "CREATE_COMPLETE", "mywebsite-test"} {
		if !strings.Contains(lines[i], want) {
			t.Fatalf("line %d = %q, expected it to contain %q", i, lines[i], want)
		}
	}
	if client.calls != 4 {
		t.Fatalf("expected 4 polls, got %d", client.calls)
	}
}

func TestTailDoesNotTerminateWhileInProgress(t *testing.T) {
	inProgress := []cfn.StackEvent{ev("web-prod", "UPDATE_IN_PROGRESS", 0)}
	client := &scriptedClient{snapshots: [][]cfn.StackEvent{
		inProgress,
		inProgress,
		inProgress,
		inProgress,
		{inProgress[0], ev("web-prod", "UPDATE_COMPLETE", 1)},
	}}
	var buf bytes.Buffer
	tail := New(client, "web-prod",
		WithOutput(&buf), WithSleeper(instantSleep), WithColorMode("never"))
	outcome, err := tail.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if client.calls != 5 {
		t.Fatalf("loop must keep polling past IN_PROGRESS events, got %d polls", client.calls)
	}
	if outcome.Status != "UPDATE_COMPLETE" {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
}

func TestTailSuppressesReorderedHistory(t *testing.T) {
	a := ev("db", "CREATE_IN_PROGRESS", 0)
	b := ev("cache", "CREATE_IN_PROGRESS", 0)
	done := ev("backend-prod", "CREATE_COMPLETE", 2)
	client := &scriptedClient{snapshots: [][]cfn.StackEvent{
		{a, b, ev("queue", "CREATE_IN_PROGRESS", 1)},
		{b, a, ev("queue", "CREATE_IN_PROGRESS", 1), done},
	}}
	var buf bytes.Buffer
	tail := New(client, "backend-prod",
		WithOutput(&buf), WithSleeper(instantSleep), WithColorMode("never"))
	if _, err := tail.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := emittedLines(&buf)
	// First body (a, b), then only the terminal line: the reshuffled second
	// body plus queue (already the previous final line's content) adds the
	// queue line once, nothing twice.
	joined := strings.Join(lines, "\n")
	if strings.Count(joined, "db") != 1 || strings.Count(joined, "cache") != 1 {
		t.Fatalf("reordered events were re-emitted:\n%s", joined)
	}
}

func TestTailFetchErrorStopsImmediately(t *testing.T) {
	client := &scriptedClient{err: errors.New("stack does not exist")}
	tail := New(client, "gone", WithSleeper(instantSleep), WithOutput(&bytes.Buffer{}))
	_, err := tail.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "gone") {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
	if client.calls != 0 {
		t.Fatalf("no retry is allowed on fetch failure")
	}
}

func TestTailMatchesPhysicalID(t *testing.T) {
	final := cfn.StackEvent{
		Timestamp:  time.Date(2024, 5, 1, 12, 0, 5, 0, time.UTC),
		LogicalID:  "RootStack",
		PhysicalID: "edge-prod",
		Type:       "AWS::CloudFormation::Stack",
		Status:     "DELETE_COMPLETE",
	}
	client := &scriptedClient{snapshots: [][]cfn.StackEvent{{final}}}
	var buf bytes.Buffer
	tail := New(client, "edge-prod",
		WithOutput(&buf), WithSleeper(instantSleep), WithColorMode("never"))
	outcome, err := tail.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if outcome.Status != "DELETE_COMPLETE" {
		t.Fatalf("physical id match must terminate the tail, got %+v", outcome)
	}
}

func TestTailHonorsCancellation(t *testing.T) {
	client := &scriptedClient{snapshots: [][]cfn.StackEvent{
		{ev("web", "CREATE_IN_PROGRESS", 0)},
	}}
	ctx, cancel := context.WithCancel(context.Background())
	tail := New(client, "web-prod", WithOutput(&bytes.Buffer{}),
		WithSleeper(func(ctx context.Context, _ time.Duration) error {
			cancel()
			return ctx.Err()
		}))
	_, err := tail.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOutcomeFailureClasses(t *testing.T) {
	cases := []struct {
		status string
		failed bool
	}{
		{"CREATE_COMPLETE", false},
		{"UPDATE_COMPLETE", false},
		{"DELETE_COMPLETE", false},
		{"CREATE_FAILED", true},
		{"DELETE_FAILED", true},
		{"ROLLBACK_COMPLETE", true},
		{"UPDATE_ROLLBACK_COMPLETE", true},
	}
	for _, tc := range cases {
		if got := (Outcome{Status: tc.status}).Failed(); got != tc.failed {
			t.Errorf("Failed(%s) = %v, want %v", tc.status, got, tc.failed)
		}
	}
}

func TestRenderEventIncludesReason(t *testing.T) {
	line := renderEvent(cfn.StackEvent{
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		LogicalID: "bucket",
		Type:      "AWS::S3::Bucket",
		Status:    "CREATE_FAILED",
		Reason:    "Access Denied",
	})
	for _, want := range []string{"2024-05-01T12:00:00Z", "bucket", "AWS::S3::Bucket", "CREATE_FAILED", "Access Denied"} {
		if !strings.Contains(line, want) {
			t.Fatalf("rendered line %q missing %q", line, want)
		}
	}
}
