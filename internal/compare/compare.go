// File: internal/compare/compare.go
// Brief: Canonicalized comparison of local artifacts against live stack state.

// Package compare canonicalizes a local template or parameter set and the
// corresponding live remote state into stable line blocks, then applies the
// same ordered set-difference contract the event tailer uses. Formatting
// noise (YAML vs JSON, key order, indentation) disappears in
// canonicalization, so any surviving difference is a real one.
package compare

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/example/cfnctl/internal/cfn"
	"github.com/example/cfnctl/internal/snapdiff"
	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"
)

// TemplateDiff is the outcome of comparing a local template document with
// the one the service holds.
type TemplateDiff struct {
	InSync     bool
	OnlyLocal  []string
	OnlyRemote []string
	Unified    string
}

// ParameterDiff is the outcome of comparing local parameter overrides with
// the live stack's effective parameters.
type ParameterDiff struct {
	InSync     bool
	OnlyLocal  []string
	OnlyRemote []string
}

// Templates canonicalizes both documents and reports their differences. The
// unified rendering reads remote as the old side and local as the new one,
// matching what an update would change.
func Templates(local, remote []byte) (TemplateDiff, error) {
	localLines, err := CanonicalTemplate(local)
	if err != nil {
		return TemplateDiff{}, fmt.Errorf("local template: %w", err)
	}
	remoteLines, err := CanonicalTemplate(remote)
	if err != nil {
		return TemplateDiff{}, fmt.Errorf("live template: %w", err)
	}
	diff := TemplateDiff{
		OnlyLocal:  snapdiff.Diff(remoteLines, localLines),
		OnlyRemote: snapdiff.Diff(localLines, remoteLines),
	}
	diff.InSync = len(diff.OnlyLocal) == 0 && len(diff.OnlyRemote) == 0
	if diff.InSync {
		return diff, nil
	}
	unified, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        withNewlines(remoteLines),
		B:        withNewlines(localLines),
		FromFile: "live",
		ToFile:   "local",
		Context:  3,
	})
	if err != nil {
		return TemplateDiff{}, fmt.Errorf("render diff: %w", err)
	}
	diff.Unified = unified
	return diff, nil
}

// Parameters compares local overrides against the stack's effective
// parameters, both canonicalized to sorted key=value lines.
func Parameters(local []cfn.Parameter, remote map[string]string) ParameterDiff {
	localLines := make([]string, 0, len(local))
	for _, p := range local {
		localLines = append(localLines, p.Key+" = "+p.Value)
	}
	sort.Strings(localLines)
	remoteLines := make([]string, 0, len(remote))
	for k, v := range remote {
		remoteLines = append(remoteLines, k+" = "+v)
	}
	sort.Strings(remoteLines)
	diff := ParameterDiff{
		OnlyLocal:  snapdiff.Diff(remoteLines, localLines),
		OnlyRemote: snapdiff.Diff(localLines, remoteLines),
	}
	diff.InSync = len(diff.OnlyLocal) == 0 && len(diff.OnlyRemote) == 0
	return diff
}

// CanonicalTemplate parses a template (JSON or YAML; JSON is a YAML subset)
// and re-renders it as indented JSON with sorted keys, split into lines.
func CanonicalTemplate(raw []byte) ([]string, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	doc = normalize(doc)
	pretty, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("canonicalize document: %w", err)
	}
	return strings.Split(string(pretty), "\n"), nil
}

// normalize rewrites yaml.v3's occasional map[any]any mappings into JSON-
// marshalable map[string]any, recursively.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = normalize(inner)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[fmt.Sprintf("%v", k)] = normalize(inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = normalize(inner)
		}
		return out
	default:
		return v
	}
}

func withNewlines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + "\n"
	}
	return out
}
