// File: internal/resolve/resolve.go
// Brief: Convention-based derivation of the stack/template/params triple.

package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Statter answers filesystem existence probes. The production implementation
// wraps os.Stat; tests inject a map-backed fake.
type Statter interface {
	FileExists(path string) bool
}

type osStatter struct{}

func (osStatter) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Reason identifies which artifact a resolution failed on.
type Reason int

const (
	MissingStack Reason = iota
	MissingTemplate
	MissingParams
	Ambiguous
)

// ResolutionError reports a deterministic resolution failure. It carries the
// offending token so the operator can correct the invocation; it is never
// retried.
type ResolutionError struct {
	Reason Reason
	Token  string
}

func (e *ResolutionError) Error() string {
	switch e.Reason {
	case MissingStack:
		if e.Token == "" {
			return "cannot determine a stack name"
		}
		return fmt.Sprintf("cannot determine a stack name from %q", e.Token)
	case MissingTemplate:
		return fmt.Sprintf("no template found for %q (tried .json, .yml and .yaml at each dash truncation in . and params/)", e.Token)
	case MissingParams:
		return fmt.Sprintf("parameters file %q does not exist", e.Token)
	default:
		return fmt.Sprintf("cannot classify %q as a stack name, template file, or params file", e.Token)
	}
}

// Partial holds the artifacts the caller already knows. Empty fields are
// derived during Resolve.
type Partial struct {
	Stack    string
	Template string
	Params   string
}

// Triple is a fully resolved set of artifacts. Stack is always non-empty.
// Template is non-empty and exists on disk whenever the operation that asked
// for resolution mutates the stack. Params may be empty, meaning no
// parameter overrides.
type Triple struct {
	Stack    string
	Template string
	Params   string
}

// Resolver fills in unknown members of an artifact triple by probing the
// working directory and its params/ sibling.
type Resolver struct {
	fs  Statter
	dir string
}

// New returns a Resolver rooted at dir. A nil statter means the real
// filesystem.
func New(dir string, fs Statter) *Resolver {
	if fs == nil {
		fs = osStatter{}
	}
	if dir == "" {
		dir = "."
	}
	return &Resolver{fs: fs, dir: dir}
}

var templateExts = [...]string{"json", "yml", "yaml"}

// Resolve derives the missing members of known. needTemplate marks the
// resolution as serving a mutating operation, for which a template is
// mandatory. The three checks are evaluated in a fixed order: stack, then
// template, then params.
func (r *Resolver) Resolve(known Partial, needTemplate bool) (Triple, error) {
	t := Triple{
		Stack:    strings.TrimSpace(known.Stack),
		Template: strings.TrimSpace(known.Template),
		Params:   strings.TrimSpace(known.Params),
	}
	explicitTemplate := t.Template != ""
	explicitParams := t.Params != ""

	if t.Stack == "" && t.Params != "" {
		t.Stack = StackForParams(t.Params)
	}
	if t.Stack == "" && t.Template != "" {
		t.Stack = Slug(t.Template)
	}
	if t.Template == "" && t.Stack != "" {
		t.Template = r.findTemplateForStack(t.Stack)
	}
	if t.Template == "" && t.Params != "" {
		t.Template = r.findTemplateNamed(ParamsSlug(t.Params))
	}
	if t.Params == "" && t.Template != "" {
		t.Params = r.findParams(t.Stack, t.Template)
	}

	if t.Stack == "" {
		return Triple{}, &ResolutionError{Reason: MissingStack, Token: firstKnown(known)}
	}
	if needTemplate {
		if t.Template == "" {
			return Triple{}, &ResolutionError{Reason: MissingTemplate, Token: t.Stack}
		}
		if explicitTemplate && !r.fs.FileExists(t.Template) {
			return Triple{}, &ResolutionError{Reason: MissingTemplate, Token: t.Template}
		}
	}
	if explicitParams && !r.fs.FileExists(t.Params) {
		return Triple{}, &ResolutionError{Reason: MissingParams, Token: t.Params}
	}
	return t, nil
}

// searchDirs returns the probe roots in documented order: the working
// directory first, then its params/ subdirectory. When the working directory
// itself is named params, the parent takes the sibling slot instead.
func (r *Resolver) searchDirs() []string {
	abs, err := filepath.Abs(r.dir)
	if err != nil {
		abs = r.dir
	}
	if filepath.Base(abs) == "params" {
		return []string{r.dir, filepath.Join(r.dir, "..")}
	}
	return []string{r.dir, filepath.Join(r.dir, "params")}
}

// findTemplateForStack probes for <candidate>.<ext> starting from the full
// stack name and stripping one trailing -segment per round. The first hit in
// search order wins; with k dash-separated segments this runs at most k
// rounds.
func (r *Resolver) findTemplateForStack(stack string) string {
	candidate := stack
	for {
		if found := r.findTemplateNamed(candidate); found != "" {
			return found
		}
		idx := strings.LastIndex(candidate, "-")
		if idx <= 0 {
			return ""
		}
		candidate = candidate[:idx]
	}
}

func (r *Resolver) findTemplateNamed(slug string) string {
	if slug == "" {
		return ""
	}
	for _, dir := range r.searchDirs() {
		for _, ext := range templateExts {
			path := filepath.Join(dir, slug+"."+ext)
			if r.fs.FileExists(path) {
				return path
			}
		}
	}
	return ""
}

// findParams derives the conventional params filename from the template slug
// and the stack's env suffix, then probes the search roots. Absence is not an
// error; an empty return means no parameter overrides.
func (r *Resolver) findParams(stack, template string) string {
	slug := Slug(template)
	var suffix string
	switch {
	case stack == "" || stack == slug:
		suffix = ""
	case strings.HasPrefix(stack, slug+"-"):
		suffix = strings.TrimPrefix(stack, slug+"-")
	default:
		suffix = stack
	}
	name := slug + paramsMarker + ".json"
	if suffix != "" {
		name = slug + paramsMarker + "-" + suffix + ".json"
	}
	for _, dir := range r.searchDirs() {
		path := filepath.Join(dir, name)
		if r.fs.FileExists(path) {
			return path
		}
	}
	return ""
}

func firstKnown(p Partial) string {
	switch {
	case p.Stack != "":
		return p.Stack
	case p.Template != "":
		return p.Template
	default:
		return p.Params
	}
}
