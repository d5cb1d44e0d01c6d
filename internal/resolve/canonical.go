// File: internal/resolve/canonical.go
// Brief: Pure string canonicalization for convention-named artifacts.

// Package resolve derives the {stack, template, params} artifact triple from
// any one of its members. Stacks follow the `token-env` convention, templates
// are `token.{json,yml,yaml}` files and parameter files are
// `token-params-env.json`, so any member of the triple can usually be
// recovered from another by stripping suffixes and probing the filesystem.
package resolve

import (
	"path/filepath"
	"strings"
)

const paramsMarker = "-params"

// Slug strips the directory and extension from an artifact path, leaving the
// convention stem. Slug("infra/mywebsite.yml") == "mywebsite".
func Slug(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParamsSlug returns the template stem a params file refers to: everything
// before the -params marker. ParamsSlug("mywebsite-params-test.json") ==
// "mywebsite". A path without the marker degrades to Slug.
func ParamsSlug(path string) string {
	base := filepath.Base(path)
	if idx := strings.Index(base, paramsMarker); idx >= 0 {
		return base[:idx]
	}
	return Slug(path)
}

// StackForParams derives the stack name a params file serves by dropping the
// .json extension and splicing out the -params token, so that
// "mywebsite-params-test.json" yields "mywebsite-test" and
// "vpc-params.json" yields "vpc".
func StackForParams(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), ".json")
	if idx := strings.LastIndex(name, paramsMarker); idx >= 0 {
		name = name[:idx] + name[idx+len(paramsMarker):]
	}
	return name
}
