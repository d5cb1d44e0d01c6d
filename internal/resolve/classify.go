// File: internal/resolve/classify.go
// Brief: Classification of a single ambiguous CLI token.

package resolve

import (
	"path/filepath"
	"strings"
)

// Kind tags what a lone positional argument refers to.
type Kind int

const (
	KindAmbiguous Kind = iota
	KindStack
	KindTemplate
	KindParams
)

func (k Kind) String() string {
	switch k {
	case KindStack:
		return "stack"
	case KindTemplate:
		return "template"
	case KindParams:
		return "params"
	default:
		return "ambiguous"
	}
}

// Classify decides whether a single token names a stack, a template file, or
// a parameters file. The rules are ordered: the params marker wins over the
// template extension, and a token without any dot is taken as a bare stack
// name. Anything else is ambiguous and must be spelled out explicitly.
func Classify(token string) Kind {
	base := filepath.Base(token)
	if strings.Contains(base, "-params-") || strings.Contains(base, "-params.") {
		return KindParams
	}
	if !strings.Contains(base, ".") {
		return KindStack
	}
	switch strings.TrimPrefix(filepath.Ext(base), ".") {
	case "json", "yaml", "yml":
		return KindTemplate
	}
	return KindAmbiguous
}
