// File: internal/snapdiff/diff.go
// Brief: Ordered set difference between event snapshots.

// Package snapdiff computes the ordered set difference between two snapshots
// of rendered lines. The stack event tailer uses it to emit only lines that
// appeared since the previous poll, and the live-comparison path applies the
// same contract to canonicalized template and parameter blocks.
package snapdiff

// Diff returns the elements of current that do not appear anywhere in
// previous, preserving current's relative order. An element is yielded at
// most once even when current repeats it.
func Diff(previous, current []string) []string {
	if len(current) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(previous))
	for _, line := range previous {
		seen[line] = struct{}{}
	}
	var out []string
	for _, line := range current {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return out
}
