// File: internal/console/table_test.go
// Brief: Column-aligned plain-text tables for listing commands.

package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableAlignsColumns(t *testing.T) {
	table := NewTable("NAME", "STATUS")
	table.AddRow("web-prod", "CREATE_COMPLETE")
	table.AddRow("db", "UPDATE_IN_PROGRESS")
	var buf bytes.Buffer
	table.Render(&buf)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(lines))
	}
	statusCol := strings.Index(lines[1], "CREATE_COMPLETE")
	if statusCol == -1 || strings.Index(lines[2], "UPDATE_IN_PROGRESS") != statusCol {
		t.Fatalf("status column misaligned:\n%s", buf.String())
	}
	if strings.HasSuffix(lines[2], " ") {
		t.Fatalf("trailing spaces in %q", lines[2])
	}
}

func TestTableEmpty(t *testing.T) {
	table := NewTable("NAME")
	if !table.Empty() {
		t.Fatal("new table must be empty")
	}
	table.AddRow("x")
	if table.Empty() {
		t.Fatal("table with a row must not be empty")
	}
}
