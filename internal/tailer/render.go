// File: internal/tailer/render.go
// Brief: Fixed-width rendering and colorization of stack event lines.

package tailer

import (
	"strings"
	"time"

	"github.com/example/cfnctl/internal/cfn"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

const (
	logicalIDWidth = 28
	typeWidth      = 32
	statusWidth    = 22
)

var (
	completeColor   = color.New(color.FgGreen)
	failedColor     = color.New(color.FgRed)
	inProgressColor = color.New(color.FgYellow)
)

// renderEvent produces one plain snapshot line. Lines are kept free of ANSI
// sequences so snapshot diffing compares content, not coloring; color is
// applied at emit time.
func renderEvent(e cfn.StackEvent) string {
	var b strings.Builder
	b.WriteString(e.Timestamp.UTC().Format(time.RFC3339))
	b.WriteString("  ")
	b.WriteString(pad(e.LogicalID, logicalIDWidth))
	b.WriteString("  ")
	b.WriteString(pad(e.Type, typeWidth))
	b.WriteString("  ")
	if e.Reason == "" {
		b.WriteString(e.Status)
	} else {
		b.WriteString(pad(e.Status, statusWidth))
		b.WriteString("  ")
		b.WriteString(e.Reason)
	}
	return strings.TrimRight(b.String(), " ")
}

func renderAll(events []cfn.StackEvent) []string {
	lines := make([]string, len(events))
	for i, e := range events {
		lines[i] = renderEvent(e)
	}
	return lines
}

func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// colorizeStatus paints the status token of a rendered line by its class.
func colorizeStatus(line, status, mode string) string {
	if status == "" || colorsDisabled(mode) {
		return line
	}
	col := statusColor(status)
	if col == nil {
		return line
	}
	idx := strings.Index(line, status)
	if idx == -1 {
		return line
	}
	return line[:idx] + col.Sprint(status) + line[idx+len(status):]
}

func statusColor(status string) *color.Color {
	switch {
	case strings.HasSuffix(status, "_FAILED") || strings.Contains(status, "ROLLBACK"):
		return failedColor
	case strings.HasSuffix(status, "_COMPLETE"):
		return completeColor
	case strings.HasSuffix(status, "_IN_PROGRESS"):
		return inProgressColor
	default:
		return nil
	}
}

func colorsDisabled(mode string) bool {
	switch mode {
	case "always":
		return false
	case "never":
		return true
	default:
		return color.NoColor
	}
}
