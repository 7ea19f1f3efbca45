// Package render turns log events into line-oriented text, in a colorized
// ANSI form and a plain form derived from it by stripping color codes. The
// two forms never diverge in content because the plain form is only ever
// produced by stripping.
package render

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/quillog/quill/core"
)

// ansiPattern matches the color codes the level table can emit: ESC, an
// opening bracket, digits, and the SGR terminator.
var ansiPattern = regexp.MustCompile("\x1b\\[[0-9]+m")

// Colored renders the event into its ANSI-colored multi-line form.
func Colored(e *core.LogEvent) string {
	ts := Timestamp(e.Timestamp)
	color := e.Level.Color()

	var b strings.Builder
	b.WriteString(core.ColorReset)
	b.WriteByte('[')
	b.WriteString(ts)
	b.WriteString("] ")
	b.WriteString(color)
	b.WriteString(e.Level.Padded())
	b.WriteString(": ")
	b.WriteString(e.Section)
	b.WriteString(": ")
	b.WriteString(e.Body)
	b.WriteString(core.ColorReset)

	sep := separator(ts, e.Indentation)

	if desc := strings.TrimSpace(e.Description); desc != "" {
		b.WriteString(sep)
		b.WriteString("> ")
		b.WriteString(strings.ReplaceAll(desc, "\n", sep+"  "))
	}

	if e.Err != nil {
		if text := strings.TrimSpace(e.Err.Error()); text != "" {
			b.WriteString(sep)
			b.WriteString("- ")
			b.WriteString(colorBlock(text, color, sep))
		}
	}

	if text := core.RenderStack(e.Stack, core.KeepAllFrames); text != "" {
		b.WriteString(sep)
		b.WriteString("- ")
		b.WriteString(colorBlock(text, color, sep))
	}

	return b.String()
}

// Plain renders the event into its color-free form. It is defined as the
// colored form with every ANSI code stripped, never rendered separately.
func Plain(e *core.LogEvent) string {
	return Strip(Colored(e))
}

// Strip removes every ANSI color code from s.
func Strip(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// Timestamp formats t as "yyyy-MM-dd HH:mm:ss" followed by the offset of
// t's own zone as a sign and four digits, e.g. "+0200". A UTC timestamp
// reads "+0000".
func Timestamp(t time.Time) string {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("%s%s%02d%02d",
		t.Format("2006-01-02 15:04:05"), sign, offset/3600, offset%3600/60)
}

// separator is the continuation prefix for description, error, and stack
// lines: either aligned under the timestamp column or flush left.
func separator(ts string, indentation bool) string {
	if !indentation {
		return "\n|"
	}
	return "\n" + strings.Repeat(" ", len(ts)+3) + "|"
}

// colorBlock wraps each line of a multi-line block in the level color so
// color is not lost across the uncolored separator, re-indenting internal
// newlines under the block marker.
func colorBlock(text, color, sep string) string {
	return color + strings.ReplaceAll(text, "\n", core.ColorReset+sep+"  "+color) + core.ColorReset
}
