// Package layer composites styled terminal strings on top of each other.
package layer

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const reset = "\x1b[m"

// Composite draws top over base cell by cell. Wherever top shows only a
// space, base shows through, so sparse content can sit on the backdrop.
func Composite(base, top string) string {
	var (
		baseLines = strings.Split(base, "\n")
		topLines  = strings.Split(top, "\n")
		n         = max(len(baseLines), len(topLines))
		result    = make([]string, n)
	)

	for i := range n {
		var bl, tl string
		if i < len(baseLines) {
			bl = baseLines[i]
		}
		if i < len(topLines) {
			tl = topLines[i]
		}
		result[i] = compositeLine(bl, tl)
	}

	return strings.Join(result, "\n")
}

func compositeLine(base, top string) string {
	runs := visibleRuns(top)
	if len(runs) == 0 {
		return base
	}

	baseWidth := ansi.StringWidth(base)

	var (
		b      strings.Builder
		cursor int
	)
	for _, r := range runs {
		b.WriteString(span(base, baseWidth, cursor, r.start))
		b.WriteString(reset)
		b.WriteString(ansi.Cut(top, r.start, r.end))
		b.WriteString(reset)
		cursor = r.end
	}
	if cursor < baseWidth {
		b.WriteString(ansi.Cut(base, cursor, baseWidth))
	}
	return b.String()
}

// Place draws top over base with its top-left cell at (x, y). Unlike
// Composite the whole of top is opaque.
func Place(base, top string, x, y int) string {
	x, y = max(x, 0), max(y, 0)

	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")
	for len(baseLines) < y+len(topLines) {
		baseLines = append(baseLines, "")
	}

	for i, tl := range topLines {
		bl := baseLines[y+i]
		bw := ansi.StringWidth(bl)
		end := x + ansi.StringWidth(tl)

		var b strings.Builder
		b.WriteString(span(bl, bw, 0, x))
		b.WriteString(reset)
		b.WriteString(tl)
		b.WriteString(reset)
		if end < bw {
			b.WriteString(ansi.Cut(bl, end, bw))
		}
		baseLines[y+i] = b.String()
	}

	return strings.Join(baseLines, "\n")
}

// Window returns height lines of s starting at offset, each padded or cut
// to width cells. Missing lines are blank.
func Window(s string, offset, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	out := make([]string, height)
	for i := range height {
		j := offset + i
		if j < 0 || j >= len(lines) {
			out[i] = strings.Repeat(" ", width)
			continue
		}
		out[i] = fit(lines[j], width)
	}
	return strings.Join(out, "\n")
}

// Height is the number of lines in s.
func Height(s string) int {
	return strings.Count(s, "\n") + 1
}

func fit(line string, width int) string {
	w := ansi.StringWidth(line)
	switch {
	case w == width:
		return line
	case w > width:
		return ansi.Truncate(line, width, "")
	default:
		return line + strings.Repeat(" ", width-w)
	}
}

// span is base's cells [from, to), padded with spaces where base is short.
func span(base string, baseWidth, from, to int) string {
	if to <= from {
		return ""
	}
	if from >= baseWidth {
		return strings.Repeat(" ", to-from)
	}
	if to <= baseWidth {
		return ansi.Cut(base, from, to)
	}
	return ansi.Cut(base, from, baseWidth) + strings.Repeat(" ", to-baseWidth)
}

type run struct {
	start int
	end   int
}

// visibleRuns finds the cell ranges of top that hold something other than
// spaces. A single space between words stays part of the run so the
// backdrop never shows through inside a phrase.
func visibleRuns(top string) []run {
	var (
		runs   []run
		col    int
		open   = -1
		spaces int
	)
	for _, r := range ansi.Strip(top) {
		w := ansi.StringWidth(string(r))
		if r == ' ' {
			if open >= 0 {
				spaces++
				if spaces > 1 {
					runs = append(runs, run{start: open, end: col - 1})
					open = -1
				}
			}
		} else {
			if open < 0 {
				open = col
			}
			spaces = 0
		}
		col += w
	}
	if open >= 0 {
		runs = append(runs, run{start: open, end: col - spaces})
	}
	return runs
}
