// Package render has width-aware text helpers for row templates.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Clean drops control characters and invalid UTF-8 from user-entered names,
// and turns non-breaking spaces into plain ones.
func Clean(s string) string {
	if isClean(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == utf8.RuneError && size <= 1:
		case r == '\u00a0', r == '\t':
			b.WriteByte(' ')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isClean(s string) bool {
	for i := range len(s) {
		c := s[i]
		if c < 0x20 || c == 0x7f || c >= 0x80 {
			return utf8.ValidString(s) && !strings.ContainsFunc(s, dirty)
		}
	}
	return true
}

func dirty(r rune) bool {
	return r == '\u00a0' || unicode.IsControl(r)
}

// Truncate cleans s and shortens it to width columns, ending with an
// ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(Clean(s), width, Ellipsis)
}

// Fit truncates s and pads it with spaces to exactly width columns.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(Truncate(s, width), width)
}

// Row places styled left and right parts on one line of width columns with
// at least one space between them. The left part is cut first when they
// do not fit; styling is kept.
func Row(left, right string, width int) string {
	lw := lipgloss.Width(left)
	rw := lipgloss.Width(right)
	if lw+rw+1 > width {
		room := width - rw - 1
		if room <= 0 {
			return right
		}
		left = ansi.Truncate(left, room, Ellipsis)
		lw = lipgloss.Width(left)
	}
	return left + strings.Repeat(" ", max(width-lw-rw, 1)) + right
}

// Separator is a horizontal rule of width columns.
func Separator(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("─", width)
}
