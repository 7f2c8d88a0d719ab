package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

func newStyledRune(r rune, style lipgloss.Style) styledRune {
	return styledRune{
		s:       style.Render(string(r)),
		width:   runewidth.RuneWidth(r),
		isSpace: r == ' ',
	}
}

// buildDiffRunes styles the expected answer against what was typed: matching
// runes (ignoring case) are correct, mismatches incorrect, and runes past the
// end of the input pending. A missed space shows as a dot.
func buildDiffRunes(expected, given []rune) []styledRune {
	out := make([]styledRune, 0, len(expected))
	for i, target := range expected {
		displayed := target
		style := pendingStyle
		if i < len(given) {
			switch {
			case target == ' ' && given[i] != ' ':
				displayed = '•'
				style = incorrectStyle
			case unicode.ToLower(given[i]) == unicode.ToLower(target):
				style = correctStyle
			default:
				style = incorrectStyle
			}
		}
		item := newStyledRune(displayed, style)
		item.isSpace = target == ' '
		out = append(out, item)
	}
	return out
}

// buildPromptRunes highlights the quoted parts of a prompt.
func buildPromptRunes(prompt string) []styledRune {
	out := make([]styledRune, 0, len(prompt))
	quoted := false
	for _, r := range prompt {
		if r == '\'' {
			quoted = !quoted
			out = append(out, newStyledRune(r, promptStyle))
			continue
		}
		style := promptStyle
		if quoted {
			style = highlightStyle
		}
		out = append(out, newStyledRune(r, style))
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
