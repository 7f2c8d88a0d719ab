package tui

import (
	"strings"
	"testing"
)

func TestBuildDiffRunesMarksMistakes(t *testing.T) {
	runes := buildDiffRunes([]rune("ont"), []rune("Ox"))
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("o") {
		t.Fatalf("expected case-insensitive match for first rune")
	}
	if runes[1].s != incorrectStyle.Render("n") {
		t.Fatalf("expected incorrect style for second rune")
	}
	if runes[2].s != pendingStyle.Render("t") {
		t.Fatalf("expected pending style for missing rune")
	}
}

func TestBuildDiffRunesAccents(t *testing.T) {
	runes := buildDiffRunes([]rune("été"), []rune("ete"))
	if runes[0].s != incorrectStyle.Render("é") {
		t.Fatalf("expected missing accent to be incorrect")
	}
	if runes[1].s != correctStyle.Render("t") {
		t.Fatalf("expected correct style for matching rune")
	}
}

func TestBuildDiffRunesWrongSpaceDot(t *testing.T) {
	runes := buildDiffRunes([]rune("a b"), []rune("axb"))
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[1].s != incorrectStyle.Render("•") {
		t.Fatalf("expected red dot for wrong space")
	}
	if !runes[1].isSpace {
		t.Fatalf("expected dot to keep wrap point")
	}
}

func TestBuildPromptRunesHighlightsQuotes(t *testing.T) {
	runes := buildPromptRunes("a 'bc' d")
	if runes[3].s != highlightStyle.Render("b") {
		t.Fatalf("expected highlight inside quotes")
	}
	if runes[7].s != promptStyle.Render("d") {
		t.Fatalf("expected prompt style outside quotes")
	}
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	runes := buildPromptRunes("Conjuguez 'parler' au indicatif")
	out := wrapStyledRunes(runes, 20)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	for _, line := range lines {
		if w := lineWidthOf(runesOfLine(line)); w > 20 {
			t.Fatalf("line too wide (%d): %q", w, line)
		}
	}
}

func TestWrapStyledRunesHardBreak(t *testing.T) {
	runes := buildPromptRunes("abcdefgh")
	out := wrapStyledRunes(runes, 3)
	if strings.Count(out, "\n") != 2 {
		t.Fatalf("expected two hard breaks, got %q", out)
	}
}

func runesOfLine(line string) []styledRune {
	return buildPromptRunes(stripANSI(line))
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
