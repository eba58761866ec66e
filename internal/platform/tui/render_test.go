package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/arcade-sim/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColor(3, 0, '*', core.ColorRed)
	s.SetColor(4, 0, '*', core.ColorRed)
	s.SetColor(0, 1, 'o', core.ColorGray)

	got := RenderScreen(s)
	want := "ab ** \no     "
	if got != want {
		t.Errorf("RenderScreen() = %q, expected %q", got, want)
	}
}

func TestRenderScreenEveryColorStyled(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorBrightYellow; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}

func TestRenderOverlay(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := renderOverlay(40, 9, "GAME OVER", "score 3")
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("overlay has %d lines, expected 9", len(lines))
	}
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "score 3") {
		t.Errorf("overlay missing text:\n%s", out)
	}
}
