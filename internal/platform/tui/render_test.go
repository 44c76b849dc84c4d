package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorRed)
	s.DrawTextColored(0, 1, "▲", core.ColorGreen)

	out := RenderScreen(s)
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "abcd  " {
		t.Errorf("line 0 = %q, expected %q", lines[0], "abcd  ")
	}
	if lines[1] != "▲     " {
		t.Errorf("line 1 = %q, expected %q", lines[1], "▲     ")
	}
}

func TestRenderScreenUnknownColor(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, 'x', core.Color(200))

	if got := ansi.Strip(RenderScreen(s)); got != "x  " {
		t.Errorf("RenderScreen() = %q, expected %q", got, "x  ")
	}
}
