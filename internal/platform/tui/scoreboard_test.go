package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui/mocks"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var boardRuns = []storage.ScoreEntry{
	{Player: "bob", Score: 900, Level: 2, CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
	{Player: "alice", Score: 450, Level: 3, CreatedAt: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)},
}

func updateBoard(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected ScoreboardModel", next)
	}
	return nm
}

func TestScoreboardSingleGame(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockScoreStore(ctrl)
	store.EXPECT().TopScores("invaders", scoreboardLimit).Return(boardRuns, nil).Times(1)

	games := []registry.GameInfo{{ID: "invaders", Title: "Invaders"}}
	m := newScoreboard(games, store, 70, 30)

	// Switching keys are inert, so no further loads happen
	m = updateBoard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = updateBoard(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.current != 0 {
		t.Errorf("current = %d, expected 0", m.current)
	}

	view := ansi.Strip(m.View())
	if strings.Contains(view, "next game") {
		t.Error("help should not offer game switching for a single game")
	}
	if !strings.Contains(view, "HIGH SCORES - Invaders") {
		t.Errorf("view missing title:\n%s", view)
	}
	if !strings.Contains(view, "Runs: 2  Best: 900 (bob)  Top level: 3") {
		t.Errorf("view missing summary line:\n%s", view)
	}
	if !strings.Contains(view, "alice") {
		t.Errorf("view missing runs:\n%s", view)
	}
}

func TestScoreboardCyclesGames(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockScoreStore(ctrl)
	gomock.InOrder(
		store.EXPECT().TopScores("a", scoreboardLimit).Return(nil, nil),
		store.EXPECT().TopScores("b", scoreboardLimit).Return(boardRuns, nil),
		store.EXPECT().TopScores("a", scoreboardLimit).Return(nil, nil),
		store.EXPECT().TopScores("b", scoreboardLimit).Return(boardRuns, nil),
	)

	games := []registry.GameInfo{{ID: "a", Title: "Alpha"}, {ID: "b", Title: "Beta"}}
	m := newScoreboard(games, store, 70, 30)

	m = updateBoard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.current != 1 || m.summary.Runs != 2 {
		t.Fatalf("after tab: current = %d, runs = %d; expected 1, 2", m.current, m.summary.Runs)
	}
	m = updateBoard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.current != 0 {
		t.Errorf("tab should wrap to the first game, current = %d", m.current)
	}
	m = updateBoard(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.current != 1 {
		t.Errorf("shift+tab should wrap to the last game, current = %d", m.current)
	}

	if view := ansi.Strip(m.View()); !strings.Contains(view, "Alpha") || !strings.Contains(view, "next game") {
		t.Errorf("view should list games and offer switching:\n%s", view)
	}
}

func TestScoreboardWidePanel(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockScoreStore(ctrl)
	store.EXPECT().TopScores("invaders", scoreboardLimit).Return(boardRuns, nil)

	m := newScoreboard([]registry.GameInfo{{ID: "invaders", Title: "Invaders"}}, store, 120, 40)

	view := ansi.Strip(m.View())
	for _, want := range []string{"Summary", "Leader", "bob", "Top level 3"} {
		if !strings.Contains(view, want) {
			t.Errorf("wide view missing %q:\n%s", want, view)
		}
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	games := []registry.GameInfo{{ID: "invaders", Title: "Invaders"}}

	m := updateBoard(t, newScoreboard(games, nil, 70, 30), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back")
	}
	if m.View() != "" {
		t.Error("View() should be empty after leaving")
	}

	m = updateBoard(t, newScoreboard(games, nil, 70, 30), runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		scores   []storage.ScoreEntry
		expected boardSummary
	}{
		{"empty", nil, boardSummary{}},
		{"ordered", boardRuns, boardSummary{Runs: 2, Best: 900, Leader: "bob", TopLevel: 3}},
		{
			"unordered",
			[]storage.ScoreEntry{{Player: "x", Score: 10, Level: 1}, {Player: "y", Score: 30, Level: 1}},
			boardSummary{Runs: 2, Best: 30, Leader: "y", TopLevel: 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := summarize(tc.scores); got != tc.expected {
				t.Errorf("summarize() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestScoreRowsBlankPlayer(t *testing.T) {
	rows := scoreRows([]storage.ScoreEntry{{Score: 5, Level: 1}})
	if rows[0][0] != "#1" || rows[0][1] != "-" || rows[0][2] != "5" {
		t.Errorf("row = %v, expected rank, placeholder player and score", rows[0])
	}
}
