package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Scoreboard layout constants
const (
	scoreboardLimit = 100 // Runs loaded per game
	panelWidth      = 24  // Width of the summary panel in the wide layout
	wideLayoutMin   = 84  // Terminal width needed for the side panel
	playerColMin    = 10
	playerColMax    = 20
)

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	boardBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
// Game switching is disabled when only one game is registered.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// boardSummary condenses the loaded runs of one game.
type boardSummary struct {
	Runs     int
	Best     int
	Leader   string
	TopLevel int
}

func summarize(scores []storage.ScoreEntry) boardSummary {
	var s boardSummary
	for _, e := range scores {
		s.Runs++
		if s.Runs == 1 || e.Score > s.Best {
			s.Best = e.Score
			s.Leader = e.Player
		}
		s.TopLevel = max(s.TopLevel, e.Level)
	}
	return s
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	games     []registry.GameInfo
	current   int
	store     ScoreStore // may be nil
	scores    []storage.ScoreEntry
	summary   boardSummary
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // Back pressed, as opposed to quit
}

// NewScoreboardModel creates a scoreboard over every registered game.
func NewScoreboardModel(store ScoreStore, width, height int) ScoreboardModel {
	return newScoreboard(registry.List(), store, width, height)
}

func newScoreboard(games []registry.GameInfo, store ScoreStore, width, height int) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	keys.NextGame.SetEnabled(len(games) > 1)
	keys.PrevGame.SetEnabled(len(games) > 1)

	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		games:  games,
		store:  store,
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= wideLayoutMin
}

func (m ScoreboardModel) gameTitle() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.current].Title
}

// newTable sizes the run table to the terminal, giving spare width to the player column.
func (m ScoreboardModel) newTable() table.Model {
	avail := m.width - 6
	if m.wide() {
		avail -= panelWidth + 4
	}
	player := min(max(avail-40, playerColMin), playerColMax)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Player", Width: player},
			{Title: "Score", Width: 8},
			{Title: "Level", Width: 6},
			{Title: "Date", Width: 13},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load fetches the runs of the current game. A failing store shows an empty board.
func (m *ScoreboardModel) load() {
	m.scores = nil
	if m.store != nil && len(m.games) > 0 {
		if scores, err := m.store.TopScores(m.games[m.current].ID, scoreboardLimit); err == nil {
			m.scores = scores
		}
	}
	m.summary = summarize(m.scores)
	m.table.SetRows(scoreRows(m.scores))
	m.table.GotoTop()
}

func scoreRows(scores []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		player := s.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// cycle moves the game selection by delta, wrapping around.
func (m *ScoreboardModel) cycle(delta int) {
	n := len(m.games)
	m.current = ((m.current+delta)%n + n) % n
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.table.SetRows(scoreRows(m.scores))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if t := m.gameTitle(); t != "" {
		title += " - " + t
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width, lipgloss.Width(title))))
	b.WriteString("\n\n")

	board := boardBoxStyle.Render(m.renderTable())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderPanel(), "  ", board))
	} else {
		if len(m.games) > 1 {
			tabs := m.renderTabs()
			b.WriteString(centerText(tabs, m.width, lipgloss.Width(tabs)))
			b.WriteString("\n")
		}
		line := boardDimStyle.Render(m.summaryLine())
		b.WriteString(centerText(line, m.width, lipgloss.Width(m.summaryLine())))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, board))
	}

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) summaryLine() string {
	if m.summary.Runs == 0 {
		return "No runs yet"
	}
	return fmt.Sprintf("Runs: %d  Best: %d (%s)  Top level: %d",
		m.summary.Runs, m.summary.Best, m.summary.Leader, m.summary.TopLevel)
}

// renderPanel draws the summary panel, listing the games when there is a choice.
func (m ScoreboardModel) renderPanel() string {
	var p strings.Builder
	p.WriteString(boardTitleStyle.UnsetMarginBottom().Render("Summary"))
	p.WriteString("\n")
	fmt.Fprintf(&p, "Runs      %d\n", m.summary.Runs)
	fmt.Fprintf(&p, "Best      %d\n", m.summary.Best)
	if m.summary.Leader != "" {
		fmt.Fprintf(&p, "Leader    %s\n", truncate(m.summary.Leader, panelWidth-12))
	}
	fmt.Fprintf(&p, "Top level %d", m.summary.TopLevel)

	if len(m.games) > 1 {
		p.WriteString("\n\n")
		for i, g := range m.games {
			name := truncate(g.Title, panelWidth-6)
			if i == m.current {
				p.WriteString(boardActiveStyle.Render(name))
			} else {
				p.WriteString(boardDimStyle.Render("  " + name))
			}
			p.WriteString("\n")
		}
	}

	return boardBoxStyle.Width(panelWidth).Render(p.String())
}

// renderTabs draws one tab per game, collapsing to the current one when they do not fit.
func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		name := truncate(g.Title, 10)
		if i == m.current {
			tabs[i] = boardActiveStyle.Render(name)
		} else {
			tabs[i] = boardDimStyle.Render(" " + name + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", m.gameTitle())
	}
	return line
}

func (m ScoreboardModel) renderTable() string {
	if len(m.scores) == 0 {
		return boardEmptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store ScoreStore, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
