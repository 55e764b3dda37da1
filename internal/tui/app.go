package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/yacht/internal/database/repository"
	"github.com/jask/yacht/internal/service"
)

const (
	historyLimit     = 200
	leaderboardLimit = 10
	nameWidth        = 18
	timeLayout       = "2006-01-02 15:04"
	gameIDDisplay    = 8
)

// App browses recorded games.
type App struct {
	ctx      context.Context
	services Services
	keys     keyMap
	confirm  confirmKeyMap
	help     help.Model
	state    appState
	modal    modalState
	games    []repository.Game
	cursor   int
	detail   *repository.Game
	leaders  []repository.LeaderboardEntry
	status   string
}

type Services struct {
	Results     *service.ResultsService
	Maintenance *service.MaintenanceService
}

type appState string

const (
	viewGames       appState = "games"
	viewDetail      appState = "detail"
	viewLeaderboard appState = "leaderboard"
)

type modalState string

const (
	modalNone         modalState = ""
	modalConfirmReset modalState = "confirmReset"
)

func New(ctx context.Context, services Services) *App {
	return &App{
		ctx:      ctx,
		services: services,
		keys:     newKeyMap(),
		confirm:  newConfirmKeyMap(),
		help:     help.New(),
		state:    viewGames,
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadGames()
}

type gamesMsg []repository.Game

type detailMsg struct{ game *repository.Game }

type leaderboardMsg []repository.LeaderboardEntry

type resetDoneMsg struct{}

type statusMsg string

type errMsg struct{ error }

func (a *App) loadGames() tea.Cmd {
	return func() tea.Msg {
		games, err := a.services.Results.History(a.ctx, historyLimit)
		if err != nil {
			return errMsg{err}
		}
		return gamesMsg(games)
	}
}

func (a *App) loadDetail(id string) tea.Cmd {
	return func() tea.Msg {
		g, err := a.services.Results.Game(a.ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return detailMsg{g}
	}
}

func (a *App) loadLeaderboard() tea.Cmd {
	return func() tea.Msg {
		entries, err := a.services.Results.Leaderboard(a.ctx, leaderboardLimit)
		if err != nil {
			return errMsg{err}
		}
		return leaderboardMsg(entries)
	}
}

func (a *App) resetCmd() tea.Cmd {
	return func() tea.Msg {
		if a.services.Maintenance == nil {
			return errMsg{fmt.Errorf("maintenance not configured")}
		}
		if err := a.services.Maintenance.Reset(a.ctx); err != nil {
			return errMsg{err}
		}
		return resetDoneMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = m.Width
	case gamesMsg:
		a.games = m
		if a.cursor >= len(a.games) {
			a.cursor = max(len(a.games)-1, 0)
		}
	case detailMsg:
		if m.game == nil {
			a.status = "game not found"
			return a, nil
		}
		a.detail = m.game
		a.state = viewDetail
	case leaderboardMsg:
		a.leaders = m
		a.state = viewLeaderboard
	case resetDoneMsg:
		a.games, a.detail, a.leaders = nil, nil, nil
		a.cursor = 0
		a.state = viewGames
		a.status = "history cleared"
		return a, a.loadGames()
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.status = "error: " + m.Error()
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	case key.Matches(m, a.keys.Up):
		if a.state == viewGames && a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.state == viewGames && a.cursor < len(a.games)-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Enter):
		if a.state == viewGames && len(a.games) > 0 {
			a.status = ""
			return a, a.loadDetail(a.games[a.cursor].ID)
		}
	case key.Matches(m, a.keys.Back):
		a.state = viewGames
		a.status = ""
	case key.Matches(m, a.keys.Leaderboard):
		a.status = ""
		return a, a.loadLeaderboard()
	case key.Matches(m, a.keys.Refresh):
		a.status = "refreshed"
		return a, a.loadGames()
	case key.Matches(m, a.keys.Reset):
		a.modal = modalConfirmReset
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.confirm.Yes):
		a.modal = modalNone
		a.status = "clearing history..."
		return a, a.resetCmd()
	case key.Matches(m, a.confirm.No):
		a.modal = modalNone
		a.status = "reset cancelled"
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	}
	return a, nil
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c2e7")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	winnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af")).Bold(true)
)

func (a *App) View() string {
	var body string
	switch a.state {
	case viewDetail:
		body = a.renderDetail()
	case viewLeaderboard:
		body = a.renderLeaderboard()
	default:
		body = a.renderGames()
	}
	if a.modal != modalNone {
		body += "\n\n" + a.renderModal()
	}
	if a.status != "" {
		body += "\n" + dimStyle.Render(a.status)
	}
	if a.modal != modalNone {
		return body + "\n" + a.help.View(a.confirm)
	}
	return body + "\n" + a.help.View(a.keys)
}

func (a *App) renderGames() string {
	out := titleStyle.Render(fmt.Sprintf("Yacht History (%d games)", len(a.games))) + "\n"
	if len(a.games) == 0 {
		return out + "No games recorded yet. Play one with `yacht play`.\n"
	}
	for i, g := range a.games {
		marker := "  "
		if i == a.cursor {
			marker = cursorStyle.Render("> ")
		}
		out += fmt.Sprintf("%s%s  %-8s  %d player(s)  winner: %s\n",
			marker, g.CreatedAt.Local().Format(timeLayout), g.Mode, g.PlayerCount, winners(g.Players))
	}
	return out
}

func (a *App) renderDetail() string {
	g := a.detail
	if g == nil {
		return a.renderGames()
	}
	id := g.ID
	if len(id) > gameIDDisplay {
		id = id[:gameIDDisplay]
	}
	out := titleStyle.Render(fmt.Sprintf("Game %s", id)) + "\n"
	out += fmt.Sprintf("Played: %s  Mode: %s  Seed: %d\n\n", g.CreatedAt.Local().Format(timeLayout), g.Mode, g.Seed)
	for _, p := range g.Players {
		line := fmt.Sprintf("#%d %s %4d points", p.Rank, pad(p.Name), p.Total)
		if p.Rank == 1 {
			line = winnerStyle.Render(line)
		}
		out += line + "\n"
		for _, s := range p.Scores {
			out += fmt.Sprintf("    %-18s: %3d\n", s.Name, s.Points)
		}
	}
	return out
}

func (a *App) renderLeaderboard() string {
	out := titleStyle.Render("Best Scores") + "\n"
	if len(a.leaders) == 0 {
		return out + "No scores yet.\n"
	}
	for i, e := range a.leaders {
		out += fmt.Sprintf("%2d. %s %4d  %-8s  %s\n", i+1, pad(e.Name), e.Total, e.Mode, e.PlayedAt.Local().Format(timeLayout))
	}
	return out
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalConfirmReset:
		return warningStyle.Render("Clear history?") + "\nThis deletes every recorded game."
	default:
		return ""
	}
}

func winners(players []repository.GamePlayer) string {
	var names []string
	for _, p := range players {
		if p.Rank == 1 {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

func pad(name string) string {
	name = ansi.Truncate(name, nameWidth, "…")
	if w := ansi.StringWidth(name); w < nameWidth {
		name += strings.Repeat(" ", nameWidth-w)
	}
	return name
}
