package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tummy-arcade/internal/analytics"
	"github.com/vovakirdan/tummy-arcade/internal/content"
)

// ContentSource is the part of content.Client the browser needs.
type ContentSource interface {
	Recipes(ctx context.Context) ([]content.Card, error)
	Games(ctx context.Context) ([]content.Card, error)
	Hero(ctx context.Context) (content.Hero, error)
}

const contentFetchTimeout = 10 * time.Second

type contentTab int

const (
	tabRecipes contentTab = iota
	tabGames
)

func (t contentTab) String() string {
	if t == tabGames {
		return "Games"
	}
	return "Recipes"
}

func (t contentTab) path() string {
	if t == tabGames {
		return "/games"
	}
	return "/recipes"
}

// contentLoadedMsg carries the result of an asynchronous fetch.
type contentLoadedMsg struct {
	tab   contentTab
	cards []content.Card
	hero  *content.Hero
	err   error
}

// ContentKeyMap defines the key bindings for the content browser.
type ContentKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Reload key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ContentKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Reload, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ContentKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultContentKeyMap returns the default content browser bindings.
func DefaultContentKeyMap() ContentKeyMap {
	return ContentKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Switch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "recipes/games")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	cardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	cardSelStyle   = lipgloss.NewStyle().Border(lipgloss.ThickBorder(), false, false, false, true).BorderForeground(lipgloss.Color("208")).PaddingLeft(1)
	cardStyle      = lipgloss.NewStyle().PaddingLeft(2)
	heroStyle      = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("208")).Padding(0, 2).Align(lipgloss.Center)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// RecipesModel browses recipes and games served by the content API.
type RecipesModel struct {
	source    ContentSource
	tracker   *analytics.Tracker
	tab       contentTab
	cards     []content.Card
	hero      *content.Hero
	cursor    int
	loading   bool
	err       error
	spinner   spinner.Model
	help      help.Model
	keys      ContentKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewRecipesModel creates a content browser. tracker may be nil.
func NewRecipesModel(source ContentSource, tracker *analytics.Tracker, width, height int) RecipesModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return RecipesModel{
		source:  source,
		tracker: tracker,
		loading: true,
		spinner: sp,
		help:    help.New(),
		keys:    DefaultContentKeyMap(),
		width:   width,
		height:  height,
	}
}

// Init starts the first fetch.
func (m RecipesModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch(m.tab, true))
}

// fetch loads the cards for tab off the update loop.
func (m RecipesModel) fetch(tab contentTab, withHero bool) tea.Cmd {
	m.tracker.PageView(tab.path())
	source := m.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), contentFetchTimeout)
		defer cancel()

		msg := contentLoadedMsg{tab: tab}
		if tab == tabGames {
			msg.cards, msg.err = source.Games(ctx)
		} else {
			msg.cards, msg.err = source.Recipes(ctx)
		}
		if msg.err == nil && withHero {
			h, err := source.Hero(ctx)
			switch {
			case err == nil:
				msg.hero = &h
			case !errors.Is(err, content.ErrNotFound):
				msg.err = err
			}
		}
		return msg
	}
}

// Update implements tea.Model.
func (m RecipesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case contentLoadedMsg:
		if msg.tab != m.tab {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		m.cards = msg.cards
		if msg.hero != nil {
			m.hero = msg.hero
		}
		m.cursor = 0
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.cards)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Switch):
			m.tab = (m.tab + 1) % 2
			return m.reload(false)
		case key.Matches(msg, m.keys.Reload):
			return m.reload(true)
		}
	}
	return m, nil
}

func (m RecipesModel) reload(withHero bool) (tea.Model, tea.Cmd) {
	m.loading = true
	m.err = nil
	m.cards = nil
	return m, tea.Batch(m.spinner.Tick, m.fetch(m.tab, withHero))
}

// View implements tea.Model.
func (m RecipesModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	width := max(m.width-4, 20)
	var b strings.Builder
	b.WriteString("\n")

	if m.hero != nil {
		banner := cardTitleStyle.Render(m.hero.Title)
		if m.hero.Subtitle != "" {
			banner += "\n" + m.hero.Subtitle
		}
		for _, line := range strings.Split(heroStyle.Render(banner), "\n") {
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	tabs := make([]string, 0, 2)
	for _, t := range []contentTab{tabRecipes, tabGames} {
		if t == m.tab {
			tabs = append(tabs, boardActiveStyle.Render(t.String()))
		} else {
			tabs = append(tabs, boardTabStyle.Render(t.String()))
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(fmt.Sprintf("  %s Loading %s...\n", m.spinner.View(), strings.ToLower(m.tab.String())))
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("  Could not load %s: %v", strings.ToLower(m.tab.String()), m.err)))
		b.WriteString("\n  Press r to retry.\n")
	case len(m.cards) == 0:
		b.WriteString(boardMutedStyle.Render("  Nothing here yet."))
		b.WriteString("\n")
	default:
		for i, c := range m.cards {
			body := cardTitleStyle.Render(c.Title)
			if c.Description != "" {
				body += "\n" + lipgloss.NewStyle().Width(width-4).Render(c.Description)
			}
			style := cardStyle
			if i == m.cursor {
				style = cardSelStyle
			}
			b.WriteString(style.Render(body))
			b.WriteString("\n\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(boardMutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Cards returns the cards currently shown.
func (m RecipesModel) Cards() []content.Card {
	return m.cards
}

// Err returns the last fetch error.
func (m RecipesModel) Err() error {
	return m.err
}

// IsGoingBack returns true if the user wants to return to the menu.
func (m RecipesModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m RecipesModel) IsQuitting() bool {
	return m.quitting
}

// RunRecipes runs the content browser.
// Returns true if the user wants to go back to the menu.
func RunRecipes(source ContentSource, tracker *analytics.Tracker, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewRecipesModel(source, tracker, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RecipesModel)
	return ok && m.IsGoingBack(), nil
}
