package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sheikhrachel/go-gol/input"
	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

const (
	// headerHeight is the number of lines drawn above the grid.
	headerHeight = 2
	// footerHeight is the number of lines drawn below the grid.
	footerHeight = 3
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB86C"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type tickMsg time.Time

type keyMap struct {
	Pause key.Binding
	Step  key.Binding
	Reset key.Binding
	Clear key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Step, k.Reset, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Pause: key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "play/pause")),
	Step:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "step")),
	Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reseed")),
	Clear: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// lifeModel is the interactive frame driver. Bubbletea serializes Update and
// View, so the grid sees strictly sequential calls.
type lifeModel struct {
	err      error
	game     *game
	renderer *model.TerminalRenderer
	help     help.Model
	keys     keyMap
	paused   bool
}

func newLifeModel(g *game) *lifeModel {
	return &lifeModel{
		game:     g,
		renderer: model.NewTerminalRenderer(),
		help:     help.New(),
		keys:     keys,
		paused:   g.config.StartPaused,
	}
}

func (m *lifeModel) tick() tea.Cmd {
	return tea.Tick(m.game.config.FrameRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *lifeModel) Init() tea.Cmd {
	return m.tick()
}

func (m *lifeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.paused {
			if err := m.step(); err != nil {
				return m, tea.Quit
			}
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Step):
			if err := m.step(); err != nil {
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.Reset):
			if err := m.game.reseed(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.Clear):
			m.game.clear()
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.toggleAt(msg.X, msg.Y)
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	return m, nil
}

// step advances one generation, pausing once the generation limit is hit.
func (m *lifeModel) step() error {
	if m.game.done() {
		m.paused = true
		return nil
	}
	if err := m.game.advance(); err != nil {
		m.err = err
		return err
	}
	return nil
}

// toggleAt flips the cell under a click at terminal position (x, y).
// Clicks outside the drawn grid are ignored.
func (m *lifeModel) toggleAt(x, y int) {
	height, width := m.game.grid.Dimensions()
	cellWidth := m.renderer.CellWidth()
	y -= headerHeight
	if y < 0 || y >= height || x >= width*cellWidth {
		return
	}

	row, col, ok := input.CellAt(float64(x)/float64(cellWidth), float64(y), 1, height, width)
	if !ok {
		return
	}
	if err := m.game.grid.Toggle(row, col); err != nil {
		m.game.logger.Warn("toggle failed", zap.Error(err))
		return
	}
	m.game.history.Reset()
	m.game.stagnantCount = 0
}

func (m *lifeModel) View() string {
	if m.err != nil {
		return errorStyle.Render("Error: "+m.err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Game of Life"))
	if m.paused {
		b.WriteString(" ")
		b.WriteString(pausedStyle.Render("paused"))
	}
	b.WriteString("\n\n")

	height, width := m.game.grid.Dimensions()
	grid, err := m.renderer.Render(m.game.grid.View(), height, width)
	if err != nil {
		return errorStyle.Render("Error: "+err.Error()) + "\n"
	}
	b.WriteString(grid)

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.game.statusLine()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func runInteractive(config utils.Config, logger *zap.Logger) error {
	g, err := newGame(config, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newLifeModel(g), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return errors.Wrap(err, "[runInteractive]")
	}
	if m, ok := final.(*lifeModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
