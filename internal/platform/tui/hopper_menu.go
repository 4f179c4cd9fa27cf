package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vgladkov/hopper/internal/core"
)

// HopperMode represents the selected game mode.
type HopperMode int

const (
	HopperModeClassic HopperMode = iota
	HopperModeEndless
)

// HopperSelection holds the user's selection from the mode menu.
type HopperSelection struct {
	Mode       HopperMode
	Difficulty string // "" = config default
}

// difficultyOptions lists the selectable presets in menu order.
var difficultyOptions = []string{"easy", "normal", "hard", "fixed"}

// HopperModeModel lets users choose game mode and difficulty preset.
type HopperModeModel struct {
	cursor       int
	diffCursor   int
	inDiffSelect bool
	width        int
	height       int
	keyMapper    *KeyMapper
	selection    HopperSelection
	choosing     bool
	quitting     bool
	back         bool
}

// NewHopperModeModel creates a new mode selection model.
func NewHopperModeModel(width, height int) HopperModeModel {
	return HopperModeModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m HopperModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m HopperModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m HopperModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inDiffSelect {
		return m.handleDiffSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m HopperModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 1 { // 2 options: Classic, Endless
			m.cursor++
		}
	case MenuActionSelect:
		m.selection.Mode = HopperModeClassic
		if m.cursor == 1 {
			m.selection.Mode = HopperModeEndless
		}
		m.inDiffSelect = true
		m.diffCursor = 1 // Default to "normal"
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m HopperModeModel) handleDiffSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.diffCursor > 0 {
			m.diffCursor--
		}
	case MenuActionDown:
		if m.diffCursor < len(difficultyOptions)-1 {
			m.diffCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection.Difficulty = difficultyOptions[m.diffCursor]
		return m, tea.Quit
	case MenuActionBack:
		m.inDiffSelect = false
	}

	return m, nil
}

// View renders the mode/difficulty selection.
func (m HopperModeModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inDiffSelect {
		return m.viewDiffSelect()
	}
	return m.viewModeSelect()
}

func (m HopperModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("H O P P E R", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	modes := []string{
		"Classic (fixed screen)",
		"Endless Runner",
	}

	for i, mode := range modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, mode), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m HopperModeModel) viewDiffSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT DIFFICULTY", m.width))
	b.WriteString("\n\n")

	for i, name := range difficultyOptions {
		cursor := "  "
		if i == m.diffCursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, name), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back", m.width))

	return b.String()
}

// RunHopperModeSelector shows the mode/difficulty selector and returns the
// user's selection, or nil if the user backed out.
func RunHopperModeSelector(cfg core.RuntimeConfig) (*HopperSelection, core.RuntimeConfig, error) {
	model := NewHopperModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(HopperModeModel)
	if !ok {
		return nil, cfg, nil
	}

	cfg.ScreenW = m.width
	cfg.ScreenH = m.height

	if m.quitting || m.back || m.choosing {
		return nil, cfg, nil
	}

	selection := m.selection
	return &selection, cfg, nil
}
