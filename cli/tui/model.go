package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwantia/dumpargs"
	"github.com/mwantia/dumpargs/data"
	"github.com/mwantia/dumpargs/log"
)

// Mode represents the current interaction mode
type Mode int

const (
	ModeEdit Mode = iota
	ModeSaveName
	ModeConfirmDelete
	ModeHelp
)

// Model represents the state of the inspector
type Model struct {
	// Core components
	ctx    context.Context
	engine *dumpargs.Engine
	logger *log.Logger
	theme  *Theme
	keys   KeyMap
	help   help.Model

	// Command line being inspected
	line     textinput.Model
	state    *data.State
	warnings []error
	parseErr error

	// Line regenerated from state
	canonical string
	genErr    error

	// Preset pane
	entries []*Entry
	cursor  int
	offset  int

	// View state
	width  int
	height int

	// Mode state
	mode Mode
	name textinput.Model

	// Status
	statusMsg string
	errorMsg  string
}

// NewModel creates a new inspector model with line as the initial command line
func NewModel(ctx context.Context, engine *dumpargs.Engine, logger *log.Logger, line string) *Model {
	if logger == nil {
		logger = log.Discard()
	}

	li := textinput.New()
	li.Placeholder = "media dump \"D:\" \"disc.bin\" --speed 8"
	li.CharLimit = 1024
	li.Prompt = "> "
	li.SetValue(line)
	li.Focus()

	ni := textinput.New()
	ni.Placeholder = "preset name"
	ni.CharLimit = 128
	ni.Prompt = "name: "

	m := &Model{
		ctx:    ctx,
		engine: engine,
		logger: logger,
		theme:  DefaultTheme(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		line:   li,
		name:   ni,
	}
	m.evaluate()

	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadPresets(),
		textinput.Blink,
	)
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case presetsLoadedMsg:
		m.entries = newEntries(msg.presets)
		if m.cursor >= len(m.entries) {
			m.cursor = max(len(m.entries)-1, 0)
		}
		return m, nil

	case presetSavedMsg:
		m.errorMsg = ""
		m.statusMsg = fmt.Sprintf("Saved preset '%s'", msg.preset.Name)
		return m, m.loadPresets()

	case presetLoadedMsg:
		m.errorMsg = ""
		m.statusMsg = fmt.Sprintf("Loaded preset '%s'", msg.preset.Name)
		m.line.SetValue(msg.preset.Line)
		m.line.CursorEnd()
		m.evaluate()
		return m, nil

	case presetDeletedMsg:
		m.errorMsg = ""
		m.statusMsg = fmt.Sprintf("Deleted preset '%s'", msg.name)
		return m, m.loadPresets()

	case errorMsg:
		m.errorMsg = string(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress processes keyboard input based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeSaveName:
		return m.handleNameMode(msg)
	case ModeConfirmDelete:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m.handleEditMode(msg)
}

// handleEditMode processes keys while editing the command line
func (m *Model) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadPresets()

	case key.Matches(msg, m.keys.Load):
		if entry := m.currentEntry(); entry != nil {
			return m, m.loadPreset(entry.Preset.Name)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if entry := m.currentEntry(); entry != nil {
			m.mode = ModeConfirmDelete
			m.statusMsg = fmt.Sprintf("Delete preset '%s'? (y/n)", entry.Preset.Name)
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		if m.state == nil {
			m.errorMsg = "Nothing to save, the command line does not parse"
			return m, nil
		}
		m.startNameInput()
		return m, nil

	case key.Matches(msg, m.keys.Canonical):
		if m.genErr == nil && m.canonical != "" {
			m.line.SetValue(m.canonical)
			m.line.CursorEnd()
			m.evaluate()
		}
		return m, nil
	}

	var cmd tea.Cmd
	previous := m.line.Value()
	m.line, cmd = m.line.Update(msg)
	if m.line.Value() != previous {
		m.evaluate()
	}

	return m, cmd
}

// handleNameMode collects the name of the preset to save
func (m *Model) handleNameMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.stopNameInput()
		return m, nil

	case tea.KeyEnter:
		name := strings.TrimSpace(m.name.Value())
		m.stopNameInput()
		if name == "" {
			return m, nil
		}
		return m, m.savePreset(name)
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeEdit
	m.statusMsg = ""

	answer := strings.ToLower(msg.String())
	if answer != "y" && answer != "yes" {
		return m, nil
	}

	if entry := m.currentEntry(); entry != nil {
		return m, m.deletePreset(entry.Preset.Name)
	}
	return m, nil
}

// handleHelpMode processes keys in help mode
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeEdit
		return m, nil
	}
	return m, nil
}

func (m *Model) startNameInput() {
	m.mode = ModeSaveName
	m.line.Blur()
	m.name.SetValue("")
	m.name.Focus()
	m.errorMsg = ""
	m.statusMsg = ""
}

func (m *Model) stopNameInput() {
	m.mode = ModeEdit
	m.name.Blur()
	m.name.SetValue("")
	m.line.Focus()
}

// evaluate parses the current line and regenerates its canonical form
func (m *Model) evaluate() {
	m.state, m.warnings, m.parseErr = m.engine.ParseWithWarnings(m.line.Value())
	m.canonical, m.genErr = "", nil

	if m.parseErr != nil {
		return
	}

	m.canonical, m.genErr = m.engine.Generate(m.state)
}

// moveCursor moves the preset cursor by delta, handling bounds and scrolling
func (m *Model) moveCursor(delta int) {
	if len(m.entries) == 0 {
		return
	}

	m.cursor = max(0, min(m.cursor+delta, len(m.entries)-1))

	visibleLines := m.getVisibleLines()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visibleLines {
		m.offset = m.cursor - visibleLines + 1
	}
}

// getVisibleLines returns how many preset entries can be displayed
func (m *Model) getVisibleLines() int {
	// Reserve space for title, input, canonical line, status bar and help
	reserved := 12
	available := m.height - reserved
	if available < 5 {
		return 5
	}
	return available
}

// currentEntry returns the currently selected preset
func (m *Model) currentEntry() *Entry {
	if m.cursor >= 0 && m.cursor < len(m.entries) {
		return m.entries[m.cursor]
	}
	return nil
}

// Messages for async operations
type presetsLoadedMsg struct {
	presets []*data.Preset
}

type presetSavedMsg struct {
	preset *data.Preset
}

type presetLoadedMsg struct {
	preset *data.Preset
}

type presetDeletedMsg struct {
	name string
}

type errorMsg string

// Commands for async operations
func (m *Model) loadPresets() tea.Cmd {
	return func() tea.Msg {
		presets, err := m.engine.ListPresets(m.ctx, "")
		if err != nil {
			return errorMsg(fmt.Sprintf("Failed to list presets: %v", err))
		}
		return presetsLoadedMsg{presets: presets}
	}
}

func (m *Model) savePreset(name string) tea.Cmd {
	state := m.state.Clone()
	attributes := map[string]string{
		data.AttributeOrigin: "inspector",
	}

	return func() tea.Msg {
		preset, err := m.engine.SavePreset(m.ctx, name, state, attributes, true)
		if err != nil {
			m.logger.Warn("Failed to save preset '%s': %v", name, err)
			return errorMsg(fmt.Sprintf("Failed to save preset: %v", err))
		}
		return presetSavedMsg{preset: preset}
	}
}

func (m *Model) loadPreset(name string) tea.Cmd {
	return func() tea.Msg {
		// The raw line is shown even when it no longer parses
		_, preset, err := m.engine.LoadPreset(m.ctx, name)
		if preset == nil {
			return errorMsg(fmt.Sprintf("Failed to load preset: %v", err))
		}
		if err != nil {
			m.logger.Warn("Preset '%s' does not parse: %v", name, err)
		}
		return presetLoadedMsg{preset: preset}
	}
}

func (m *Model) deletePreset(name string) tea.Cmd {
	return func() tea.Msg {
		if err := m.engine.DeletePreset(m.ctx, name); err != nil {
			return errorMsg(fmt.Sprintf("Failed to delete preset: %v", err))
		}
		return presetDeletedMsg{name: name}
	}
}
