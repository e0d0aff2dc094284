package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwantia/dumpargs/cmd"
	"github.com/mwantia/dumpargs/data"
)

// View renders the TUI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.mode == ModeHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// renderMain renders the inspector view
func (m *Model) renderMain() string {
	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.theme.BorderStyle.Width(m.width-2).Render(m.line.View()))

	if m.mode == ModeSaveName {
		sections = append(sections, m.name.View())
	}

	sections = append(sections, m.renderContent())
	sections = append(sections, m.renderCanonical())
	sections = append(sections, m.renderStatus())
	sections = append(sections, m.renderHelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderTitle() string {
	title := "dumpargs inspector"
	if m.state != nil {
		title = fmt.Sprintf("dumpargs inspector - %s", cmd.Usage(m.state.Command))
	}
	return m.theme.TitleStyle.Render(title)
}

// renderContent renders the parse result next to the preset list
func (m *Model) renderContent() string {
	leftWidth := m.width * 3 / 5
	rightWidth := m.width - leftWidth - 4
	height := m.getVisibleLines() + 2

	left := m.theme.PaneStyle.
		Width(leftWidth).
		Height(height).
		Render(m.renderState())

	right := m.theme.PaneStyle.
		Width(rightWidth).
		Height(height).
		Render(m.renderPresets())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// renderState renders the parsed command, positionals and flags
func (m *Model) renderState() string {
	if m.parseErr != nil {
		return m.theme.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.parseErr))
	}

	state := m.state
	var lines []string

	lines = append(lines, m.label("Command")+m.theme.CommandStyle.Render(state.Command.Canonical()))

	positionals := []struct {
		name  string
		value string
	}{
		{"Input", state.Input},
		{"Input2", state.Input2},
		{"Output", state.Output},
		{"Remote host", state.RemoteHost},
	}
	for _, p := range positionals {
		if p.value != "" {
			lines = append(lines, m.label(p.name)+m.theme.ValueStyle.Render(p.value))
		}
	}

	lines = append(lines, "")
	flags := state.Flags()
	if len(flags) == 0 {
		lines = append(lines, m.theme.LabelStyle.Render("(no flags)"))
	}
	for _, flag := range flags {
		lines = append(lines, m.renderFlag(state, flag))
	}

	for _, warning := range m.warnings {
		lines = append(lines, m.theme.WarningStyle.Render(fmt.Sprintf("! %v", warning)))
	}

	maxLines := m.getVisibleLines()
	if len(lines) > maxLines {
		lines = append(lines[:maxLines-1], "...")
	}

	return strings.Join(lines, "\n")
}

func (m *Model) renderFlag(state *data.State, flag data.Flag) string {
	name := m.theme.FlagStyle.Render(flag.LongToken())
	kind := m.theme.LabelStyle.Render(fmt.Sprintf("[%s]", flag.Kind()))

	if flag.Kind() == data.KindBoolean {
		return fmt.Sprintf("%s %s", name, kind)
	}

	value, ok := state.Value(flag)
	if !ok {
		return fmt.Sprintf("%s %s", name, kind)
	}

	text := value.String()
	if literal, ok := cmd.Sentinel(state.Command, flag); ok && value.Int == cmd.SentinelAll {
		text = literal
	}

	return fmt.Sprintf("%s %s %s", name, m.theme.ValueStyle.Render(text), kind)
}

// renderPresets renders the list of stored presets
func (m *Model) renderPresets() string {
	if len(m.entries) == 0 {
		return m.theme.NormalItemStyle.Render("(no presets)")
	}

	var lines []string
	visibleLines := m.getVisibleLines()

	start := m.offset
	end := min(m.offset+visibleLines, len(m.entries))

	for i := start; i < end; i++ {
		entry := m.entries[i]
		style := m.theme.NormalItemStyle
		if i == m.cursor {
			style = m.theme.SelectedItemStyle
		}
		lines = append(lines, style.Render(entry.DisplayName()))
	}

	if entry := m.currentEntry(); entry != nil {
		lines = append(lines, "")
		lines = append(lines, m.label("Modified")+entry.DisplayModTime())
		lines = append(lines, m.label("Origin")+entry.DisplayOrigin())
	}

	return strings.Join(lines, "\n")
}

// renderCanonical renders the regenerated command line
func (m *Model) renderCanonical() string {
	switch {
	case m.parseErr != nil:
		return m.theme.CanonicalStyle.Width(m.width).Render("")
	case m.genErr != nil:
		return m.theme.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.genErr))
	}
	return m.theme.CanonicalStyle.Width(m.width).Render(m.canonical)
}

// renderStatus renders the status bar
func (m *Model) renderStatus() string {
	left := fmt.Sprintf("%d presets", len(m.entries))
	if m.state != nil {
		left = fmt.Sprintf("%d flags, %s", len(m.state.Flags()), left)
	}

	right := ""
	if m.errorMsg != "" {
		right = m.theme.ErrorStyle.Render(m.errorMsg)
	} else if m.statusMsg != "" {
		right = m.statusMsg
	}

	spacing := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-4, 0)

	statusLine := left + strings.Repeat(" ", spacing) + right
	return m.theme.StatusBarStyle.Width(m.width).Render(statusLine)
}

// renderHelpBar renders the bottom help bar
func (m *Model) renderHelpBar() string {
	return m.theme.HelpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// renderHelp renders the full help screen
func (m *Model) renderHelp() string {
	var sections []string

	sections = append(sections, m.theme.TitleStyle.Render("dumpargs inspector - Help"))
	sections = append(sections, "")
	sections = append(sections, m.help.FullHelpView(m.keys.FullHelp()))
	sections = append(sections, "")

	sections = append(sections, m.theme.TitleStyle.Render("Commands:"))
	for _, command := range cmd.Commands() {
		sections = append(sections, "  "+cmd.Usage(command))
	}
	sections = append(sections, "")

	sections = append(sections, m.theme.HelpStyle.Render("Press f1 or esc to return"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) label(name string) string {
	return m.theme.LabelStyle.Render(fmt.Sprintf("%-12s", name+":"))
}
