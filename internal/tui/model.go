// Package tui is the terminal surface: the book form above the table, both
// driven through the same catalog, renderer and form controller as the web.
package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/form"
	"github.com/mrlokans/bookshelf/internal/table"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5A00D")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5A00D"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

// Model is the bubbletea model for the terminal UI.
type Model struct {
	renderer *table.Renderer
	surface  *table.TextSurface
	forms    *form.Controller
	logger   *slog.Logger
	keys     KeyMap

	inputs *inputs
	focus  int
	cursor int

	table string
	err   error
}

// New builds a model drawing through renderer, whose surface must be surface.
func New(renderer *table.Renderer, surface *table.TextSurface, forms *form.Controller, logger *slog.Logger) Model {
	m := Model{
		renderer: renderer,
		surface:  surface,
		forms:    forms,
		logger:   logger,
		keys:     DefaultKeyMap(),
		inputs:   newInputs(),
	}
	m.inputs.focus(fieldTitle)
	m.redraw()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocusedField(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.NextField):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case key.Matches(keyMsg, m.keys.PrevField):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	case key.Matches(keyMsg, m.keys.ToggleForm):
		m.inputs.haveRead = !m.inputs.haveRead
		return m, nil
	}

	if m.focus == focusTable {
		return m.updateTable(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Submit):
		m.submit()
		return m, nil
	case m.focus == fieldRead && keyMsg.String() == " ":
		m.inputs.haveRead = !m.inputs.haveRead
		return m, nil
	}
	return m.updateFocusedField(msg)
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.redraw()
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.renderer.Catalog().Len()-1 {
			m.cursor++
			m.redraw()
		}
	case key.Matches(msg, m.keys.ToggleRead):
		m.click(table.ActionToggleRead)
	case key.Matches(msg, m.keys.Delete):
		m.click(table.ActionDelete)
	}
	return m, nil
}

func (m Model) updateFocusedField(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus >= len(m.inputs.fields) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs.fields[m.focus], cmd = m.inputs.fields[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(focus int) {
	m.focus = focus
	m.inputs.focus(focus)
	m.redraw()
}

// submit hands the form to the controller. Rejected input is left in place.
func (m *Model) submit() {
	var buf strings.Builder
	m.surface.Cursor = m.tableCursor()
	record, err := m.forms.Submit(&buf, m.inputs)

	var validationErr *form.ValidationError
	switch {
	case errors.As(err, &validationErr):
		m.logger.Debug("Book submission rejected", "field", validationErr.Field, "reason", validationErr.Reason)
		return
	case err != nil:
		m.fail(err)
		return
	}

	m.logger.Info("Book added", "title", record.Title, "position", record.Position)
	m.err = nil
	m.focus = fieldTitle
	m.inputs.focus(fieldTitle)
	m.table = buf.String()
}

func (m *Model) click(action table.Action) {
	var buf strings.Builder
	m.surface.Cursor = m.cursor
	err := m.renderer.Click(&buf, action, m.cursor)
	if errors.Is(err, catalog.ErrInvalidIndex) {
		m.logger.Debug("Table control on missing row", "action", action, "position", m.cursor)
		return
	}
	if err != nil {
		m.fail(err)
		return
	}

	m.logger.Info("Table control clicked", "action", action, "position", m.cursor)
	m.err = nil
	if n := m.renderer.Catalog().Len(); m.cursor >= n {
		m.cursor = max(n-1, 0)
		m.redraw()
		return
	}
	m.table = buf.String()
}

func (m *Model) redraw() {
	var buf strings.Builder
	m.surface.Cursor = m.tableCursor()
	if err := m.renderer.Redraw(&buf); err != nil {
		m.fail(err)
		return
	}
	m.table = buf.String()
}

func (m *Model) tableCursor() int {
	if m.focus != focusTable {
		return -1
	}
	return m.cursor
}

func (m *Model) fail(err error) {
	m.logger.Error("Terminal UI error", "err", err)
	m.err = err
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Library"))
	b.WriteString("\n\n")

	labels := []string{"Title", "Author", "Pages"}
	for i, label := range labels {
		b.WriteString(m.label(i, label))
		b.WriteString(m.inputs.fields[i].View())
		b.WriteString("\n")
	}

	check := "[ ]"
	if m.inputs.haveRead {
		check = "[x]"
	}
	b.WriteString(m.label(fieldRead, "Read"))
	b.WriteString(check)
	b.WriteString("\n\n")

	b.WriteString(m.table)
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) label(field int, text string) string {
	text = pad(text+":", 8)
	if m.focus == field {
		return focusedStyle.Render(text)
	}
	return labelStyle.Render(text)
}

func (m Model) help() string {
	bindings := []key.Binding{m.keys.NextField, m.keys.Submit, m.keys.ToggleForm}
	if m.focus == focusTable {
		bindings = []key.Binding{m.keys.NextField, m.keys.Up, m.keys.Down, m.keys.ToggleRead, m.keys.Delete, m.keys.Quit}
	}
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Run shows the terminal UI until the user quits or ctx is cancelled.
func Run(ctx context.Context, renderer *table.Renderer, surface *table.TextSurface, forms *form.Controller, logger *slog.Logger) error {
	program := tea.NewProgram(
		New(renderer, surface, forms, logger),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
