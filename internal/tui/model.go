package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/doroshv/wifi-heatmapper/internal/storage"
	"github.com/doroshv/wifi-heatmapper/internal/survey"
	"github.com/doroshv/wifi-heatmapper/internal/view"
)

const (
	indicatorWidth = 3
	maxColumnWidth = 28
)

type reloadedMsg struct {
	points   []survey.Point
	mappings []survey.APMapping
	err      error
}

// Model is the bubbletea program driving the survey point table. It owns
// no table semantics itself: every action is forwarded to the view engine
// and the screen is rebuilt from the engine's projection.
type Model struct {
	ctx         context.Context
	engine      *view.Table
	coordinator *view.Coordinator
	store       storage.Store
	logger      *slog.Logger

	tbl   table.Model
	keys  keyMap
	proj  view.Projection
	input textinput.Model

	filtering  bool
	columnMode bool
	confirm    string // pending delete prompt, empty when no modal is open

	status string
	err    error

	width  int
	height int
}

// New creates the table UI on top of the given engine and store. The
// context is the program context; store calls issued by the UI run under
// it, so an interrupt cancels them along with the program.
func New(ctx context.Context, engine *view.Table, coordinator *view.Coordinator, store storage.Store, logger *slog.Logger) Model {
	input := textinput.New()
	input.Placeholder = "filter"
	input.Prompt = "/ "

	tbl := table.New(table.WithFocused(true), table.WithStyles(tableStyles()))

	return Model{
		ctx:         ctx,
		engine:      engine,
		coordinator: coordinator,
		store:       store,
		logger:      logger,
		tbl:         tbl,
		keys:        newKeyMap(),
		input:       input,
	}
}

func (m Model) Init() tea.Cmd {
	return m.reloadCmd()
}

// reloadCmd fetches a fresh snapshot of both tables from the store.
func (m Model) reloadCmd() tea.Cmd {
	st, ctx := m.store, m.ctx
	return func() tea.Msg {
		points, err := st.Points(ctx)
		if err != nil {
			return reloadedMsg{err: err}
		}

		mappings, err := st.Mappings(ctx)
		if err != nil {
			return reloadedMsg{err: err}
		}

		return reloadedMsg{points: points, mappings: mappings}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tbl.SetHeight(max(3, m.height-6))
		return m, nil

	case reloadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.logger.Error("reloading survey data", slog.String("error", msg.err.Error()))
			return m, nil
		}
		m.err = nil
		m.engine.SetData(msg.points, msg.mappings)
		m.syncTable()
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.confirm != "":
			return m.updateConfirm(msg)
		case m.filtering:
			return m.updateFilter(msg)
		case m.columnMode:
			return m.updateColumns(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Select):
		if pos, ok := m.cursorPosition(); ok {
			m.engine.ToggleSelect(pos)
			m.syncTable()
		}
		return m, nil

	case key.Matches(msg, m.keys.SelectAll):
		m.engine.SelectAll()
		m.syncTable()
		return m, nil

	case key.Matches(msg, m.keys.ClearSelect):
		m.engine.ClearSelection()
		m.syncTable()
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.input.SetValue(m.engine.State().Filter())
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Columns):
		m.columnMode = true
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.engine.NextPage()
		m.syncTable()
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.engine.PrevPage()
		m.syncTable()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		// The coordinator owns the prompt wording; the gate declines here
		// and just captures it, so nothing is deleted until the modal
		// answer comes back.
		var prompt string
		if _, err := m.coordinator.DeleteSelected(m.ctx, func(p string) bool {
			prompt = p
			return false
		}); err != nil {
			m.err = err
			return m, nil
		}
		if prompt == "" {
			m.status = "nothing selected"
			return m, nil
		}
		m.confirm = prompt + " (y/n)"
		return m, nil

	case key.Matches(msg, m.keys.ToggleState):
		n, target, err := m.coordinator.ToggleDisableSelected(m.ctx)
		if err != nil {
			m.err = err
			return m, nil
		}
		if n == 0 {
			m.status = "nothing selected"
			return m, nil
		}
		verb := "enabled"
		if target {
			verb = "disabled"
		}
		m.status = fmt.Sprintf("%s %d points", verb, n)
		return m, m.reloadCmd()
	}

	// Digits cycle the sort on the corresponding visible column.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		idx := int(s[0] - '1')
		if idx < len(m.proj.Columns) {
			m.engine.CycleSort(m.proj.Columns[idx].Key)
			m.syncTable()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

// updateConfirm handles the delete confirmation modal. The batch delete is
// only ever issued from here, never straight from the delete key.
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirm = ""
		n, err := m.coordinator.DeleteSelected(m.ctx, func(string) bool { return true })
		if err != nil {
			m.err = err
			return m, nil
		}
		m.status = fmt.Sprintf("deleted %d points", n)
		return m, m.reloadCmd()

	case "n", "N", "esc":
		m.confirm = ""
		m.status = "delete cancelled"
		return m, nil
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.input.Blur()
		return m, nil

	case "esc":
		m.filtering = false
		m.input.Blur()
		m.input.SetValue("")
		m.engine.SetFilter("")
		m.syncTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.engine.SetFilter(m.input.Value())
	m.syncTable()
	return m, cmd
}

// updateColumns handles the column visibility overlay: one letter per
// registry column.
func (m Model) updateColumns(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	if s == "esc" || key.Matches(msg, m.keys.Columns) {
		m.columnMode = false
		m.syncTable()
		return m, nil
	}

	if len(s) == 1 {
		idx := int(s[0] - 'a')
		if idx >= 0 && idx < len(view.Columns) {
			m.engine.ToggleColumn(view.Columns[idx].Key)
			m.syncTable()
		}
	}
	return m, nil
}

// cursorPosition maps the table cursor to the row's position in the full
// ordered, filtered sequence.
func (m Model) cursorPosition() (int, bool) {
	c := m.tbl.Cursor()
	if c < 0 || c >= len(m.proj.Rows) {
		return 0, false
	}
	return m.proj.Rows[c].Position, true
}

// syncTable recomputes the projection and rebuilds the table widget from
// it. Column titles carry the sort direction of the active column.
func (m *Model) syncTable() {
	m.proj = m.engine.Projection()
	srt := m.engine.Sort()

	columns := make([]table.Column, 0, len(m.proj.Columns)+1)
	columns = append(columns, table.Column{Title: " ", Width: indicatorWidth})

	rows := make([]table.Row, 0, len(m.proj.Rows))
	for _, r := range m.proj.Rows {
		mark := " "
		if r.Selected {
			mark = "✓"
		}
		rows = append(rows, append(table.Row{mark}, r.Cells...))
	}

	for i, c := range m.proj.Columns {
		title := c.Title
		if c.Key == srt.Column {
			switch srt.Dir {
			case view.Ascending:
				title += " ↑"
			case view.Descending:
				title += " ↓"
			}
		}

		width := lipgloss.Width(title)
		for _, r := range rows {
			width = max(width, lipgloss.Width(r[i+1]))
		}
		columns = append(columns, table.Column{Title: title, Width: min(width, maxColumnWidth)})
	}

	// Rows must never be wider than the column set when it shrinks.
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(columns)
	m.tbl.SetRows(rows)

	if c := m.tbl.Cursor(); c >= len(rows) {
		m.tbl.SetCursor(max(0, len(rows)-1))
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Survey Points"))
	b.WriteString("\n")
	b.WriteString(m.tbl.View())
	b.WriteString("\n")

	switch {
	case m.confirm != "":
		b.WriteString(modalStyle.Render(m.confirm))
	case m.columnMode:
		b.WriteString(overlayStyle.Render(m.columnOverlay()))
	case m.filtering:
		b.WriteString(m.input.View())
	default:
		b.WriteString(m.footer())
	}

	return b.String()
}

func (m Model) footer() string {
	p := m.proj

	parts := []string{
		fmt.Sprintf("page %d/%d", p.Page+1, max(1, p.PageCount)),
		fmt.Sprintf("%d/%d points", p.TotalFiltered, p.Total),
	}
	if n := m.engine.State().SelectionCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if f := m.engine.State().Filter(); f != "" {
		parts = append(parts, fmt.Sprintf("filter: %q", f))
	}

	line := footerStyle.Render(strings.Join(parts, " · "))
	help := footerStyle.Render("space select · a/A all/none · d delete · x enable/disable · / filter · v columns · 1-9 sort · ←/→ page · q quit")

	switch {
	case m.err != nil:
		return line + "\n" + errorStyle.Render(m.err.Error())
	case m.status != "":
		return line + "\n" + statusStyle.Render(m.status)
	}
	return line + "\n" + help
}

// columnOverlay renders the visibility picker: one toggle letter per
// registry column. Non-hideable columns are marked and ignore their letter.
func (m Model) columnOverlay() string {
	var b strings.Builder
	b.WriteString("columns (letter toggles, esc closes)\n")

	for i, c := range view.Columns {
		mark := " "
		if m.engine.State().ColumnVisible(c.Key) {
			mark = "x"
		}
		lock := ""
		if !c.Hideable {
			lock = " (always on)"
		}
		fmt.Fprintf(&b, "[%s] %c %s%s\n", mark, 'a'+i, c.Title, lock)
	}
	return strings.TrimRight(b.String(), "\n")
}
