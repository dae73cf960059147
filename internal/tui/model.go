// Package tui is the interactive browser for an aggregated export.
package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/soopatree/balloon/internal/aggregate"
	"github.com/soopatree/balloon/internal/cli"
	"github.com/soopatree/balloon/internal/common"
	"github.com/soopatree/balloon/internal/filter"
	"github.com/soopatree/balloon/internal/model"
)

// View is the table currently shown.
type View int

const (
	ViewRanking View = iota
	ViewOutcomes
)

// Config holds what the browser needs. Session must already have run once.
type Config struct {
	Context  context.Context
	Session  *aggregate.Session
	Now      func() time.Time
	Filter   filter.Config
	Resolved filter.Resolved
	Width    int
	Height   int
}

// Model holds the browser state.
type Model struct {
	ctx       context.Context
	lastError error
	session   *aggregate.Session
	bundle    *model.Bundle
	now       func() time.Time
	help      help.Model
	keymap    KeyMap
	filter    filter.Config
	resolved  filter.Resolved
	columns   []string
	table     table.Model
	selected  int // index into columns, outcome view only
	width     int
	height    int
	view      View
	loading   bool
	quitting  bool
}

func newModel(cfg Config) Model {
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	height := cfg.Height
	if height == 0 {
		height = 24
	}

	m := Model{
		ctx:      ctx,
		session:  cfg.Session,
		bundle:   cfg.Session.Bundle(),
		columns:  cfg.Session.Columns(),
		now:      now,
		help:     help.New(),
		keymap:   DefaultKeyMap(),
		filter:   cfg.Filter,
		resolved: cfg.Resolved,
		width:    cfg.Width,
		height:   height,
		table:    table.New(table.WithFocused(true)),
	}
	m.refreshTable()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refreshTable()
		return m, nil

	case aggregatedMsg:
		m.loading = false
		if msg.err != nil {
			m.lastError = msg.err
			return m, nil
		}
		m.lastError = nil
		m.filter = msg.cfg
		m.bundle = msg.bundle
		m.resolved = msg.resolved
		m.columns = m.session.Columns()
		m.clampSelection()
		m.refreshTable()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.refreshTable()
		return m, nil

	case key.Matches(msg, m.keymap.ToggleView):
		if m.view == ViewRanking {
			m.view = ViewOutcomes
		} else {
			m.view = ViewRanking
		}
		m.refreshTable()
		return m, nil

	case key.Matches(msg, m.keymap.PrevColumn):
		m.selectColumn(-1)
		return m, nil

	case key.Matches(msg, m.keymap.NextColumn):
		m.selectColumn(1)
		return m, nil

	case key.Matches(msg, m.keymap.MoveLeft):
		m.moveColumn(-1)
		return m, nil

	case key.Matches(msg, m.keymap.MoveRight):
		m.moveColumn(1)
		return m, nil
	}

	if preset, ok := m.keymap.presetFor(msg); ok {
		if m.loading {
			return m, nil
		}
		cfg := m.filter
		cfg.Preset = string(preset)
		cfg.StartDate = ""
		cfg.EndDate = ""
		m.loading = true
		return m, reaggregate(m.ctx, m.session, cfg, m.now())
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) selectColumn(delta int) {
	if m.view != ViewOutcomes || len(m.columns) == 0 {
		return
	}
	m.selected += delta
	m.clampSelection()
	m.refreshTable()
}

func (m *Model) moveColumn(delta int) {
	if m.view != ViewOutcomes || len(m.columns) == 0 {
		return
	}
	label := m.columns[m.selected]
	if err := m.session.Move(label, delta); err != nil {
		m.lastError = err
		return
	}
	m.lastError = nil
	m.columns = m.session.Columns()
	m.selected += delta
	m.clampSelection()
	m.refreshTable()
}

func (m *Model) clampSelection() {
	if m.selected >= len(m.columns) {
		m.selected = len(m.columns) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// refreshTable rebuilds the table for the current view and bundle.
func (m *Model) refreshTable() {
	var (
		cols []table.Column
		rows []table.Row
	)
	if m.bundle != nil {
		if m.view == ViewRanking {
			cols, rows = rankingTable(m.bundle)
		} else {
			cols, rows = outcomeTable(m.bundle, m.columns, m.selected)
		}
	}

	// Rows must be cleared before the column count changes.
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	m.table.SetHeight(m.tableHeight())
}

func (m Model) tableHeight() int {
	// title, status line, blank, help
	reserved := 6
	if m.help.ShowAll {
		reserved += 6
	}
	if h := m.height - reserved; h > 3 {
		return h
	}
	return 3
}

func rankingTable(bundle *model.Bundle) ([]table.Column, []table.Row) {
	cols := []table.Column{
		{Title: "순위", Width: 5},
		{Title: "후원자", Width: 40},
		{Title: "후원개수", Width: 10},
	}
	rows := make([]table.Row, 0, len(bundle.Donors))
	for i, d := range bundle.Donors {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			cli.NicknameDisplay(d),
			strconv.FormatInt(d.TotalAmount, 10),
		})
	}
	return cols, rows
}

func outcomeTable(bundle *model.Bundle, labels []string, selected int) ([]table.Column, []table.Row) {
	cols := make([]table.Column, 0, len(labels)+1)
	cols = append(cols, table.Column{Title: "후원자", Width: 24})
	for i, label := range labels {
		title := label
		if i == selected {
			title = "▸" + label
		}
		cols = append(cols, table.Column{Title: title, Width: max(len([]rune(title))+2, 6)})
	}

	donors := bundle.DonorsWithOutcomes()
	rows := make([]table.Row, 0, len(donors))
	for _, d := range donors {
		row := make(table.Row, 0, len(cols))
		row = append(row, d.DisplayLabel())
		for _, label := range labels {
			cell := ""
			if count := bundle.Count(d.ID, label); count > 0 {
				cell = strconv.Itoa(count)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	return cols, rows
}

// status is the date and count line under the title.
func (m Model) status() string {
	if m.bundle == nil {
		return common.MsgNoData
	}
	return cli.DateInfo(m.resolved.Dates, m.resolved.Preset, m.bundle.Statistics)
}
