// Package tui is the reviewer's terminal dashboard. It owns a review.Table,
// wires its callbacks to the persistence gateway, and renders the triage view:
// merged entries, filtering, sorting, selection, keyboard reordering, inline
// status and star-rating mutation, and a row-detail overlay.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ahmed-Samir101/tedxbeixinqiao/review"
)

// -- messages --

type entriesLoadedMsg struct {
	entries []review.Entry
	err     error
}

type mutationSavedMsg struct {
	what string
	id   string
	err  error
}

// -- model --

// pendingSave is a mutation the table reported through its callback, waiting
// to be turned into a storage command.
type pendingSave struct {
	what   string
	id     string
	status string
	rating int
}

// tableEvents collects what the table callbacks emit during one Update pass.
// The table invokes callbacks synchronously; the model drains this afterwards
// to issue the matching tea commands.
type tableEvents struct {
	opened *review.Entry
	saves  []pendingSave
}

var sortCycle = []review.Column{
	review.ColumnName,
	review.ColumnTopic,
	review.ColumnDate,
	review.ColumnType,
	review.ColumnStatus,
	review.ColumnRating,
}

var typeCycle = []review.EntryType{"", review.TypeApplication, review.TypeNomination}

type Model struct {
	store  *Store
	table  *review.Table
	events *tableEvents

	cursor     int
	typeCycleI int
	sortCycleI int // 0 = no sort, otherwise index+1 into sortCycle

	detail     *review.Entry
	loading    bool
	statusLine string
	width      int
	height     int
}

func New(store *Store) Model {
	events := &tableEvents{}
	table := review.NewTable(nil, review.Callbacks{
		OnStatusChange: func(id, status string) {
			events.saves = append(events.saves, pendingSave{what: "status", id: id, status: status})
		},
		OnRatingChange: func(id string, rating int) {
			events.saves = append(events.saves, pendingSave{what: "rating", id: id, rating: rating})
		},
		OnRowOpen: func(entry review.Entry) {
			e := entry
			events.opened = &e
		},
	})
	return Model{
		store:   store,
		table:   table,
		events:  events,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadEntries()
}

func (m Model) loadEntries() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		entries, err := store.LoadEntries(context.Background())
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m Model) saveCmd(p pendingSave) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		var err error
		if p.what == "status" {
			err = store.SaveStatus(context.Background(), p.id, p.status)
		} else {
			err = store.SaveRating(context.Background(), p.id, p.rating)
		}
		return mutationSavedMsg{what: p.what, id: p.id, err: err}
	}
}

// drainEvents converts callback output into commands and detail state.
func (m *Model) drainEvents() tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range m.events.saves {
		cmds = append(cmds, m.saveCmd(p))
	}
	m.events.saves = nil

	if m.events.opened != nil {
		m.detail = m.events.opened
		m.events.opened = nil
	}

	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case entriesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.statusLine = "load failed: " + msg.err.Error()
			return m, nil
		}
		m.table.SetEntries(msg.entries)
		m.statusLine = fmt.Sprintf("loaded %d submissions", len(msg.entries))
		if m.cursor >= len(m.table.Rows()) {
			m.cursor = 0
		}

	case mutationSavedMsg:
		if msg.err != nil {
			// Optimistic apply without rollback: the row keeps its new value,
			// the failure is surfaced here and `r` reconciles.
			m.statusLine = fmt.Sprintf("saving %s for %s failed: %v (press r to reload)", msg.what, msg.id, msg.err)
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail != nil {
		switch msg.String() {
		case "esc", "enter", "q":
			m.detail = nil
		}
		return m, nil
	}

	rows := m.table.Rows()

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case " ":
		if m.cursor < len(rows) {
			m.table.ToggleRow(rows[m.cursor].ID)
		}
	case "a":
		m.table.ToggleAll()

	case "J":
		return m.moveRow(rows, 1)
	case "K":
		return m.moveRow(rows, -1)

	case "f":
		m.typeCycleI = (m.typeCycleI + 1) % len(typeCycle)
		m.table.SetTypeFilter(typeCycle[m.typeCycleI])
		m.cursor = 0

	case "s":
		m.sortCycleI = (m.sortCycleI + 1) % (len(sortCycle) + 1)
		if m.sortCycleI == 0 {
			m.table.ClearSort()
		} else {
			m.table.ClearSort()
			m.table.ToggleSort(sortCycle[m.sortCycleI-1])
		}
	case "S":
		if col, _ := m.table.SortState(); col != "" {
			m.table.ToggleSort(col)
		}

	case "t":
		if m.cursor < len(rows) {
			row := rows[m.cursor]
			m.table.SetStatus(row.ID, nextStatus(row.Status))
			return m, m.drainEvents()
		}

	case "0", "1", "2", "3", "4", "5":
		if m.cursor < len(rows) {
			rating := int(msg.String()[0] - '0')
			if err := m.table.SetRating(rows[m.cursor].ID, rating); err != nil {
				m.statusLine = err.Error()
				return m, nil
			}
			return m, m.drainEvents()
		}

	case "enter":
		if m.cursor < len(rows) {
			m.table.OpenRow(rows[m.cursor].ID)
			return m, m.drainEvents()
		}

	case "r":
		m.loading = true
		m.statusLine = ""
		return m, m.loadEntries()
	}
	return m, nil
}

func (m Model) moveRow(rows []review.Entry, delta int) (tea.Model, tea.Cmd) {
	if col, _ := m.table.SortState(); col != "" {
		m.statusLine = "clear the sort (s) before reordering"
		return m, nil
	}
	target := m.cursor + delta
	if m.cursor >= len(rows) || target < 0 || target >= len(rows) {
		return m, nil
	}
	if err := m.table.MoveTo(rows[m.cursor].ID, rows[target].ID); err != nil {
		m.statusLine = err.Error()
		return m, nil
	}
	m.cursor = target
	return m, nil
}

// nextStatus cycles through the fixed options; unknown stored values restart
// the cycle at the first option.
func nextStatus(current string) string {
	opts := review.StatusOptions()
	for i, opt := range opts {
		if opt.Value == current {
			return opts[(i+1)%len(opts)].Value
		}
	}
	return opts[0].Value
}

// -- view --

func (m Model) View() string {
	if m.detail != nil {
		return m.detailView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("TEDx Beixinqiao Submission Review"))
	b.WriteString("\n")
	b.WriteString(m.summaryLine())
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-3s %-24s %-30s %-12s %-13s %-16s %s",
		"sel", "name", "topic", "date", "type", "status", "rating")))
	b.WriteString("\n")

	rows := m.table.Rows()
	if m.loading {
		b.WriteString(subtitleStyle.Render("  loading..."))
		b.WriteString("\n")
	} else if len(rows) == 0 {
		b.WriteString(subtitleStyle.Render("  " + review.NoResults))
		b.WriteString("\n")
	} else {
		for i, row := range rows {
			b.WriteString(m.renderRow(i, row))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.statusLine != "" {
		b.WriteString(statusLineStyle.Render(m.statusLine))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("j/k move · space select · a select all · J/K reorder · s/S sort · f filter · t status · 1-5 rate · enter detail · r reload · q quit"))
	return b.String()
}

func (m Model) summaryLine() string {
	parts := []string{fmt.Sprintf("%d rows", len(m.table.Rows()))}
	if sel := len(m.table.SelectedIDs()); sel > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", sel))
	}
	if ft := m.table.TypeFilter(); ft != "" {
		parts = append(parts, "filter: "+string(ft))
	}
	if col, desc := m.table.SortState(); col != "" {
		dir := "asc"
		if desc {
			dir = "desc"
		}
		parts = append(parts, fmt.Sprintf("sort: %s %s", col, dir))
	}
	return subtitleStyle.Render(strings.Join(parts, " · "))
}

func (m Model) renderRow(i int, row review.Entry) string {
	mark := "[ ]"
	if m.table.IsSelected(row.ID) {
		mark = selectedMarkStyle.Render("[x]")
	}

	name := fmt.Sprintf("%s (%s)", row.FullName, row.Subtitle())
	line := fmt.Sprintf("%-3s %-24s %-30s %-12s %-13s %-16s %s",
		mark,
		truncate(name, 24),
		truncate(row.Topic, 30),
		row.SubmissionDate.Format("2006-01-02"),
		renderTypeBadge(row.Type),
		renderStatus(row.Status),
		renderStars(row.Rating),
	)

	if i == m.cursor {
		return cursorStyle.Render("▸ ") + line
	}
	return "  " + line
}

func (m Model) detailView() string {
	e := m.detail
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", titleStyle.Render(e.FullName), renderTypeBadge(e.Type))
	fmt.Fprintf(&b, "%s %s\n", headerStyle.Render("Subtitle:"), e.Subtitle())
	fmt.Fprintf(&b, "%s %s\n", headerStyle.Render("Topic:"), e.Topic)
	fmt.Fprintf(&b, "%s %s\n", headerStyle.Render("Submitted:"), e.SubmissionDate.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "%s %s\n", headerStyle.Render("Status:"), renderStatus(e.Status))
	fmt.Fprintf(&b, "%s %s\n\n", headerStyle.Render("Rating:"), renderStars(e.Rating))
	b.WriteString(helpStyle.Render("esc close"))
	return detailBoxStyle.Render(b.String())
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
