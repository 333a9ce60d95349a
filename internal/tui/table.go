package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zoharmedia/zohar/internal/collection"
)

// screen is one tab of the dashboard.
type screen interface {
	Name() string
	Init() tea.Cmd
	Update(msg tea.Msg) (screen, tea.Cmd)
	View() string
	Help() string
	// Editing reports whether the screen owns every key (search, form, confirm).
	Editing() bool
}

// opResultMsg carries the outcome of a collection operation.
type opResultMsg struct {
	screen string
	done   string
	err    error
}

// describe turns a controller error into a status line.
func describe(err error) string {
	var (
		guard  *collection.GuardError
		remote *collection.RemoteError
	)
	switch collection.KindOf(err) {
	case collection.OK:
		return ""
	case collection.ValidationFailed:
		if msgs := fieldMessages(collection.FieldErrors(err)); len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
		return "Please fix the highlighted fields"
	case collection.GuardFailed:
		if errors.As(err, &guard) {
			return guard.Message
		}
	case collection.Busy:
		return "Already in progress"
	case collection.NotFound:
		return "Item no longer exists"
	case collection.RemoteFailed:
		if errors.As(err, &remote) {
			return remote.Message
		}
	}
	return err.Error()
}

type column[T any] struct {
	title string
	width int
	value func(T) string
}

// facet is a filter cycled with a single key.
type facet struct {
	key    string
	name   string
	values func() []string // without "all"
	label  func(string) string
}

// action runs against the selected row.
type action[T any] struct {
	key   string
	label string
	run   func(ctx context.Context, item T) (string, error)
}

type tableConfig[T any] struct {
	name     string
	ctrl     *collection.Controller[T]
	id       func(T) string
	label    func(T) string
	columns  []column[T]
	facets   []facet
	actions  []action[T]
	detail   func(T) []string
	newForm  func() formModel  // nil disables "n"
	editForm func(T) formModel // nil disables "e"
}

type tableModel[T any] struct {
	cfg       tableConfig[T]
	cursor    int
	searching bool
	search    string
	detail    bool
	confirm   string // id pending delete
	form      *formModel
	loading   bool
	status    string
	statusErr bool
	width     int
	height    int
}

func newTable[T any](cfg tableConfig[T]) tableModel[T] {
	return tableModel[T]{cfg: cfg, loading: !cfg.ctrl.Loaded(), search: cfg.ctrl.Search()}
}

func (m tableModel[T]) Name() string { return m.cfg.name }

func (m tableModel[T]) Init() tea.Cmd {
	if m.cfg.ctrl.Loaded() {
		return nil
	}
	return m.load()
}

func (m tableModel[T]) load() tea.Cmd {
	ctrl, name := m.cfg.ctrl, m.cfg.name
	return func() tea.Msg {
		return opResultMsg{screen: name, err: ctrl.Load(context.Background())}
	}
}

func (m tableModel[T]) run(done string, fn func(context.Context) (string, error)) tea.Cmd {
	name := m.cfg.name
	return func() tea.Msg {
		msg, err := fn(context.Background())
		if msg != "" {
			done = msg
		}
		return opResultMsg{screen: name, done: done, err: err}
	}
}

func (m tableModel[T]) Editing() bool {
	return m.searching || m.form != nil || m.confirm != ""
}

func (m tableModel[T]) rows() []T { return m.cfg.ctrl.List() }

func (m tableModel[T]) selected() (T, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		var zero T
		return zero, false
	}
	return rows[m.cursor], true
}

func (m *tableModel[T]) clamp() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *tableModel[T]) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m tableModel[T]) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case opResultMsg:
		m.loading = false
		if msg.err != nil {
			m.setStatus(describe(msg.err), true)
		} else if msg.done != "" {
			m.setStatus(msg.done, false)
		}
		m.clamp()
		return m, nil

	case formResultMsg:
		if m.form == nil {
			return m, nil
		}
		if msg.err == nil {
			m.form = nil
			m.setStatus(msg.done, false)
			m.clamp()
			return m, nil
		}
		f, cmd := m.form.Update(msg)
		m.form = &f
		return m, cmd

	case tea.KeyMsg:
		m.status = ""
		switch {
		case m.form != nil:
			return m.updateForm(msg)
		case m.confirm != "":
			return m.updateConfirm(msg)
		case m.searching:
			return m.updateSearch(msg)
		case m.detail:
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m tableModel[T]) updateForm(msg tea.KeyMsg) (screen, tea.Cmd) {
	if msg.String() == "esc" {
		m.form = nil
		return m, nil
	}
	f, cmd := m.form.Update(msg)
	m.form = &f
	return m, cmd
}

func (m tableModel[T]) updateConfirm(msg tea.KeyMsg) (screen, tea.Cmd) {
	id := m.confirm
	m.confirm = ""
	if msg.String() != "y" {
		return m, nil
	}
	ctrl := m.cfg.ctrl
	return m, m.run("Deleted", func(ctx context.Context) (string, error) {
		return "", ctrl.Remove(ctx, id)
	})
}

func (m tableModel[T]) updateSearch(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
	case "esc":
		m.searching = false
		m.search = ""
	default:
		m.search = editRune(m.search, msg.String())
	}
	m.cfg.ctrl.SetSearch(m.search)
	m.cursor = 0
	return m, nil
}

func (m tableModel[T]) updateDetail(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.detail = false
		return m, nil
	}
	return m.updateList(msg)
}

func (m tableModel[T]) updateList(msg tea.KeyMsg) (screen, tea.Cmd) {
	key := msg.String()
	switch key {
	case "j", "down":
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "enter":
		if _, ok := m.selected(); ok && m.cfg.detail != nil {
			m.detail = true
		}
		return m, nil
	case "/":
		m.searching = true
		return m, nil
	case "x":
		m.search = ""
		m.cfg.ctrl.SetSearch("")
		m.cfg.ctrl.ClearFilters()
		m.cursor = 0
		return m, nil
	case "r":
		m.loading = true
		return m, m.load()
	case "n":
		if m.cfg.newForm != nil {
			f := m.cfg.newForm()
			m.form = &f
		}
		return m, nil
	case "e":
		if item, ok := m.selected(); ok && m.cfg.editForm != nil {
			f := m.cfg.editForm(item)
			m.form = &f
		}
		return m, nil
	case "d":
		if item, ok := m.selected(); ok {
			m.confirm = m.cfg.id(item)
		}
		return m, nil
	}

	for _, f := range m.cfg.facets {
		if key == f.key {
			values := append([]string{collection.AllValues}, f.values()...)
			m.cfg.ctrl.SetFilter(f.name, cycle(values, m.cfg.ctrl.Filter(f.name), true))
			m.cursor = 0
			return m, nil
		}
	}

	item, ok := m.selected()
	if !ok {
		return m, nil
	}
	for _, a := range m.cfg.actions {
		if key == a.key {
			run := a.run
			return m, m.run("", func(ctx context.Context) (string, error) {
				return run(ctx, item)
			})
		}
	}
	return m, nil
}

func (m tableModel[T]) Help() string {
	switch {
	case m.form != nil:
		return helpBar([2]string{"tab", "next"}, [2]string{"←/→", "choose"}, [2]string{"ctrl+s", "save"}, [2]string{"esc", "cancel"})
	case m.confirm != "":
		return helpBar([2]string{"y", "confirm"}, [2]string{"any", "cancel"})
	case m.searching:
		return helpBar([2]string{"enter", "done"}, [2]string{"esc", "clear"})
	}
	entries := [][2]string{{"1-7", "tabs"}, {"j/k", "nav"}, {"/", "search"}}
	for _, f := range m.cfg.facets {
		entries = append(entries, [2]string{f.key, f.name})
	}
	for _, a := range m.cfg.actions {
		entries = append(entries, [2]string{a.key, a.label})
	}
	if m.cfg.newForm != nil {
		entries = append(entries, [2]string{"n", "new"})
	}
	if m.cfg.editForm != nil {
		entries = append(entries, [2]string{"e", "edit"})
	}
	entries = append(entries, [2]string{"d", "delete"}, [2]string{"h", "help"}, [2]string{"q", "quit"})
	return helpBar(entries...)
}

func (m tableModel[T]) View() string {
	if m.form != nil {
		return m.form.View()
	}

	var b strings.Builder
	all := len(m.cfg.ctrl.Items())
	rows := m.rows()
	fmt.Fprintf(&b, " %s  %s\n", titleStyle.Render(strings.ToUpper(m.cfg.name)), metaStyle.Render(fmt.Sprintf("%d of %d", len(rows), all)))

	switch {
	case m.searching:
		b.WriteString(" " + searchStyle.Render("/ "+m.search+"█"))
	case m.search != "":
		b.WriteString(" " + searchStyle.Render("/ "+m.search))
	default:
		b.WriteString(" " + dimStyle.Render("/ search..."))
	}
	for _, f := range m.cfg.facets {
		v := m.cfg.ctrl.Filter(f.name)
		shown := v
		if f.label != nil && v != collection.AllValues {
			shown = f.label(v)
		}
		if v == collection.AllValues {
			b.WriteString("   " + dimStyle.Render(f.name+": all"))
		} else {
			b.WriteString("   " + searchStyle.Render(f.name+": "+shown))
		}
		b.WriteString(" " + helpKeyStyle.Render(f.key))
	}
	b.WriteString("\n")

	sepW := max(m.width-2, 4)
	b.WriteString(" " + sectionHeaderStyle.Render(strings.Repeat("─", sepW)) + "\n")

	if m.detail {
		if item, ok := m.selected(); ok {
			for _, line := range m.cfg.detail(item) {
				b.WriteString(" " + line + "\n")
			}
		}
		b.WriteString(m.footer())
		return b.String()
	}

	var header strings.Builder
	header.WriteString("   ")
	for _, c := range m.cfg.columns {
		header.WriteString(pad(c.title, c.width) + " ")
	}
	b.WriteString(metaStyle.Render(header.String()) + "\n")

	switch {
	case m.loading:
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
	case len(rows) == 0 && all == 0:
		b.WriteString(" " + dimStyle.Render("nothing here yet") + "\n")
	case len(rows) == 0:
		b.WriteString(" " + dimStyle.Render("no matches") + "\n")
	}

	start, end := m.window(len(rows))
	for i := start; i < end; i++ {
		item := rows[i]
		var line strings.Builder
		for _, c := range m.cfg.columns {
			line.WriteString(pad(c.value(item), c.width) + " ")
		}
		text := line.String()
		if i == m.cursor {
			b.WriteString(selectedRowBg.Render(" " + accentStyle.Render(">") + " " + text))
		} else {
			b.WriteString("   " + text)
		}
		b.WriteString("\n")
	}

	b.WriteString(m.footer())
	return b.String()
}

// window keeps the cursor visible when the list is taller than the body.
func (m tableModel[T]) window(n int) (int, int) {
	visible := m.height - 6
	if visible <= 0 || n <= visible {
		return 0, n
	}
	start := max(m.cursor-visible/2, 0)
	end := start + visible
	if end > n {
		end = n
		start = n - visible
	}
	return start, end
}

func (m tableModel[T]) footer() string {
	switch {
	case m.confirm != "":
		label := m.confirm
		if item, ok := m.cfg.ctrl.Get(m.confirm); ok && m.cfg.label != nil {
			label = m.cfg.label(item)
		}
		return "\n " + warnStyle.Render(fmt.Sprintf("Delete %q? y/n", label))
	case m.status != "" && m.statusErr:
		return "\n " + errorStyle.Render(m.status)
	case m.status != "":
		return "\n " + successStyle.Render(m.status)
	}
	return ""
}

// fieldMessages returns the messages of errs ordered by field key.
func fieldMessages(errs map[string]string) []string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, errs[k])
	}
	return msgs
}
