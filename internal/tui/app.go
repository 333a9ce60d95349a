package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zoharmedia/zohar/internal/dashboard"
)

// loadedAllMsg reports the initial load of every collection.
type loadedAllMsg struct{ err error }

// App is the root Bubbletea model.
type App struct {
	dash       *dashboard.Dashboard
	screens    []screen
	active     int
	helpOpen   bool
	helpCursor int
	loadErr    string
	width      int
	height     int
	frame      int // logo shimmer animation frame
}

// NewApp creates the dashboard TUI. Tabs are numbered in this order.
func NewApp(d *dashboard.Dashboard) App {
	return App{
		dash: d,
		screens: []screen{
			newInquiriesScreen(d),
			newMediaScreen(d),
			newTestimonialsScreen(d),
			newTeamScreen(d),
			newPortfolioScreen(d),
			newCategoriesScreen(d),
			newSettingsScreen(d),
		},
	}
}

func (a App) Init() tea.Cmd {
	d := a.dash
	return tea.Batch(shimmerTickCmd(), func() tea.Msg {
		return loadedAllMsg{err: d.LoadAll(context.Background())}
	})
}

func (a App) screenIndex(name string) int {
	for i, s := range a.screens {
		if s.Name() == name {
			return i
		}
	}
	return -1
}

func (a App) routeTo(name string, msg tea.Msg) (App, tea.Cmd) {
	i := a.screenIndex(name)
	if i < 0 {
		return a, nil
	}
	var cmd tea.Cmd
	a.screens[i], cmd = a.screens[i].Update(msg)
	return a, cmd
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + status(1) + help(1) = 5 lines
		body := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 5}
		for i := range a.screens {
			a.screens[i], _ = a.screens[i].Update(body)
		}
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case loadedAllMsg:
		a.loadErr = ""
		if msg.err != nil {
			a.loadErr = "Some sections failed to load: " + strings.ReplaceAll(msg.err.Error(), "\n", "; ")
		}
		for i := range a.screens {
			a.screens[i], _ = a.screens[i].Update(opResultMsg{screen: a.screens[i].Name()})
		}
		return a, nil

	case opResultMsg:
		return a.routeTo(msg.screen, msg)

	case formResultMsg:
		return a.routeTo(msg.screen, msg)

	case tea.KeyMsg:
		if a.helpOpen {
			return a.updateHelp(msg)
		}
		if !a.screens[a.active].Editing() {
			switch key := msg.String(); key {
			case "h", "?":
				a.helpOpen = true
				a.helpCursor = 0
				return a, nil
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1", "2", "3", "4", "5", "6", "7":
				i := int(key[0] - '1')
				if i < len(a.screens) && i != a.active {
					a.active = i
					return a, a.screens[i].Init()
				}
				return a, nil
			}
		} else if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.screens[a.active], cmd = a.screens[a.active].Update(msg)
	return a, cmd
}

func (a App) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := helpItems(a.dash.Settings.Get().WebsiteURL)
	switch msg.String() {
	case "h", "?", "esc":
		a.helpOpen = false
	case "q", "ctrl+c":
		return a, tea.Quit
	case "j", "down":
		if a.helpCursor < len(items)-1 {
			a.helpCursor++
		}
	case "k", "up":
		if a.helpCursor > 0 {
			a.helpCursor--
		}
	case "enter":
		if a.helpCursor < len(items) {
			openURL(items[a.helpCursor].url) //nolint:errcheck // best-effort browser open
		}
	}
	return a, nil
}

func (a App) View() string {
	logo := renderShimmerLogo(a.frame)
	header := strings.Repeat(" ", max((a.width-lipgloss.Width(logo))/2, 0)) + logo

	o := a.dash.Overview()
	statsLine := metaStyle.Render(fmt.Sprintf("%d unread . %d pending reviews . %d active members . %d projects",
		o.Inquiries.Unread, o.Testimonials.Pending, o.Team.Active, o.Portfolio.Total))
	header += "\n" + strings.Repeat(" ", max((a.width-lipgloss.Width(statsLine))/2, 0)) + statsLine

	colWidth := 0
	if len(a.screens) > 0 {
		colWidth = a.width / len(a.screens)
	}
	var tabBar strings.Builder
	for i, s := range a.screens {
		key := fmt.Sprintf("%d", i+1)
		name := strings.ToUpper(s.Name()[:1]) + s.Name()[1:]
		var label string
		if i == a.active {
			label = accentStyle.Render(key) + " " + selectedStyle.Underline(true).Render(name)
		} else {
			label = metaStyle.Render(key) + " " + dimStyle.Render(name)
		}
		if s.Name() == screenInquiries && o.Inquiries.Unread > 0 {
			label += " " + warnStyle.Render(fmt.Sprintf("%d", o.Inquiries.Unread))
		}
		w := lipgloss.Width(label)
		left := max((colWidth-w)/2, 0)
		right := max(colWidth-w-left, 0)
		tabBar.WriteString(strings.Repeat(" ", left) + label + strings.Repeat(" ", right))
	}

	current := a.screens[a.active]
	body := current.View()
	help := current.Help()
	if a.helpOpen {
		body = helpView(helpItems(a.dash.Settings.Get().WebsiteURL), a.helpCursor)
		help = helpBar([2]string{"j/k", "nav"}, [2]string{"enter", "open"}, [2]string{"esc", "close"})
	}

	status := ""
	if a.loadErr != "" {
		status = " " + errorStyle.Render(truncStr(a.loadErr, max(a.width-2, 20)))
	}

	chrome := 5
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s", header, tabBar.String(), body, status, help)
}
