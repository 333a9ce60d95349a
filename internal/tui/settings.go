package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/zoharmedia/zohar/internal/dashboard"
	"github.com/zoharmedia/zohar/pkg/domain"
)

const screenSettings = "settings"

// settingsModel shows the overview counters and edits the two singleton
// records: business stats and system settings.
type settingsModel struct {
	d         *dashboard.Dashboard
	form      *formModel
	loading   bool
	status    string
	statusErr bool
	width     int
}

func newSettingsScreen(d *dashboard.Dashboard) screen {
	return settingsModel{d: d, loading: !d.Stats.Loaded() || !d.Settings.Loaded()}
}

func (m settingsModel) Name() string { return screenSettings }

func (m settingsModel) Init() tea.Cmd {
	if !m.loading {
		return nil
	}
	return m.load()
}

func (m settingsModel) load() tea.Cmd {
	d := m.d
	return func() tea.Msg {
		ctx := context.Background()
		err := errors.Join(d.Stats.Load(ctx), d.Settings.Load(ctx))
		return opResultMsg{screen: screenSettings, err: err}
	}
}

func (m settingsModel) Editing() bool { return m.form != nil }

func (m settingsModel) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case opResultMsg:
		m.loading = false
		m.status, m.statusErr = msg.done, false
		if msg.err != nil {
			m.status, m.statusErr = describe(msg.err), true
		}
	case formResultMsg:
		if m.form == nil {
			return m, nil
		}
		if msg.err == nil {
			m.form = nil
			m.status, m.statusErr = msg.done, false
			return m, nil
		}
		f, cmd := m.form.Update(msg)
		m.form = &f
		return m, cmd
	case tea.KeyMsg:
		m.status = ""
		if m.form != nil {
			if msg.String() == "esc" {
				m.form = nil
				return m, nil
			}
			f, cmd := m.form.Update(msg)
			m.form = &f
			return m, cmd
		}
		switch msg.String() {
		case "e":
			f := m.statsForm()
			m.form = &f
		case "s":
			f := m.settingsForm()
			m.form = &f
		case "p":
			return m, m.togglePublic()
		case "r":
			m.loading = true
			return m, m.load()
		}
	}
	return m, nil
}

func (m settingsModel) togglePublic() tea.Cmd {
	stats := m.d.Stats
	return func() tea.Msg {
		updated, err := stats.Save(context.Background(), func(s *domain.BusinessStats) { s.IsPublic = !s.IsPublic })
		done := "Stats hidden from the site"
		if updated.IsPublic {
			done = "Stats shown on the site"
		}
		return opResultMsg{screen: screenSettings, done: done, err: err}
	}
}

func moneyString(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(2)
}

func parseMoney(v formValues, key, label string) (decimal.NullDecimal, error) {
	raw := strings.ReplaceAll(v.get(key), ",", "")
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, invalid(key, label+" must be a number")
	}
	return decimal.NewNullDecimal(d), nil
}

func (m settingsModel) statsForm() formModel {
	s := m.d.Stats.Get()
	stats := m.d.Stats
	return newForm(screenSettings, "Business statistics", func(ctx context.Context, v formValues) (string, error) {
		completed, err := parseInt(v, "completed_projects", "Completed projects")
		if err != nil {
			return "", err
		}
		happy, err := parseInt(v, "happy_clients", "Happy clients")
		if err != nil {
			return "", err
		}
		prospects, err := parseInt(v, "perspective_clients", "Perspective clients")
		if err != nil {
			return "", err
		}
		revenue, err := parseMoney(v, "total_revenue", "Total revenue")
		if err != nil {
			return "", err
		}
		average, err := parseMoney(v, "average_project_value", "Average project value")
		if err != nil {
			return "", err
		}
		_, err = stats.Save(ctx, func(s *domain.BusinessStats) {
			s.CompletedProjects = completed
			s.HappyClients = happy
			s.PerspectiveClients = prospects
			s.TotalRevenue = revenue
			s.AverageProjectValue = average
			s.AutoUpdate = v.get("auto_update") == "yes"
		})
		return "Statistics saved", err
	},
		formField{key: "completed_projects", label: "Completed projects", value: strconv.Itoa(s.CompletedProjects)},
		formField{key: "happy_clients", label: "Happy clients", value: strconv.Itoa(s.HappyClients)},
		formField{key: "perspective_clients", label: "Perspective clients", value: strconv.Itoa(s.PerspectiveClients)},
		formField{key: "total_revenue", label: "Total revenue", value: moneyString(s.TotalRevenue)},
		formField{key: "average_project_value", label: "Average project value", value: moneyString(s.AverageProjectValue), hint: "blank to derive"},
		formField{key: "auto_update", label: "Auto update", value: yesNo(s.AutoUpdate), options: []string{"no", "yes"}},
	)
}

func (m settingsModel) settingsForm() formModel {
	s := m.d.Settings.Get()
	settings := m.d.Settings
	return newForm(screenSettings, "System settings", func(ctx context.Context, v formValues) (string, error) {
		_, err := settings.Save(ctx, func(s *domain.SystemSettings) {
			s.BusinessName = v.get("business_name")
			s.BusinessDescription = v.get("business_description")
			s.Industry = v.get("industry")
			s.WebsiteURL = v.get("website_url")
			s.ContactEmail = v.get("contact_email")
			s.Theme = domain.Theme(v.get("theme"))
		})
		return "Settings saved", err
	},
		formField{key: "business_name", label: "Business name", value: s.BusinessName},
		formField{key: "business_description", label: "Description", value: s.BusinessDescription, multiline: true},
		formField{key: "industry", label: "Industry", value: s.Industry},
		formField{key: "website_url", label: "Website", value: s.WebsiteURL},
		formField{key: "contact_email", label: "Contact email", value: s.ContactEmail},
		formField{key: "theme", label: "Theme", value: string(s.Theme), options: domain.Strings(domain.Themes)},
	)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (m settingsModel) Help() string {
	if m.form != nil {
		return helpBar([2]string{"tab", "next"}, [2]string{"←/→", "choose"}, [2]string{"ctrl+s", "save"}, [2]string{"esc", "cancel"})
	}
	return helpBar([2]string{"1-7", "tabs"}, [2]string{"e", "edit stats"}, [2]string{"p", "public"}, [2]string{"s", "edit settings"}, [2]string{"r", "reload"}, [2]string{"h", "help"}, [2]string{"q", "quit"})
}

func (m settingsModel) View() string {
	if m.form != nil {
		return m.form.View()
	}
	if m.loading {
		return " " + dimStyle.Render("loading...")
	}

	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "   %s %s\n", metaStyle.Render(fmt.Sprintf("%-22s", label)), value)
	}

	o := m.d.Overview()
	b.WriteString(" " + titleStyle.Render("OVERVIEW") + "\n")
	row("Inquiries", fmt.Sprintf("%d  %s", o.Inquiries.Total, dimStyle.Render(fmt.Sprintf("%d unread  %d responded  %d resolved", o.Inquiries.Unread, o.Inquiries.Responded, o.Inquiries.Resolved))))
	row("Media", fmt.Sprintf("%d  %s", o.Media.Total, dimStyle.Render(fmt.Sprintf("%d images  %d videos  %d tags", o.Media.Images, o.Media.Videos, o.Media.Tags))))
	row("Testimonials", fmt.Sprintf("%d  %s", o.Testimonials.Total, dimStyle.Render(fmt.Sprintf("%d pending  %d approved  avg %.1f", o.Testimonials.Pending, o.Testimonials.Approved, o.Testimonials.AverageRating))))
	row("Team", fmt.Sprintf("%d  %s", o.Team.Total, dimStyle.Render(fmt.Sprintf("%d active  %d roles", o.Team.Active, len(o.Team.Roles)))))
	row("Portfolio", fmt.Sprintf("%d  %s", o.Portfolio.Total, dimStyle.Render(fmt.Sprintf("%d completed  %d in progress  %d featured", o.Portfolio.Completed, o.Portfolio.InProgress, o.Portfolio.Featured))))
	row("Categories", fmt.Sprintf("%d", o.Categories))

	biz := m.d.Business()
	raw := m.d.Stats.Get()
	b.WriteString("\n " + titleStyle.Render("BUSINESS") + "  " + helpKeyStyle.Render("e") + "\n")
	row("Completed projects", fmt.Sprintf("%d", biz.CompletedProjects))
	row("Happy clients", fmt.Sprintf("%d", biz.HappyClients))
	row("Perspective clients", fmt.Sprintf("%d", biz.PerspectiveClients))
	row("Total revenue", "$"+biz.TotalRevenue.StringFixed(2))
	avg := "$" + biz.AverageProjectValue.StringFixed(2)
	if biz.Derived {
		avg += " " + metaStyle.Render("(derived)")
	}
	row("Average project value", avg)
	row("Public", yesNo(raw.IsPublic)+"  "+helpKeyStyle.Render("p"))
	row("Auto update", yesNo(raw.AutoUpdate))

	s := m.d.Settings.Get()
	b.WriteString("\n " + titleStyle.Render("SYSTEM") + "  " + helpKeyStyle.Render("s") + "\n")
	row("Business name", orDash(s.BusinessName))
	row("Industry", orDash(s.Industry))
	row("Website", orDash(s.WebsiteURL))
	row("Contact email", orDash(s.ContactEmail))
	row("Theme", orDash(string(s.Theme)))
	if s.BusinessDescription != "" {
		b.WriteString("\n   " + normalStyle.Render(s.BusinessDescription) + "\n")
	}

	switch {
	case m.status != "" && m.statusErr:
		b.WriteString("\n " + errorStyle.Render(m.status))
	case m.status != "":
		b.WriteString("\n " + successStyle.Render(m.status))
	}
	return b.String()
}
