package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zoharmedia/zohar/internal/dashboard"
	"github.com/zoharmedia/zohar/internal/logger"
	"github.com/zoharmedia/zohar/internal/testutil"
	"github.com/zoharmedia/zohar/pkg/domain"
	"github.com/zoharmedia/zohar/pkg/validation"
)

type backend struct {
	inquiries    *testutil.Gateway[domain.Inquiry]
	media        *testutil.Gateway[domain.MediaItem]
	testimonials *testutil.Gateway[domain.Testimonial]
	team         *testutil.Gateway[domain.TeamMember]
	categories   *testutil.Gateway[domain.PortfolioCategory]
	portfolio    *testutil.Gateway[domain.PortfolioItem]
	stats        *testutil.Store[domain.BusinessStats]
	settings     *testutil.Store[domain.SystemSettings]
}

func newBackend() *backend {
	return &backend{
		inquiries: testutil.NewGateway("inq", func(i domain.Inquiry) string { return i.ID }, func(i *domain.Inquiry, id string) { i.ID = id },
			domain.Inquiry{ID: "i1", Name: "Ada", Email: "ada@example.com", Subject: "Wedding reel pricing", Message: "How much for a reel?", Status: domain.InquiryUnread, Type: domain.InquiryPricing, Date: "2025-06-01"},
			domain.Inquiry{ID: "i2", Name: "Kofi", Email: "kofi@example.com", Subject: "Thank you", Message: "Loved the final cut.", Status: domain.InquiryResolved, Type: domain.InquiryGeneral, Date: "2025-06-02"},
			domain.Inquiry{ID: "i3", Name: "Mina", Email: "mina@example.com", Subject: "Brand film", Message: "Looking for a partner.", Status: domain.InquiryResponded, Type: domain.InquiryCollaboration, Date: "2025-06-03"},
		),
		media: testutil.NewGateway("med", func(m domain.MediaItem) string { return m.ID }, func(m *domain.MediaItem, id string) { m.ID = id }),
		testimonials: testutil.NewGateway("tst", func(t domain.Testimonial) string { return t.ID }, func(t *domain.Testimonial, id string) { t.ID = id },
			domain.Testimonial{ID: "t1", Name: "Kofi", Message: "Brilliant work from start to finish.", Rating: 5, Status: domain.TestimonialPending},
		),
		team: testutil.NewGateway("tm", func(m domain.TeamMember) string { return m.ID }, func(m *domain.TeamMember, id string) { m.ID = id },
			domain.TeamMember{ID: "m1", Name: "Rae", Role: "Editor", Email: "rae@example.com", JoinDate: "2024-01-01", Status: domain.MemberActive},
		),
		categories: testutil.NewGateway("cat", func(c domain.PortfolioCategory) string { return c.ID }, func(c *domain.PortfolioCategory, id string) { c.ID = id },
			domain.PortfolioCategory{ID: "c1", Name: "Weddings", Color: "#ff0000"},
			domain.PortfolioCategory{ID: "c2", Name: "Commercial", Color: "#00ff00"},
		),
		portfolio: testutil.NewGateway("prj", func(p domain.PortfolioItem) string { return p.ID }, func(p *domain.PortfolioItem, id string) { p.ID = id },
			domain.PortfolioItem{ID: "p1", Title: "Coastal Wedding", Description: "Two days on the coast", CategoryID: "c1", ProjectDate: "2025-05-01", Status: domain.PortfolioCompleted},
		),
		stats:    testutil.NewStore(&domain.BusinessStats{CompletedProjects: 4}),
		settings: testutil.NewStore(&domain.SystemSettings{BusinessName: "Zohar Media", WebsiteURL: "https://zohar.example"}),
	}
}

func (b *backend) gateways() dashboard.Gateways {
	return dashboard.Gateways{
		Inquiries:    b.inquiries,
		Media:        b.media,
		Testimonials: b.testimonials,
		Team:         b.team,
		Categories:   b.categories,
		Portfolio:    b.portfolio,
		Stats:        b.stats,
		Settings:     b.settings,
	}
}

// newTestDashboard returns a loaded dashboard over in-memory gateways.
func newTestDashboard(t *testing.T) (*dashboard.Dashboard, *backend) {
	t.Helper()
	b := newBackend()
	d := dashboard.New(b.gateways(), validation.New(), logger.Discard())
	if err := d.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	return d, b
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press sends keys to a screen, running each returned command and feeding
// its message back the way the program loop would.
func press(s screen, keys ...string) screen {
	for _, k := range keys {
		var cmd tea.Cmd
		s, cmd = s.Update(keyMsg(k))
		s = settle(s, cmd)
	}
	return s
}

func settle(s screen, cmd tea.Cmd) screen {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return s
		}
		s, cmd = s.Update(msg)
	}
	return s
}

// typeText enters text one rune at a time.
func typeText(s screen, text string) screen {
	for _, r := range text {
		s = press(s, string(r))
	}
	return s
}
