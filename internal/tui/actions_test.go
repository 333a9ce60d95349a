package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoharmedia/zohar/internal/collection"
	"github.com/zoharmedia/zohar/pkg/domain"
)

func stubClipboard(t *testing.T) *[]string {
	t.Helper()
	var copied []string
	orig := writeClipboard
	writeClipboard = func(s string) error { copied = append(copied, s); return nil }
	t.Cleanup(func() { writeClipboard = orig })
	return &copied
}

func TestCopyEmailAction(t *testing.T) {
	copied := stubClipboard(t)
	m, _, _ := inquiriesTable(t)

	s := press(m, "c")
	if len(*copied) != 1 || (*copied)[0] != "ada@example.com" {
		t.Fatalf("copied = %v", *copied)
	}
	if !strings.Contains(s.View(), "Copied ada@example.com") {
		t.Errorf("expected status line:\n%s", s.View())
	}
}

func TestCopyFailureShowsError(t *testing.T) {
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard utility") }
	defer func() { writeClipboard = orig }()

	m, _, _ := inquiriesTable(t)
	s := press(m, "c")
	if !strings.Contains(s.View(), "no clipboard utility") {
		t.Errorf("expected clipboard error:\n%s", s.View())
	}
}

func TestOpenProjectAction(t *testing.T) {
	var opened []string
	orig := openURL
	openURL = func(url string) error { opened = append(opened, url); return nil }
	defer func() { openURL = orig }()

	d, _ := newTestDashboard(t)
	s := press(newPortfolioScreen(d), "o")
	if len(opened) != 0 {
		t.Fatalf("opened %v for a project without a link", opened)
	}
	if !strings.Contains(s.View(), "no link to open") {
		t.Errorf("expected missing link message:\n%s", s.View())
	}
}

func TestToggleFeaturedActions(t *testing.T) {
	d, _ := newTestDashboard(t)

	press(newPortfolioScreen(d), "f")
	if p, _ := d.Portfolio.Get("p1"); !p.Featured {
		t.Error("expected project featured")
	}

	press(newTestimonialsScreen(d), "f")
	if tm, _ := d.Testimonials.Get("t1"); !tm.Featured {
		t.Error("expected testimonial featured")
	}
}

func TestTestimonialModerationKeys(t *testing.T) {
	d, _ := newTestDashboard(t)
	s := newTestimonialsScreen(d)

	s = press(s, "a")
	if tm, _ := d.Testimonials.Get("t1"); tm.Status != domain.TestimonialApproved {
		t.Fatalf("after a: %q", tm.Status)
	}
	s = press(s, "R")
	if tm, _ := d.Testimonials.Get("t1"); tm.Status != domain.TestimonialRejected {
		t.Fatalf("after R: %q", tm.Status)
	}
	press(s, "p")
	if tm, _ := d.Testimonials.Get("t1"); tm.Status != domain.TestimonialPending {
		t.Errorf("after p: %q", tm.Status)
	}
}

func TestTeamToggleActive(t *testing.T) {
	d, _ := newTestDashboard(t)
	press(newTeamScreen(d), "t")
	if m, _ := d.Team.Get("m1"); m.Status != domain.MemberInactive {
		t.Errorf("status = %q, want inactive", m.Status)
	}
}

func TestParseInt(t *testing.T) {
	n, err := parseInt(formValues{"n": " 42 "}, "n", "Count")
	if err != nil || n != 42 {
		t.Errorf("parseInt = %d, %v", n, err)
	}
	n, err = parseInt(formValues{}, "n", "Count")
	if err != nil || n != 0 {
		t.Errorf("blank parseInt = %d, %v", n, err)
	}
	_, err = parseInt(formValues{"n": "4.5"}, "n", "Count")
	if got := collection.FieldErrors(err)["n"]; got != "Count must be a whole number" {
		t.Errorf("field error = %q", got)
	}
}

func TestParseSocialLinks(t *testing.T) {
	links, err := parseSocialLinks("instagram=https://instagram.com/rae, vimeo = https://vimeo.com/rae")
	if err != nil {
		t.Fatal(err)
	}
	if links["instagram"] != "https://instagram.com/rae" || links["vimeo"] != "https://vimeo.com/rae" {
		t.Errorf("links = %v", links)
	}
	if got := formatSocialLinks(links); got != "instagram=https://instagram.com/rae, vimeo=https://vimeo.com/rae" {
		t.Errorf("formatSocialLinks = %q", got)
	}

	if links, err := parseSocialLinks("  "); err != nil || links != nil {
		t.Errorf("blank = %v, %v", links, err)
	}

	_, err = parseSocialLinks("just-a-url")
	if got := collection.FieldErrors(err)["social_links"]; got == "" {
		t.Errorf("expected social_links error, got %v", err)
	}
}
