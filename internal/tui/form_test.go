package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/zoharmedia/zohar/internal/collection"
	"github.com/zoharmedia/zohar/pkg/domain"
	"github.com/zoharmedia/zohar/pkg/validation"
)

func TestFormInlineErrorsKeepFormOpen(t *testing.T) {
	m, _, b := inquiriesTable(t)

	s := press(m, "n")
	if !s.Editing() {
		t.Fatal("expected new form to open")
	}
	s = press(s, "ctrl+s")
	if !s.Editing() {
		t.Fatal("expected form to stay open after a failed submit")
	}
	view := s.View()
	for _, want := range []string{"Name is required", "Please enter a valid email address"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in form view:\n%s", want, view)
		}
	}
	if b.inquiries.CallCount("create") != 0 {
		t.Error("invalid form reached the gateway")
	}
}

func TestFormSubmitSuccessClosesForm(t *testing.T) {
	m, d, _ := inquiriesTable(t)

	s := press(m, "n")
	s = typeText(s, "Lena")
	s = press(s, "tab")
	s = typeText(s, "lena@example.com")
	s = press(s, "tab")
	s = typeText(s, "Music video")
	s = press(s, "tab")
	s = typeText(s, "We need a three minute video.")
	s = press(s, "tab", "right", "right", "ctrl+s")

	if s.Editing() {
		t.Fatalf("expected form to close, view:\n%s", s.View())
	}
	if !strings.Contains(s.View(), "Inquiry added") {
		t.Errorf("expected success status:\n%s", s.View())
	}
	if got := len(d.Inquiries.Items()); got != 4 {
		t.Fatalf("items = %d, want 4", got)
	}
	added := d.Inquiries.Items()[0]
	if added.Name != "Lena" {
		added = d.Inquiries.Items()[3]
	}
	if added.Name != "Lena" || added.Type != domain.InquiryPricing {
		t.Errorf("added = %+v", added)
	}
	if added.Status != domain.InquiryUnread {
		t.Errorf("new inquiry status = %q, want unread", added.Status)
	}
}

func TestFormEscCancels(t *testing.T) {
	m, _, _ := inquiriesTable(t)
	s := press(m, "n")
	s = typeText(s, "half typed")
	s = press(s, "esc")
	if s.Editing() {
		t.Error("expected esc to close the form")
	}
}

func TestRespondRequiresText(t *testing.T) {
	m, d, b := inquiriesTable(t)
	s := press(m, "e", "ctrl+s")
	if !strings.Contains(s.View(), "Response is required") {
		t.Errorf("expected inline error:\n%s", s.View())
	}
	if b.inquiries.CallCount("update") != 0 {
		t.Error("empty response reached the gateway")
	}

	s = typeText(s, "Happy to help")
	press(s, "ctrl+s")
	got, _ := d.Inquiries.Get("i1")
	if got.Response != "Happy to help" || got.Status != domain.InquiryResponded {
		t.Errorf("after respond: %+v", got)
	}
}

func TestTestimonialBadRatingNeverSent(t *testing.T) {
	d, b := newTestDashboard(t)
	s := press(newTestimonialsScreen(d), "e")
	// Focus the rating field and replace "5" with text.
	s = press(s, "tab", "tab", "tab", "tab", "backspace")
	s = typeText(s, "abc")
	s = press(s, "ctrl+s")

	if !s.Editing() {
		t.Fatal("expected form to stay open")
	}
	if !strings.Contains(s.View(), "Rating must be a whole number") {
		t.Errorf("expected rating error:\n%s", s.View())
	}
	if b.testimonials.CallCount("update") != 0 {
		t.Error("unparsable rating reached the gateway")
	}
}

func TestFormMultilineEnter(t *testing.T) {
	f := newForm("x", "Note", nil,
		formField{key: "body", label: "Body", multiline: true},
		formField{key: "title", label: "Title"},
	)
	f, _ = f.Update(keyMsg("a"))
	f, _ = f.Update(keyMsg("enter"))
	f, _ = f.Update(keyMsg("b"))
	if got := f.values()["body"]; got != "a\nb" {
		t.Errorf("multiline value = %q", got)
	}
	if f.focus != 0 {
		t.Error("enter in a multiline field should not move focus")
	}
}

func TestFormOptionsDefaultAndCycle(t *testing.T) {
	f := newForm("x", "Pick", nil, formField{key: "theme", label: "Theme", options: []string{"light", "dark"}})
	if got := f.values()["theme"]; got != "light" {
		t.Fatalf("default option = %q, want light", got)
	}
	f, _ = f.Update(keyMsg("right"))
	if got := f.values()["theme"]; got != "dark" {
		t.Errorf("after right = %q, want dark", got)
	}
	f, _ = f.Update(keyMsg("z"))
	if got := f.values()["theme"]; got != "dark" {
		t.Errorf("typing into a choice field changed it to %q", got)
	}
	f, _ = f.Update(keyMsg("left"))
	if got := f.values()["theme"]; got != "light" {
		t.Errorf("after left = %q, want light", got)
	}
}

func TestFormSubmitIgnoresKeysWhileSaving(t *testing.T) {
	f := newForm("x", "Slow", func(context.Context, formValues) (string, error) { return "ok", nil },
		formField{key: "name", label: "Name"},
	)
	f, cmd := f.Update(keyMsg("ctrl+s"))
	if cmd == nil || !f.submitting {
		t.Fatal("expected a submit command")
	}
	f, _ = f.Update(keyMsg("q"))
	if got := f.values()["name"]; got != "" {
		t.Errorf("key during save edited the form: %q", got)
	}
	if !strings.Contains(f.View(), "saving...") {
		t.Error("expected saving indicator")
	}
}

func TestCycle(t *testing.T) {
	opts := []string{"a", "b", "c"}
	tests := []struct {
		current string
		forward bool
		want    string
	}{
		{"a", true, "b"},
		{"c", true, "a"},
		{"a", false, "c"},
		{"b", false, "a"},
		{"missing", true, "a"},
		{"missing", false, "c"},
	}
	for _, tc := range tests {
		if got := cycle(opts, tc.current, tc.forward); got != tc.want {
			t.Errorf("cycle(%q, forward=%v) = %q, want %q", tc.current, tc.forward, got, tc.want)
		}
	}
	if got := cycle(nil, "x", true); got != "x" {
		t.Errorf("cycle with no options = %q", got)
	}
}

func TestFormUnmatchedErrorsRenderInKeyOrder(t *testing.T) {
	f := newForm("x", "Project", nil, formField{key: "title", label: "Title"})
	f, _ = f.Update(formResultMsg{screen: "x", err: &collection.ValidationError{Fields: validation.FieldErrors{
		"status":      "Status is invalid",
		"category_id": "Category is required",
		"images":      "Images must be links",
	}}})

	for i := 0; i < 5; i++ {
		view := f.View()
		c := strings.Index(view, "Category is required")
		im := strings.Index(view, "Images must be links")
		st := strings.Index(view, "Status is invalid")
		if c < 0 || im < 0 || st < 0 {
			t.Fatalf("missing errors in view:\n%s", view)
		}
		if c > im || im > st {
			t.Fatalf("errors out of key order:\n%s", view)
		}
	}
}
