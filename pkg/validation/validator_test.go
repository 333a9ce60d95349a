package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoharmedia/zohar/pkg/domain"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
}

func newTestValidator() *Validator {
	return New(WithClock(fixedClock))
}

func validTestimonial() domain.Testimonial {
	return domain.Testimonial{
		Name:    "Amara Okafor",
		Company: "Lumen Events",
		Email:   "amara@lumen.example",
		Message: "The wedding film made our whole family cry.",
		Rating:  5,
	}
}

func TestTestimonialEmptyName(t *testing.T) {
	v := newTestValidator()
	in := validTestimonial()
	in.Name = ""

	_, errs := v.Testimonial(in)
	assert.Equal(t, FieldErrors{"name": "Name is required"}, errs)
}

func TestTestimonialWhitespaceNameIsBlank(t *testing.T) {
	v := newTestValidator()
	in := validTestimonial()
	in.Name = "   "

	_, errs := v.Testimonial(in)
	assert.Equal(t, "Name is required", errs["name"])
}

func TestTestimonialMessageBoundary(t *testing.T) {
	v := newTestValidator()

	in := validTestimonial()
	in.Message = strings.Repeat("é", 19)
	_, errs := v.Testimonial(in)
	assert.Equal(t, "Message must be at least 20 characters long", errs["message"])

	in.Message = strings.Repeat("é", 20)
	_, errs = v.Testimonial(in)
	assert.Nil(t, errs)

	in.Message = "  " + strings.Repeat("a", 19) + "  "
	_, errs = v.Testimonial(in)
	assert.Contains(t, errs, "message", "padding must not count towards the minimum")
}

func TestTestimonialRating(t *testing.T) {
	v := newTestValidator()
	tests := []struct {
		rating int
		want   string
	}{
		{0, "Rating must be at least 1"},
		{1, ""},
		{3, ""},
		{5, ""},
		{6, "Rating must be at most 5"},
		{-1, "Rating must be at least 1"},
	}
	for _, tt := range tests {
		in := validTestimonial()
		in.Rating = tt.rating
		_, errs := v.Testimonial(in)
		assert.Equal(t, tt.want, errs["rating"], "rating %d", tt.rating)
	}
}

func TestTestimonialDefaults(t *testing.T) {
	v := newTestValidator()
	out, errs := v.Testimonial(validTestimonial())
	require.Nil(t, errs)
	assert.Equal(t, domain.TestimonialPending, out.Status)
	assert.Equal(t, "2026-03-14", out.Date)
}

func TestTestimonialCompanyAndEmailOptional(t *testing.T) {
	v := newTestValidator()
	in := validTestimonial()
	in.Company = ""
	in.Email = ""

	out, errs := v.Testimonial(in)
	require.Nil(t, errs)
	assert.Empty(t, out.Company)
	assert.Empty(t, out.Email)

	in.Email = "amara-at-lumen"
	_, errs = v.Testimonial(in)
	assert.Equal(t, FieldErrors{"email": "Please enter a valid email address"}, errs)
}

func TestInquiryMessages(t *testing.T) {
	v := newTestValidator()
	_, errs := v.Inquiry(domain.Inquiry{
		Name:    "Jonas",
		Email:   "not-an-email",
		Subject: "",
		Message: "short",
	})
	assert.Equal(t, FieldErrors{
		"email":   "Please enter a valid email address",
		"subject": "Subject is required",
		"message": "Message must be at least 10 characters",
	}, errs)
}

func TestInquiryInvalidStatus(t *testing.T) {
	v := newTestValidator()
	_, errs := v.Inquiry(domain.Inquiry{
		Name:    "Jonas",
		Email:   "jonas@example.com",
		Subject: "Rates",
		Message: "What do you charge for a reel?",
		Status:  "archived",
	})
	assert.Equal(t, FieldErrors{"status": "Please select a valid status"}, errs)
}

func TestOptionalURL(t *testing.T) {
	v := newTestValidator()
	base := domain.TeamMember{Name: "Rae", Role: "Editor", Email: "rae@example.com", JoinDate: "2024-01-02"}

	_, errs := v.TeamMember(base)
	assert.Nil(t, errs, "empty avatar is allowed")

	withAvatar := base
	withAvatar.Avatar = "not a url"
	_, errs = v.TeamMember(withAvatar)
	assert.Equal(t, FieldErrors{"avatar_url": "Please enter a valid URL"}, errs)

	withLinks := base
	withLinks.SocialLinks = domain.SocialLinks{"vimeo": "vimeo.com/rae"}
	_, errs = v.TeamMember(withLinks)
	assert.Equal(t, "Please enter a valid URL", errs["social_links"])
}

func TestTeamMemberRequired(t *testing.T) {
	v := newTestValidator()
	_, errs := v.TeamMember(domain.TeamMember{})
	assert.Equal(t, FieldErrors{
		"name":      "Name is required",
		"role":      "Role is required",
		"email":     "Please enter a valid email address",
		"join_date": "Join date is required",
	}, errs)
}

func TestPortfolioCategoryColor(t *testing.T) {
	v := newTestValidator()
	_, errs := v.PortfolioCategory(domain.PortfolioCategory{Name: "Weddings", Color: "#3B82F6"})
	assert.Nil(t, errs)

	_, errs = v.PortfolioCategory(domain.PortfolioCategory{Name: "Weddings", Color: "blue"})
	assert.Equal(t, FieldErrors{"color": "Please enter a valid hex color"}, errs)

	_, errs = v.PortfolioCategory(domain.PortfolioCategory{})
	assert.Equal(t, FieldErrors{"name": "Name is required", "color": "Color is required"}, errs)
}

func TestPortfolioItem(t *testing.T) {
	v := newTestValidator()
	out, errs := v.PortfolioItem(domain.PortfolioItem{
		Title:       " Coastal Wedding ",
		Description: "Two-day shoot",
		CategoryID:  "c1",
		ProjectDate: "2025-06-01",
		Tags:        domain.Tags{"drone", "drone ", " 4k"},
	})
	require.Nil(t, errs)
	assert.Equal(t, "Coastal Wedding", out.Title)
	assert.Equal(t, domain.PortfolioDraft, out.Status)
	assert.Equal(t, domain.Tags{"drone", "4k"}, out.Tags)

	_, errs = v.PortfolioItem(domain.PortfolioItem{})
	assert.NotContains(t, errs, "category_id")
	assert.Equal(t, "Project date is required", errs["project_date"])
	assert.Equal(t, "Description is required", errs["description"])
}

func TestPortfolioItemWithoutCategory(t *testing.T) {
	v := newTestValidator()
	out, errs := v.PortfolioItem(domain.PortfolioItem{
		Title:       "Street Session",
		Description: "Uncategorised archive shoot",
		ProjectDate: "2024-03-02",
		Status:      domain.PortfolioDraft,
	})
	require.Nil(t, errs)
	assert.Empty(t, out.CategoryID)
}

func TestBusinessStatsNonNegative(t *testing.T) {
	v := newTestValidator()
	_, errs := v.BusinessStats(domain.BusinessStats{
		CompletedProjects: -1,
		TotalRevenue:      decimal.NewNullDecimal(decimal.NewFromInt(-5)),
	})
	assert.Equal(t, FieldErrors{
		"completed_projects": "Completed projects must be at least 0",
		"total_revenue":      "Total revenue must be at least 0",
	}, errs)
}

func TestSystemSettings(t *testing.T) {
	v := newTestValidator()
	out, errs := v.SystemSettings(domain.SystemSettings{BusinessName: " Zohar Media "})
	require.Nil(t, errs)
	assert.Equal(t, "Zohar Media", out.BusinessName)
	assert.Equal(t, domain.ThemeLight, out.Theme)

	_, errs = v.SystemSettings(domain.SystemSettings{})
	assert.Equal(t, FieldErrors{"business_name": "Business name is required"}, errs)
}

// Normalizing an already normalized value must not change it.
func TestNormalizeIdempotent(t *testing.T) {
	v := newTestValidator()

	first, errs := v.Testimonial(domain.Testimonial{
		Name:    "  Kofi ",
		Message: "  Fantastic crew, fantastic footage.  ",
		Rating:  4,
	})
	require.Nil(t, errs)
	second, errs := v.Testimonial(first)
	require.Nil(t, errs)
	assert.Equal(t, first, second)

	m1, errs := v.TeamMember(domain.TeamMember{
		Name: "Rae", Role: " Colorist ", Email: "rae@example.com", JoinDate: "2024-01-02",
		Skills: domain.Skills{"grading", " grading", "DaVinci"},
	})
	require.Nil(t, errs)
	m2, _ := v.TeamMember(m1)
	assert.Equal(t, m1, m2)
}

func TestValidateDispatch(t *testing.T) {
	v := newTestValidator()

	out, errs := v.Validate(KindPortfolioCategory, domain.PortfolioCategory{Name: "Film", Color: "#fff"})
	assert.Nil(t, errs)
	assert.IsType(t, domain.PortfolioCategory{}, out)

	_, errs = v.Validate(KindInquiry, domain.PortfolioCategory{})
	assert.Contains(t, errs, "input")
}
