// Package stats derives dashboard counters from loaded collections. Every
// function is a pure projection over the full, unfiltered list.
package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/zoharmedia/zohar/pkg/domain"
)

// Count returns how many items satisfy pred.
func Count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}

// CountBy groups items by key and counts each group.
func CountBy[T any, K comparable](items []T, key func(T) K) map[K]int {
	out := make(map[K]int)
	for _, it := range items {
		out[key(it)]++
	}
	return out
}

// Distinct returns the sorted set of non-empty keys.
func Distinct[T any](items []T, key func(T) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range items {
		k := key(it)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// InquirySummary counts inquiries by status and type.
type InquirySummary struct {
	Total     int
	Unread    int
	Responded int
	Resolved  int
	ByType    map[domain.InquiryType]int
}

// Inquiries summarizes the inbox.
func Inquiries(items []domain.Inquiry) InquirySummary {
	by := CountBy(items, func(i domain.Inquiry) domain.InquiryStatus { return i.Status })
	return InquirySummary{
		Total:     len(items),
		Unread:    by[domain.InquiryUnread],
		Responded: by[domain.InquiryResponded],
		Resolved:  by[domain.InquiryResolved],
		ByType:    CountBy(items, func(i domain.Inquiry) domain.InquiryType { return i.Type }),
	}
}

// MediaSummary counts library items.
type MediaSummary struct {
	Total  int
	Images int
	Videos int
	Tags   int // distinct tags across the library
}

// Media summarizes the media library.
func Media(items []domain.MediaItem) MediaSummary {
	tags := map[string]bool{}
	for _, m := range items {
		for _, t := range m.Tags {
			tags[t] = true
		}
	}
	return MediaSummary{
		Total:  len(items),
		Images: Count(items, func(m domain.MediaItem) bool { return m.Type == domain.MediaImage }),
		Videos: Count(items, func(m domain.MediaItem) bool { return m.Type == domain.MediaVideo }),
		Tags:   len(tags),
	}
}

// TestimonialSummary counts testimonials by moderation state.
type TestimonialSummary struct {
	Total         int
	Pending       int
	Approved      int
	Rejected      int
	Featured      int
	AverageRating float64 // over every testimonial, 0 when empty
}

// Testimonials summarizes moderation state and ratings.
func Testimonials(items []domain.Testimonial) TestimonialSummary {
	by := CountBy(items, func(t domain.Testimonial) domain.TestimonialStatus { return t.Status })
	s := TestimonialSummary{
		Total:    len(items),
		Pending:  by[domain.TestimonialPending],
		Approved: by[domain.TestimonialApproved],
		Rejected: by[domain.TestimonialRejected],
		Featured: Count(items, func(t domain.Testimonial) bool { return t.Featured }),
	}
	if len(items) > 0 {
		sum := 0
		for _, t := range items {
			sum += t.Rating
		}
		s.AverageRating = float64(sum) / float64(len(items))
	}
	return s
}

// TeamSummary counts the roster.
type TeamSummary struct {
	Total    int
	Active   int
	Inactive int
	Roles    []string
}

// Team summarizes the roster.
func Team(items []domain.TeamMember) TeamSummary {
	return TeamSummary{
		Total:    len(items),
		Active:   Count(items, func(m domain.TeamMember) bool { return m.Status == domain.MemberActive }),
		Inactive: Count(items, func(m domain.TeamMember) bool { return m.Status == domain.MemberInactive }),
		Roles:    Distinct(items, func(m domain.TeamMember) string { return m.Role }),
	}
}

// PortfolioSummary counts projects.
type PortfolioSummary struct {
	Total      int
	Completed  int
	InProgress int
	Draft      int
	Featured   int
	ByCategory map[string]int // category ID to project count
}

// Portfolio summarizes projects by status and category.
func Portfolio(items []domain.PortfolioItem) PortfolioSummary {
	by := CountBy(items, func(p domain.PortfolioItem) domain.PortfolioStatus { return p.Status })
	return PortfolioSummary{
		Total:      len(items),
		Completed:  by[domain.PortfolioCompleted],
		InProgress: by[domain.PortfolioInProgress],
		Draft:      by[domain.PortfolioDraft],
		Featured:   Count(items, func(p domain.PortfolioItem) bool { return p.Featured }),
		ByCategory: CountBy(items, func(p domain.PortfolioItem) string { return p.CategoryID }),
	}
}

// ProjectsIn counts the projects that reference a category.
func ProjectsIn(categoryID string, items []domain.PortfolioItem) int {
	return Count(items, func(p domain.PortfolioItem) bool { return p.CategoryID == categoryID })
}

// CategoryProjects returns the project count for every category, including
// categories with none.
func CategoryProjects(categories []domain.PortfolioCategory, items []domain.PortfolioItem) map[string]int {
	by := CountBy(items, func(p domain.PortfolioItem) string { return p.CategoryID })
	out := make(map[string]int, len(categories))
	for _, c := range categories {
		out[c.ID] = by[c.ID]
	}
	return out
}

// BusinessSummary is the business stats record with derived values filled in.
type BusinessSummary struct {
	CompletedProjects   int
	HappyClients        int
	PerspectiveClients  int
	TotalRevenue        decimal.Decimal
	AverageProjectValue decimal.Decimal
	Derived             bool // AverageProjectValue was computed, not stored
}

// Business fills in the average project value from revenue and completed
// projects when the record does not carry one.
func Business(s domain.BusinessStats) BusinessSummary {
	out := BusinessSummary{
		CompletedProjects:  s.CompletedProjects,
		HappyClients:       s.HappyClients,
		PerspectiveClients: s.PerspectiveClients,
		TotalRevenue:       decimal.Zero,
	}
	if s.TotalRevenue.Valid {
		out.TotalRevenue = s.TotalRevenue.Decimal
	}
	switch {
	case s.AverageProjectValue.Valid:
		out.AverageProjectValue = s.AverageProjectValue.Decimal
	case s.CompletedProjects > 0:
		out.AverageProjectValue = out.TotalRevenue.Div(decimal.NewFromInt(int64(s.CompletedProjects))).Round(2)
		out.Derived = true
	default:
		out.AverageProjectValue = decimal.Zero
	}
	return out
}

// Overview is the headline row of the dashboard.
type Overview struct {
	Inquiries    InquirySummary
	Media        MediaSummary
	Testimonials TestimonialSummary
	Team         TeamSummary
	Portfolio    PortfolioSummary
	Categories   int
}
