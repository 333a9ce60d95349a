package domain

import "encoding/json"

// TestimonialStatus is the moderation state of a testimonial.
type TestimonialStatus string

const (
	TestimonialPending  TestimonialStatus = "pending"
	TestimonialApproved TestimonialStatus = "approved"
	TestimonialRejected TestimonialStatus = "rejected"
)

// TestimonialStatuses lists every testimonial status.
var TestimonialStatuses = []TestimonialStatus{TestimonialPending, TestimonialApproved, TestimonialRejected}

var testimonialStatusSet = setOf(TestimonialStatuses)

// Valid reports whether s is a known testimonial status.
func (s TestimonialStatus) Valid() bool { return testimonialStatusSet[s] }

func (s TestimonialStatus) MarshalText() ([]byte, error) { return []byte(wireName(string(s))), nil }

func (s *TestimonialStatus) UnmarshalText(b []byte) error {
	*s = TestimonialStatus(localName(string(b)))
	return nil
}

// Ratings are whole stars.
const (
	MinRating = 1
	MaxRating = 5
)

// Testimonial is a client quote shown on the public site once approved.
type Testimonial struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Company         string            `json:"company,omitempty"`
	Email           string            `json:"email,omitempty"`
	Message         string            `json:"message"`
	Rating          int               `json:"rating"`
	Date            string            `json:"testimonial_date,omitempty"`
	Status          TestimonialStatus `json:"status"`
	Featured        bool              `json:"featured"`
	Avatar          string            `json:"avatar_url,omitempty"`
	PortfolioItemID string            `json:"portfolio_item_id,omitempty"`
}

// UnmarshalJSON also accepts the nested portfolio_item object returned by queries.
func (t *Testimonial) UnmarshalJSON(data []byte) error {
	type plain Testimonial
	var raw struct {
		plain
		PortfolioItem *struct {
			ID string `json:"id"`
		} `json:"portfolio_item"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = Testimonial(raw.plain)
	if t.PortfolioItemID == "" && raw.PortfolioItem != nil {
		t.PortfolioItemID = raw.PortfolioItem.ID
	}
	return nil
}

// Stars clamps the rating into [MinRating, MaxRating] for display.
func (t Testimonial) Stars() int {
	return min(max(t.Rating, MinRating), MaxRating)
}
