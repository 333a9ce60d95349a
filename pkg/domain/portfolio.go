package domain

import "encoding/json"

// PortfolioStatus is the production state of a portfolio project.
type PortfolioStatus string

const (
	PortfolioCompleted  PortfolioStatus = "completed"
	PortfolioInProgress PortfolioStatus = "in-progress"
	PortfolioDraft      PortfolioStatus = "draft"
)

// PortfolioStatuses lists every portfolio status.
var PortfolioStatuses = []PortfolioStatus{PortfolioCompleted, PortfolioInProgress, PortfolioDraft}

var portfolioStatusSet = setOf(PortfolioStatuses)

// Valid reports whether s is a known portfolio status.
func (s PortfolioStatus) Valid() bool { return portfolioStatusSet[s] }

func (s PortfolioStatus) MarshalText() ([]byte, error) { return []byte(wireName(string(s))), nil }

func (s *PortfolioStatus) UnmarshalText(b []byte) error {
	*s = PortfolioStatus(localName(string(b)))
	return nil
}

// PortfolioCategory groups portfolio items. It cannot be deleted while
// any item references it.
type PortfolioCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color"` // hex, e.g. "#3B82F6"
	CreatedAt   string `json:"created_at,omitempty"`
}

// PortfolioItem is a showcased project.
type PortfolioItem struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	CategoryID   string          `json:"category_id,omitempty"`
	Images       Images          `json:"images,omitempty"`
	Thumbnail    string          `json:"thumbnail_url,omitempty"`
	Client       string          `json:"client_name,omitempty"`
	ProjectDate  string          `json:"project_date,omitempty"`
	Status       PortfolioStatus `json:"status"`
	Featured     bool            `json:"featured"`
	Tags         Tags            `json:"tags,omitempty"`
	Technologies Technologies    `json:"technologies,omitempty"`
	TeamMembers  MemberRefs      `json:"team_members,omitempty"`
	ProjectURL   string          `json:"project_url,omitempty"`
	Testimonial  string          `json:"testimonial,omitempty"`
}

// UnmarshalJSON also accepts the nested category object returned by queries.
func (p *PortfolioItem) UnmarshalJSON(data []byte) error {
	type plain PortfolioItem
	var raw struct {
		plain
		Category *struct {
			ID string `json:"id"`
		} `json:"category"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = PortfolioItem(raw.plain)
	if p.CategoryID == "" && raw.Category != nil {
		p.CategoryID = raw.Category.ID
	}
	return nil
}
