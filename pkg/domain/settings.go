package domain

import "github.com/shopspring/decimal"

// BusinessStats are the headline numbers shown on the public site.
// There is exactly one record.
type BusinessStats struct {
	ID                  string              `json:"id,omitempty"`
	CompletedProjects   int                 `json:"completed_projects"`
	HappyClients        int                 `json:"happy_clients"`
	PerspectiveClients  int                 `json:"perspective_clients"`
	TotalRevenue        decimal.NullDecimal `json:"total_revenue"`
	AverageProjectValue decimal.NullDecimal `json:"average_project_value"`
	IsPublic            bool                `json:"is_public"`
	AutoUpdate          bool                `json:"auto_update"`
}

// Theme is the admin colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Themes lists every theme.
var Themes = []Theme{ThemeLight, ThemeDark}

var themeSet = setOf(Themes)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool { return themeSet[t] }

func (t Theme) MarshalText() ([]byte, error) { return []byte(wireName(string(t))), nil }

func (t *Theme) UnmarshalText(b []byte) error {
	*t = Theme(localName(string(b)))
	return nil
}

// SystemSettings hold business identity details. There is exactly one record.
type SystemSettings struct {
	ID                  string `json:"id,omitempty"`
	BusinessName        string `json:"business_name"`
	BusinessDescription string `json:"business_description,omitempty"`
	Industry            string `json:"industry,omitempty"`
	WebsiteURL          string `json:"website_url,omitempty"`
	ContactEmail        string `json:"contact_email,omitempty"`
	Theme               Theme  `json:"theme,omitempty"`
}
