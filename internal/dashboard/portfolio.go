package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zoharmedia/zohar/internal/collection"
	"github.com/zoharmedia/zohar/internal/stats"
	"github.com/zoharmedia/zohar/pkg/domain"
	"github.com/zoharmedia/zohar/pkg/validation"
)

func portfolioConfig(v *validation.Validator, log *slog.Logger) collection.Config[domain.PortfolioItem] {
	return collection.Config[domain.PortfolioItem]{
		Name:     "portfolio item",
		ID:       func(p domain.PortfolioItem) string { return p.ID },
		SetID:    func(p *domain.PortfolioItem, id string) { p.ID = id },
		Validate: v.PortfolioItem,
		Search:   func(p domain.PortfolioItem) []string { return []string{p.Title, p.Description, p.Client} },
		Facets: map[string]func(domain.PortfolioItem) string{
			FacetCategory: func(p domain.PortfolioItem) string { return p.CategoryID },
			FacetStatus:   func(p domain.PortfolioItem) string { return string(p.Status) },
		},
		SetStatus: func(p *domain.PortfolioItem, s string) { p.Status = domain.PortfolioStatus(s) },
		Logger:    log,
	}
}

func categoryConfig(v *validation.Validator, log *slog.Logger, guard func(domain.PortfolioCategory) error) collection.Config[domain.PortfolioCategory] {
	return collection.Config[domain.PortfolioCategory]{
		Name:     "portfolio category",
		ID:       func(c domain.PortfolioCategory) string { return c.ID },
		SetID:    func(c *domain.PortfolioCategory, id string) { c.ID = id },
		Validate: v.PortfolioCategory,
		Search:   func(c domain.PortfolioCategory) []string { return []string{c.Name, c.Description} },
		Guard:    guard,
		Logger:   log,
	}
}

// categoryGuard blocks deleting a category that projects still reference.
func (d *Dashboard) categoryGuard(c domain.PortfolioCategory) error {
	n := stats.ProjectsIn(c.ID, d.Portfolio.Items())
	if n > 0 {
		return &collection.GuardError{
			Message: fmt.Sprintf("This category has %d project(s). Please reassign or delete the projects first.", n),
		}
	}
	return nil
}

// CategoryProjects returns the number of projects in each category.
func (d *Dashboard) CategoryProjects() map[string]int {
	return stats.CategoryProjects(d.Categories.Items(), d.Portfolio.Items())
}

// CategoryName resolves a category ID for display.
func (d *Dashboard) CategoryName(id string) string {
	if c, ok := d.Categories.Get(id); ok {
		return c.Name
	}
	return ""
}

// TogglePortfolioFeatured flips the featured flag of a project.
func (d *Dashboard) TogglePortfolioFeatured(ctx context.Context, id string) (domain.PortfolioItem, error) {
	return d.Portfolio.Update(ctx, id, func(p *domain.PortfolioItem) { p.Featured = !p.Featured })
}
