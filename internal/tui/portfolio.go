package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/zoharmedia/zohar/internal/dashboard"
	"github.com/zoharmedia/zohar/pkg/domain"
)

const (
	screenPortfolio  = "portfolio"
	screenCategories = "categories"
)

func categoryIDs(d *dashboard.Dashboard) []string {
	items := d.Categories.Items()
	ids := make([]string, len(items))
	for i, c := range items {
		ids[i] = c.ID
	}
	return ids
}

// noCategory is the form choice for a project outside every category.
const noCategory = "(none)"

// categoryField builds the category choice for a project. A category ID
// that no longer resolves stays selectable under its raw ID so saving the
// form leaves it untouched.
func categoryField(d *dashboard.Dashboard, id string) formField {
	f := formField{key: "category_id", label: "Category", value: noCategory, options: []string{noCategory}}
	for _, c := range d.Categories.Items() {
		f.options = append(f.options, c.Name)
	}
	switch name := d.CategoryName(id); {
	case name != "":
		f.value = name
	case id != "":
		f.value = id
		f.options = append(f.options, id)
	}
	return f
}

// categoryFromField maps a category choice back to an ID.
func categoryFromField(d *dashboard.Dashboard, value string) string {
	if value == noCategory || value == "" {
		return ""
	}
	for _, c := range d.Categories.Items() {
		if c.Name == value {
			return c.ID
		}
	}
	return value
}

func newPortfolioScreen(d *dashboard.Dashboard) screen {
	ctrl := d.Portfolio

	fields := func(p domain.PortfolioItem) []formField {
		return []formField{
			{key: "title", label: "Title", value: p.Title},
			{key: "description", label: "Description", value: p.Description, multiline: true},
			categoryField(d, p.CategoryID),
			{key: "client_name", label: "Client", value: p.Client},
			{key: "project_date", label: "Project date", value: p.ProjectDate, hint: "YYYY-MM-DD"},
			{key: "status", label: "Status", value: string(p.Status), options: domain.Strings(domain.PortfolioStatuses)},
			{key: "thumbnail_url", label: "Thumbnail URL", value: p.Thumbnail},
			{key: "project_url", label: "Project URL", value: p.ProjectURL},
			{key: "images", label: "Images", value: strings.Join(p.Images, ", "), hint: "image URLs, comma separated"},
			{key: "tags", label: "Tags", value: strings.Join(p.Tags, ", "), hint: "comma separated"},
			{key: "technologies", label: "Technologies", value: strings.Join(p.Technologies, ", "), hint: "comma separated"},
		}
	}
	patch := func(v formValues) func(*domain.PortfolioItem) {
		return func(p *domain.PortfolioItem) {
			p.Title = v.get("title")
			p.Description = v.get("description")
			p.CategoryID = categoryFromField(d, v.get("category_id"))
			p.Client = v.get("client_name")
			p.ProjectDate = v.get("project_date")
			p.Status = domain.PortfolioStatus(v.get("status"))
			p.Thumbnail = v.get("thumbnail_url")
			p.ProjectURL = v.get("project_url")
			p.Images = domain.Images(domain.ParseLabels(v.get("images")))
			p.Tags = domain.Tags(domain.ParseLabels(v.get("tags")))
			p.Technologies = domain.Technologies(domain.ParseLabels(v.get("technologies")))
		}
	}

	return newTable(tableConfig[domain.PortfolioItem]{
		name:  screenPortfolio,
		ctrl:  ctrl,
		id:    func(p domain.PortfolioItem) string { return p.ID },
		label: func(p domain.PortfolioItem) string { return p.Title },
		columns: []column[domain.PortfolioItem]{
			{"STATUS", 11, func(p domain.PortfolioItem) string { return badge(string(p.Status)) }},
			{"", 1, func(p domain.PortfolioItem) string { return featuredMark(p.Featured) }},
			{"TITLE", 28, func(p domain.PortfolioItem) string { return truncStr(p.Title, 28) }},
			{"CATEGORY", 16, func(p domain.PortfolioItem) string {
				c, _ := d.Categories.Get(p.CategoryID)
				return swatch(c.Color) + " " + truncStr(orDash(c.Name), 14)
			}},
			{"CLIENT", 16, func(p domain.PortfolioItem) string { return dimStyle.Render(truncStr(orDash(p.Client), 16)) }},
			{"DATE", 10, func(p domain.PortfolioItem) string { return metaStyle.Render(p.ProjectDate) }},
		},
		facets: []facet{
			{key: "s", name: dashboard.FacetStatus, values: fixed(domain.Strings(domain.PortfolioStatuses)...)},
			{key: "c", name: dashboard.FacetCategory, values: func() []string { return categoryIDs(d) }, label: d.CategoryName},
		},
		actions: []action[domain.PortfolioItem]{
			{key: "f", label: "feature", run: func(ctx context.Context, p domain.PortfolioItem) (string, error) {
				updated, err := d.TogglePortfolioFeatured(ctx, p.ID)
				if err != nil {
					return "", err
				}
				if updated.Featured {
					return "Featured", nil
				}
				return "No longer featured", nil
			}},
			openAction("o", "open", func(p domain.PortfolioItem) string { return p.ProjectURL }),
		},
		detail: func(p domain.PortfolioItem) []string {
			lines := []string{
				titleStyle.Render(p.Title) + "  " + badge(string(p.Status)),
				dimStyle.Render(fmt.Sprintf("%s  %s  %s", orDash(d.CategoryName(p.CategoryID)), orDash(p.Client), p.ProjectDate)),
				"",
				normalStyle.Render(p.Description),
			}
			if len(p.Technologies) > 0 {
				lines = append(lines, "", metaStyle.Render("tech ")+strings.Join(p.Technologies, ", "))
			}
			if len(p.TeamMembers) > 0 {
				names := make([]string, len(p.TeamMembers))
				for i, id := range p.TeamMembers {
					names[i] = memberName(d, id)
				}
				lines = append(lines, metaStyle.Render("team ")+strings.Join(names, ", "))
			}
			if len(p.Images) > 0 {
				lines = append(lines, metaStyle.Render(fmt.Sprintf("%d image(s)", len(p.Images))))
			}
			if p.ProjectURL != "" {
				lines = append(lines, infoStyle.Render(p.ProjectURL))
			}
			if p.Testimonial != "" {
				lines = append(lines, "", starStyle.Render("“"+oneLine(p.Testimonial)+"”"))
			}
			return lines
		},
		newForm: func() formModel {
			return newForm(screenPortfolio, "New project", func(ctx context.Context, v formValues) (string, error) {
				var p domain.PortfolioItem
				patch(v)(&p)
				_, err := ctrl.Add(ctx, p)
				return "Project added", err
			}, fields(domain.PortfolioItem{ProjectDate: d.Validator().Today()})...)
		},
		editForm: func(p domain.PortfolioItem) formModel {
			return newForm(screenPortfolio, "Edit "+p.Title, func(ctx context.Context, v formValues) (string, error) {
				_, err := ctrl.Update(ctx, p.ID, patch(v))
				return "Project updated", err
			}, fields(p)...)
		},
	})
}

func newCategoriesScreen(d *dashboard.Dashboard) screen {
	ctrl := d.Categories

	fields := func(c domain.PortfolioCategory) []formField {
		return []formField{
			{key: "name", label: "Name", value: c.Name},
			{key: "description", label: "Description", value: c.Description},
			{key: "color", label: "Color", value: c.Color, hint: "#3b82f6"},
		}
	}
	patch := func(v formValues) func(*domain.PortfolioCategory) {
		return func(c *domain.PortfolioCategory) {
			c.Name = v.get("name")
			c.Description = v.get("description")
			c.Color = v.get("color")
		}
	}

	return newTable(tableConfig[domain.PortfolioCategory]{
		name:  screenCategories,
		ctrl:  ctrl,
		id:    func(c domain.PortfolioCategory) string { return c.ID },
		label: func(c domain.PortfolioCategory) string { return c.Name },
		columns: []column[domain.PortfolioCategory]{
			{"", 1, func(c domain.PortfolioCategory) string { return swatch(c.Color) }},
			{"NAME", 20, func(c domain.PortfolioCategory) string { return truncStr(c.Name, 20) }},
			{"PROJECTS", 8, func(c domain.PortfolioCategory) string {
				return fmt.Sprintf("%d", d.CategoryProjects()[c.ID])
			}},
			{"DESCRIPTION", 40, func(c domain.PortfolioCategory) string { return dimStyle.Render(truncStr(oneLine(c.Description), 40)) }},
		},
		detail: func(c domain.PortfolioCategory) []string {
			return []string{
				swatch(c.Color) + " " + titleStyle.Render(c.Name) + "  " + metaStyle.Render(c.Color),
				normalStyle.Render(c.Description),
				metaStyle.Render(fmt.Sprintf("%d project(s)", d.CategoryProjects()[c.ID])),
			}
		},
		newForm: func() formModel {
			return newForm(screenCategories, "New category", func(ctx context.Context, v formValues) (string, error) {
				var c domain.PortfolioCategory
				patch(v)(&c)
				_, err := ctrl.Add(ctx, c)
				return "Category added", err
			}, fields(domain.PortfolioCategory{})...)
		},
		editForm: func(c domain.PortfolioCategory) formModel {
			return newForm(screenCategories, "Edit "+c.Name, func(ctx context.Context, v formValues) (string, error) {
				_, err := ctrl.Update(ctx, c.ID, patch(v))
				return "Category updated", err
			}, fields(c)...)
		},
	})
}
