package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/zoharmedia/zohar/internal/dashboard"
	"github.com/zoharmedia/zohar/pkg/domain"
)

const screenTestimonials = "testimonials"

func testimonialID(t domain.Testimonial) string { return t.ID }

func featuredMark(on bool) string {
	if on {
		return starStyle.Render("◆")
	}
	return metaStyle.Render("·")
}

func newTestimonialsScreen(d *dashboard.Dashboard) screen {
	ctrl := d.Testimonials

	fields := func(t domain.Testimonial) []formField {
		rating := ""
		if t.Rating > 0 {
			rating = strconv.Itoa(t.Rating)
		}
		return []formField{
			{key: "name", label: "Name", value: t.Name},
			{key: "company", label: "Company", value: t.Company},
			{key: "email", label: "Email", value: t.Email},
			{key: "message", label: "Message", value: t.Message, multiline: true},
			{key: "rating", label: "Rating", value: rating, hint: "1-5"},
			{key: "avatar_url", label: "Avatar URL", value: t.Avatar},
			{key: "status", label: "Status", value: string(t.Status), options: domain.Strings(domain.TestimonialStatuses)},
		}
	}
	// patch parses the form before anything is sent.
	patch := func(v formValues) (func(*domain.Testimonial), error) {
		rating, err := parseInt(v, "rating", "Rating")
		if err != nil {
			return nil, err
		}
		return func(t *domain.Testimonial) {
			t.Name = v.get("name")
			t.Company = v.get("company")
			t.Email = v.get("email")
			t.Message = v.get("message")
			t.Rating = rating
			t.Avatar = v.get("avatar_url")
			t.Status = domain.TestimonialStatus(v.get("status"))
		}, nil
	}

	return newTable(tableConfig[domain.Testimonial]{
		name:  screenTestimonials,
		ctrl:  ctrl,
		id:    testimonialID,
		label: func(t domain.Testimonial) string { return t.Name },
		columns: []column[domain.Testimonial]{
			{"STATUS", 9, func(t domain.Testimonial) string { return badge(string(t.Status)) }},
			{"", 1, func(t domain.Testimonial) string { return featuredMark(t.Featured) }},
			{"NAME", 18, func(t domain.Testimonial) string { return truncStr(t.Name, 18) }},
			{"COMPANY", 16, func(t domain.Testimonial) string { return dimStyle.Render(truncStr(orDash(t.Company), 16)) }},
			{"RATING", 6, func(t domain.Testimonial) string { return stars(t.Rating) }},
			{"MESSAGE", 36, func(t domain.Testimonial) string { return truncStr(oneLine(t.Message), 36) }},
		},
		facets: []facet{
			{key: "s", name: dashboard.FacetStatus, values: fixed(domain.Strings(domain.TestimonialStatuses)...)},
		},
		actions: []action[domain.Testimonial]{
			statusAction("a", "approve", ctrl, testimonialID, string(domain.TestimonialApproved)),
			statusAction("R", "reject", ctrl, testimonialID, string(domain.TestimonialRejected)),
			statusAction("p", "pending", ctrl, testimonialID, string(domain.TestimonialPending)),
			{key: "f", label: "feature", run: func(ctx context.Context, t domain.Testimonial) (string, error) {
				updated, err := d.ToggleFeatured(ctx, t.ID)
				if err != nil {
					return "", err
				}
				if updated.Featured {
					return "Featured", nil
				}
				return "No longer featured", nil
			}},
		},
		detail: func(t domain.Testimonial) []string {
			who := t.Name
			if t.Company != "" {
				who += ", " + t.Company
			}
			lines := []string{
				titleStyle.Render(who) + "  " + badge(string(t.Status)) + "  " + stars(t.Rating),
				"",
				normalStyle.Render(t.Message),
			}
			if t.PortfolioItemID != "" {
				if p, ok := d.Portfolio.Get(t.PortfolioItemID); ok {
					lines = append(lines, "", metaStyle.Render("project ")+p.Title)
				}
			}
			if t.Featured {
				lines = append(lines, starStyle.Render("featured on the site"))
			}
			return lines
		},
		newForm: func() formModel {
			return newForm(screenTestimonials, "New testimonial", func(ctx context.Context, v formValues) (string, error) {
				fill, err := patch(v)
				if err != nil {
					return "", err
				}
				var t domain.Testimonial
				fill(&t)
				_, err = ctrl.Add(ctx, t)
				return "Testimonial added", err
			}, fields(domain.Testimonial{Rating: domain.MaxRating})...)
		},
		editForm: func(t domain.Testimonial) formModel {
			return newForm(screenTestimonials, fmt.Sprintf("Edit testimonial from %s", t.Name), func(ctx context.Context, v formValues) (string, error) {
				fill, err := patch(v)
				if err != nil {
					return "", err
				}
				_, err = ctrl.Update(ctx, t.ID, fill)
				return "Testimonial updated", err
			}, fields(t)...)
		},
	})
}
