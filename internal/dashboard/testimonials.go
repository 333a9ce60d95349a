package dashboard

import (
	"context"
	"log/slog"

	"github.com/zoharmedia/zohar/internal/collection"
	"github.com/zoharmedia/zohar/pkg/domain"
	"github.com/zoharmedia/zohar/pkg/validation"
)

func testimonialConfig(v *validation.Validator, log *slog.Logger) collection.Config[domain.Testimonial] {
	return collection.Config[domain.Testimonial]{
		Name:     "testimonial",
		ID:       func(t domain.Testimonial) string { return t.ID },
		SetID:    func(t *domain.Testimonial, id string) { t.ID = id },
		Validate: v.Testimonial,
		Search:   func(t domain.Testimonial) []string { return []string{t.Name, t.Company, t.Message} },
		Facets: map[string]func(domain.Testimonial) string{
			FacetStatus: func(t domain.Testimonial) string { return string(t.Status) },
		},
		SetStatus: func(t *domain.Testimonial, s string) { t.Status = domain.TestimonialStatus(s) },
		Logger:    log,
	}
}

// ToggleFeatured flips the featured flag of a testimonial.
func (d *Dashboard) ToggleFeatured(ctx context.Context, id string) (domain.Testimonial, error) {
	return d.Testimonials.Update(ctx, id, func(t *domain.Testimonial) { t.Featured = !t.Featured })
}
