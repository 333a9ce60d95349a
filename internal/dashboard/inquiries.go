package dashboard

import (
	"context"
	"log/slog"

	"github.com/zoharmedia/zohar/internal/collection"
	"github.com/zoharmedia/zohar/pkg/domain"
	"github.com/zoharmedia/zohar/pkg/validation"
)

func inquiryConfig(v *validation.Validator, log *slog.Logger) collection.Config[domain.Inquiry] {
	return collection.Config[domain.Inquiry]{
		Name:     "inquiry",
		ID:       func(i domain.Inquiry) string { return i.ID },
		SetID:    func(i *domain.Inquiry, id string) { i.ID = id },
		Validate: v.Inquiry,
		Search:   func(i domain.Inquiry) []string { return []string{i.Name, i.Email, i.Subject} },
		Facets: map[string]func(domain.Inquiry) string{
			FacetStatus: func(i domain.Inquiry) string { return string(i.Status) },
			FacetType:   func(i domain.Inquiry) string { return string(i.Type) },
		},
		SetStatus: func(i *domain.Inquiry, s string) { i.Status = domain.InquiryStatus(s) },
		Logger:    log,
	}
}

// Respond records a reply to an inquiry and marks it responded.
func (d *Dashboard) Respond(ctx context.Context, id, response string) (domain.Inquiry, error) {
	return d.Inquiries.Update(ctx, id, func(i *domain.Inquiry) {
		i.Response = response
		i.Status = domain.InquiryResponded
		i.ResponseDate = d.validator.Today()
	})
}

// Assign hands an inquiry to a team member. An empty memberID unassigns it.
func (d *Dashboard) Assign(ctx context.Context, id, memberID string) (domain.Inquiry, error) {
	if memberID != "" {
		if _, ok := d.Team.Get(memberID); !ok {
			return domain.Inquiry{}, &collection.GuardError{Message: "Unknown team member"}
		}
	}
	return d.Inquiries.Update(ctx, id, func(i *domain.Inquiry) { i.AssignedTo = memberID })
}
