package dashboard

import (
	"log/slog"

	"github.com/zoharmedia/zohar/internal/collection"
	"github.com/zoharmedia/zohar/internal/stats"
	"github.com/zoharmedia/zohar/pkg/domain"
	"github.com/zoharmedia/zohar/pkg/validation"
)

func teamConfig(v *validation.Validator, log *slog.Logger) collection.Config[domain.TeamMember] {
	return collection.Config[domain.TeamMember]{
		Name:     "team member",
		ID:       func(m domain.TeamMember) string { return m.ID },
		SetID:    func(m *domain.TeamMember, id string) { m.ID = id },
		Validate: v.TeamMember,
		Search:   func(m domain.TeamMember) []string { return []string{m.Name, m.Role, m.Email} },
		Facets: map[string]func(domain.TeamMember) string{
			FacetRole:   func(m domain.TeamMember) string { return m.Role },
			FacetStatus: func(m domain.TeamMember) string { return string(m.Status) },
		},
		SetStatus: func(m *domain.TeamMember, s string) { m.Status = domain.TeamMemberStatus(s) },
		Logger:    log,
	}
}

// Roles lists the distinct roles on the roster, for the role filter.
func (d *Dashboard) Roles() []string {
	return stats.Distinct(d.Team.Items(), func(m domain.TeamMember) string { return m.Role })
}
