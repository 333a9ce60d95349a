package tui

import (
	"context"
	"strings"

	"github.com/zoharmedia/zohar/internal/dashboard"
	"github.com/zoharmedia/zohar/pkg/domain"
)

const screenTeam = "team"

func newTeamScreen(d *dashboard.Dashboard) screen {
	ctrl := d.Team

	fields := func(m domain.TeamMember) []formField {
		return []formField{
			{key: "name", label: "Name", value: m.Name},
			{key: "role", label: "Role", value: m.Role},
			{key: "email", label: "Email", value: m.Email},
			{key: "phone", label: "Phone", value: m.Phone},
			{key: "avatar_url", label: "Avatar URL", value: m.Avatar},
			{key: "bio", label: "Bio", value: m.Bio, multiline: true},
			{key: "join_date", label: "Join date", value: m.JoinDate, hint: "YYYY-MM-DD"},
			{key: "status", label: "Status", value: string(m.Status), options: domain.Strings(domain.TeamMemberStatuses)},
			{key: "skills", label: "Skills", value: strings.Join(m.Skills, ", "), hint: "comma separated"},
			{key: "social_links", label: "Social links", value: formatSocialLinks(m.SocialLinks), hint: "instagram=https://..., vimeo=https://..."},
		}
	}
	patch := func(v formValues) (func(*domain.TeamMember), error) {
		links, err := parseSocialLinks(v.get("social_links"))
		if err != nil {
			return nil, err
		}
		return func(m *domain.TeamMember) {
			m.Name = v.get("name")
			m.Role = v.get("role")
			m.Email = v.get("email")
			m.Phone = v.get("phone")
			m.Avatar = v.get("avatar_url")
			m.Bio = v.get("bio")
			m.JoinDate = v.get("join_date")
			m.Status = domain.TeamMemberStatus(v.get("status"))
			m.Skills = domain.Skills(domain.ParseLabels(v.get("skills")))
			m.SocialLinks = links
		}, nil
	}

	return newTable(tableConfig[domain.TeamMember]{
		name:  screenTeam,
		ctrl:  ctrl,
		id:    func(m domain.TeamMember) string { return m.ID },
		label: func(m domain.TeamMember) string { return m.Name },
		columns: []column[domain.TeamMember]{
			{"STATUS", 8, func(m domain.TeamMember) string { return badge(string(m.Status)) }},
			{"NAME", 20, func(m domain.TeamMember) string { return truncStr(m.Name, 20) }},
			{"ROLE", 16, func(m domain.TeamMember) string { return accentStyle.Render(truncStr(m.Role, 16)) }},
			{"EMAIL", 26, func(m domain.TeamMember) string { return dimStyle.Render(truncStr(m.Email, 26)) }},
			{"SKILLS", 24, func(m domain.TeamMember) string { return metaStyle.Render(truncStr(strings.Join(m.Skills, ", "), 24)) }},
		},
		facets: []facet{
			{key: "o", name: dashboard.FacetRole, values: d.Roles},
			{key: "s", name: dashboard.FacetStatus, values: fixed(domain.Strings(domain.TeamMemberStatuses)...)},
		},
		actions: []action[domain.TeamMember]{
			copyAction("c", "copy email", func(m domain.TeamMember) string { return m.Email }),
			{key: "t", label: "active", run: func(ctx context.Context, m domain.TeamMember) (string, error) {
				next := domain.MemberInactive
				if m.Status != domain.MemberActive {
					next = domain.MemberActive
				}
				if _, err := ctrl.TransitionStatus(ctx, m.ID, string(next)); err != nil {
					return "", err
				}
				return m.Name + " is now " + string(next), nil
			}},
		},
		detail: func(m domain.TeamMember) []string {
			lines := []string{
				titleStyle.Render(m.Name) + "  " + accentStyle.Render(m.Role) + "  " + badge(string(m.Status)),
				dimStyle.Render(strings.TrimSpace(m.Email + "  " + m.Phone)),
				metaStyle.Render("joined " + m.JoinDate),
			}
			if m.Bio != "" {
				lines = append(lines, "", normalStyle.Render(m.Bio))
			}
			if len(m.Skills) > 0 {
				lines = append(lines, "", metaStyle.Render("skills ")+strings.Join(m.Skills, ", "))
			}
			for _, p := range m.SocialLinks.Platforms() {
				lines = append(lines, metaStyle.Render(p+" ")+infoStyle.Render(m.SocialLinks[p]))
			}
			return lines
		},
		newForm: func() formModel {
			return newForm(screenTeam, "New team member", func(ctx context.Context, v formValues) (string, error) {
				fill, err := patch(v)
				if err != nil {
					return "", err
				}
				var m domain.TeamMember
				fill(&m)
				_, err = ctrl.Add(ctx, m)
				return "Team member added", err
			}, fields(domain.TeamMember{JoinDate: d.Validator().Today()})...)
		},
		editForm: func(m domain.TeamMember) formModel {
			return newForm(screenTeam, "Edit "+m.Name, func(ctx context.Context, v formValues) (string, error) {
				fill, err := patch(v)
				if err != nil {
					return "", err
				}
				_, err = ctrl.Update(ctx, m.ID, fill)
				return "Team member updated", err
			}, fields(m)...)
		},
	})
}
