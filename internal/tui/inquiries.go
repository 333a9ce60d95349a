package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/zoharmedia/zohar/internal/dashboard"
	"github.com/zoharmedia/zohar/pkg/domain"
)

const screenInquiries = "inquiries"

func inquiryID(i domain.Inquiry) string { return i.ID }

func memberName(d *dashboard.Dashboard, id string) string {
	if m, ok := d.Team.Get(id); ok {
		return m.Name
	}
	return id
}

func newInquiriesScreen(d *dashboard.Dashboard) screen {
	ctrl := d.Inquiries
	return newTable(tableConfig[domain.Inquiry]{
		name:  screenInquiries,
		ctrl:  ctrl,
		id:    inquiryID,
		label: func(i domain.Inquiry) string { return i.Subject },
		columns: []column[domain.Inquiry]{
			{"STATUS", 10, func(i domain.Inquiry) string { return badge(string(i.Status)) }},
			{"FROM", 18, func(i domain.Inquiry) string { return truncStr(i.Name, 18) }},
			{"SUBJECT", 30, func(i domain.Inquiry) string { return truncStr(oneLine(i.Subject), 30) }},
			{"TYPE", 13, func(i domain.Inquiry) string { return dimStyle.Render(string(i.Type)) }},
			{"ASSIGNED", 12, func(i domain.Inquiry) string { return truncStr(orDash(memberName(d, i.AssignedTo)), 12) }},
			{"DATE", 10, func(i domain.Inquiry) string { return metaStyle.Render(formatDate(i.Date, time.Now())) }},
		},
		facets: []facet{
			{key: "s", name: dashboard.FacetStatus, values: fixed(domain.Strings(domain.InquiryStatuses)...)},
			{key: "t", name: dashboard.FacetType, values: fixed(domain.Strings(domain.InquiryTypes)...)},
		},
		actions: []action[domain.Inquiry]{
			copyAction("c", "copy email", func(i domain.Inquiry) string { return i.Email }),
			statusAction("o", "responded", ctrl, inquiryID, string(domain.InquiryResponded)),
			statusAction("v", "resolved", ctrl, inquiryID, string(domain.InquiryResolved)),
			statusAction("u", "unread", ctrl, inquiryID, string(domain.InquiryUnread)),
			{key: "a", label: "assign", run: func(ctx context.Context, i domain.Inquiry) (string, error) {
				next := nextAssignee(d, i.AssignedTo)
				if _, err := d.Assign(ctx, i.ID, next); err != nil {
					return "", err
				}
				if next == "" {
					return "Unassigned", nil
				}
				return "Assigned to " + memberName(d, next), nil
			}},
		},
		detail: func(i domain.Inquiry) []string {
			lines := []string{
				titleStyle.Render(i.Subject) + "  " + badge(string(i.Status)),
				dimStyle.Render(fmt.Sprintf("%s <%s>  %s  %s", i.Name, i.Email, i.Type, i.Date)),
				"",
				normalStyle.Render(i.Message),
			}
			if i.AssignedTo != "" {
				lines = append(lines, "", metaStyle.Render("assigned to ")+memberName(d, i.AssignedTo))
			}
			if i.Response != "" {
				lines = append(lines, "", metaStyle.Render("response "+i.ResponseDate), normalStyle.Render(i.Response))
			}
			return lines
		},
		newForm: func() formModel {
			return newForm(screenInquiries, "New inquiry", func(ctx context.Context, v formValues) (string, error) {
				_, err := ctrl.Add(ctx, domain.Inquiry{
					Name:    v.get("name"),
					Email:   v.get("email"),
					Subject: v.get("subject"),
					Message: v.get("message"),
					Type:    domain.InquiryType(v.get("type")),
				})
				return "Inquiry added", err
			},
				formField{key: "name", label: "Name"},
				formField{key: "email", label: "Email"},
				formField{key: "subject", label: "Subject"},
				formField{key: "message", label: "Message", multiline: true},
				formField{key: "type", label: "Type", options: domain.Strings(domain.InquiryTypes)},
			)
		},
		editForm: func(i domain.Inquiry) formModel {
			return newForm(screenInquiries, "Respond to "+i.Name, func(ctx context.Context, v formValues) (string, error) {
				response := v.get("response")
				if response == "" {
					return "", invalid("response", "Response is required")
				}
				_, err := d.Respond(ctx, i.ID, response)
				return "Response saved", err
			},
				formField{key: "response", label: "Response", value: i.Response, multiline: true, hint: "write a reply"},
			)
		},
	})
}

// nextAssignee cycles through active team members, then back to nobody.
func nextAssignee(d *dashboard.Dashboard, current string) string {
	var ids []string
	for _, m := range d.Team.Items() {
		if m.Status == domain.MemberActive {
			ids = append(ids, m.ID)
		}
	}
	if len(ids) == 0 {
		return ""
	}
	return cycle(append([]string{""}, ids...), current, true)
}
