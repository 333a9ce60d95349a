package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zoharmedia/zohar/internal/dashboard"
	"github.com/zoharmedia/zohar/internal/stats"
	"github.com/zoharmedia/zohar/pkg/domain"
	"github.com/zoharmedia/zohar/pkg/validation"
)

const screenMedia = "media"

func newMediaScreen(d *dashboard.Dashboard) screen {
	return newTable(tableConfig[domain.MediaItem]{
		name:  screenMedia,
		ctrl:  d.Media,
		id:    func(m domain.MediaItem) string { return m.ID },
		label: func(m domain.MediaItem) string { return m.Title },
		columns: []column[domain.MediaItem]{
			{"TYPE", 6, func(m domain.MediaItem) string { return badge(string(m.Type)) }},
			{"TITLE", 30, func(m domain.MediaItem) string { return truncStr(m.Title, 30) }},
			{"CATEGORY", 14, func(m domain.MediaItem) string { return truncStr(orDash(m.Category), 14) }},
			{"TAGS", 22, func(m domain.MediaItem) string { return dimStyle.Render(truncStr(strings.Join(m.Tags, ", "), 22)) }},
			{"SIZE", 9, func(m domain.MediaItem) string { return metaStyle.Render(orDash(m.Size)) }},
			{"UPLOADED", 10, func(m domain.MediaItem) string { return metaStyle.Render(formatDate(m.UploadDate, time.Now())) }},
		},
		facets: []facet{
			{key: "t", name: dashboard.FacetType, values: fixed(domain.Strings(domain.MediaTypes)...)},
			{key: "c", name: dashboard.FacetCategory, values: func() []string {
				return stats.Distinct(d.Media.Items(), func(m domain.MediaItem) string { return m.Category })
			}},
		},
		actions: []action[domain.MediaItem]{
			openAction("o", "open", func(m domain.MediaItem) string { return m.URL }),
			copyAction("y", "copy url", func(m domain.MediaItem) string { return m.URL }),
		},
		detail: func(m domain.MediaItem) []string {
			lines := []string{
				titleStyle.Render(m.Title) + "  " + badge(string(m.Type)),
				dimStyle.Render(m.URL),
			}
			var facts []string
			for _, f := range [][2]string{{"size", m.Size}, {"dimensions", m.Dimensions}, {"duration", m.Duration}, {"category", m.Category}, {"uploaded", m.UploadDate}} {
				if f[1] != "" {
					facts = append(facts, metaStyle.Render(f[0]+" ")+f[1])
				}
			}
			if len(facts) > 0 {
				lines = append(lines, strings.Join(facts, "  "))
			}
			if len(m.Tags) > 0 {
				lines = append(lines, accentStyle.Render("#"+strings.Join(m.Tags, " #")))
			}
			if m.Description != "" {
				lines = append(lines, "", normalStyle.Render(m.Description))
			}
			return lines
		},
		newForm: func() formModel {
			return newForm(screenMedia, "Add YouTube video", func(ctx context.Context, v formValues) (string, error) {
				item, err := d.AddVideo(ctx, validation.VideoForm{
					Title:       v.get("title"),
					YouTubeURL:  v.get("youtube_url"),
					Description: v.get("description"),
					Category:    v.get("category"),
					Tags:        domain.ParseLabels(v.get("tags")),
				})
				return fmt.Sprintf("Added %q", item.Title), err
			},
				formField{key: "title", label: "Title"},
				formField{key: "youtube_url", label: "YouTube URL", hint: "https://youtu.be/..."},
				formField{key: "description", label: "Description", multiline: true},
				formField{key: "category", label: "Category"},
				formField{key: "tags", label: "Tags", hint: "comma separated"},
			)
		},
		editForm: func(m domain.MediaItem) formModel {
			return newForm(screenMedia, "Edit "+m.Title, func(ctx context.Context, v formValues) (string, error) {
				_, err := d.UpdateMedia(ctx, m.ID, func(item *domain.MediaItem) {
					item.Title = v.get("title")
					item.Description = v.get("description")
					item.Category = v.get("category")
					item.Tags = domain.Tags(domain.ParseLabels(v.get("tags")))
				})
				return "Media updated", err
			},
				formField{key: "title", label: "Title", value: m.Title},
				formField{key: "description", label: "Description", value: m.Description, multiline: true},
				formField{key: "category", label: "Category", value: m.Category},
				formField{key: "tags", label: "Tags", value: strings.Join(m.Tags, ", "), hint: "comma separated"},
			)
		},
	})
}
