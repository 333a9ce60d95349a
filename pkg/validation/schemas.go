package validation

import (
	"fmt"
	"strings"

	"github.com/zoharmedia/zohar/pkg/domain"
)

// Kind names an entity schema.
type Kind string

const (
	KindInquiry           Kind = "inquiry"
	KindMediaItem         Kind = "media_item"
	KindVideoForm         Kind = "video_form"
	KindTestimonial       Kind = "testimonial"
	KindTeamMember        Kind = "team_member"
	KindPortfolioCategory Kind = "portfolio_category"
	KindPortfolioItem     Kind = "portfolio_item"
	KindBusinessStats     Kind = "business_stats"
	KindSystemSettings    Kind = "system_settings"
)

// VideoForm is the "add video" form: a YouTube link plus metadata. It
// becomes a video MediaItem once valid.
type VideoForm struct {
	Title       string
	YouTubeURL  string
	Description string
	Category    string
	Tags        []string
}

func oneOf[S ~string](values []S) string {
	return "required,oneof=" + strings.Join(domain.Strings(values), " ")
}

func str[S ~string](s S) any { return string(s) }

func (v *Validator) buildSchemas() {
	v.inquiry = Schema[domain.Inquiry]{
		Normalize: func(in domain.Inquiry) domain.Inquiry {
			in.Name = strings.TrimSpace(in.Name)
			in.Email = strings.TrimSpace(in.Email)
			in.Subject = strings.TrimSpace(in.Subject)
			in.Message = strings.TrimSpace(in.Message)
			in.Response = strings.TrimSpace(in.Response)
			if in.Status == "" {
				in.Status = domain.InquiryUnread
			}
			if in.Type == "" {
				in.Type = domain.InquiryGeneral
			}
			if in.Date == "" {
				in.Date = v.Today()
			}
			return in
		},
		Fields: []Field[domain.Inquiry]{
			{Name: "name", Label: "Name", Rules: "required", Get: func(i domain.Inquiry) any { return i.Name }},
			{Name: "email", Label: "Email", Rules: "required,email", Get: func(i domain.Inquiry) any { return i.Email },
				Messages: map[string]string{"required": "Please enter a valid email address"}},
			{Name: "subject", Label: "Subject", Rules: "required", Get: func(i domain.Inquiry) any { return i.Subject }},
			{Name: "message", Label: "Message", Rules: "required,min=10", Get: func(i domain.Inquiry) any { return i.Message },
				Messages: map[string]string{"min": "Message must be at least 10 characters"}},
			{Name: "status", Label: "Status", Rules: oneOf(domain.InquiryStatuses), Get: func(i domain.Inquiry) any { return str(i.Status) }},
			{Name: "type", Label: "Type", Rules: oneOf(domain.InquiryTypes), Get: func(i domain.Inquiry) any { return str(i.Type) }},
		},
	}

	v.media = Schema[domain.MediaItem]{
		Normalize: func(in domain.MediaItem) domain.MediaItem {
			in.Title = strings.TrimSpace(in.Title)
			in.URL = strings.TrimSpace(in.URL)
			in.Thumbnail = strings.TrimSpace(in.Thumbnail)
			in.Description = strings.TrimSpace(in.Description)
			in.Category = strings.TrimSpace(in.Category)
			in.Tags = domain.NormalizeLabels(in.Tags)
			if in.UploadDate == "" {
				in.UploadDate = v.Today()
			}
			return in
		},
		Fields: []Field[domain.MediaItem]{
			{Name: "title", Label: "Title", Rules: "required", Get: func(m domain.MediaItem) any { return m.Title }},
			{Name: "type", Label: "Type", Rules: oneOf(domain.MediaTypes), Get: func(m domain.MediaItem) any { return str(m.Type) }},
			{Name: "url", Label: "URL", Rules: "required,url", Get: func(m domain.MediaItem) any { return m.URL }},
			{Name: "thumbnail_url", Label: "Thumbnail", Rules: "omitempty,url", Get: func(m domain.MediaItem) any { return m.Thumbnail }},
		},
	}

	v.video = Schema[VideoForm]{
		Normalize: func(in VideoForm) VideoForm {
			in.Title = strings.TrimSpace(in.Title)
			in.YouTubeURL = strings.TrimSpace(in.YouTubeURL)
			in.Description = strings.TrimSpace(in.Description)
			in.Category = strings.TrimSpace(in.Category)
			in.Tags = domain.NormalizeLabels(in.Tags)
			return in
		},
		Fields: []Field[VideoForm]{
			{Name: "title", Label: "Title", Rules: "required", Get: func(f VideoForm) any { return f.Title }},
			{Name: "youtube_url", Label: "YouTube URL", Rules: "required,youtube", Get: func(f VideoForm) any { return f.YouTubeURL }},
			{Name: "category", Label: "Category", Rules: "required", Get: func(f VideoForm) any { return f.Category }},
		},
	}

	v.testimonial = Schema[domain.Testimonial]{
		Normalize: func(in domain.Testimonial) domain.Testimonial {
			in.Name = strings.TrimSpace(in.Name)
			in.Company = strings.TrimSpace(in.Company)
			in.Email = strings.TrimSpace(in.Email)
			in.Message = strings.TrimSpace(in.Message)
			in.Avatar = strings.TrimSpace(in.Avatar)
			if in.Status == "" {
				in.Status = domain.TestimonialPending
			}
			if in.Date == "" {
				in.Date = v.Today()
			}
			return in
		},
		Fields: []Field[domain.Testimonial]{
			{Name: "name", Label: "Name", Rules: "required", Get: func(t domain.Testimonial) any { return t.Name }},
			{Name: "email", Label: "Email", Rules: "omitempty,email", Get: func(t domain.Testimonial) any { return t.Email }},
			{Name: "message", Label: "Message", Rules: "required,min=20", Get: func(t domain.Testimonial) any { return t.Message }},
			{Name: "rating", Label: "Rating", Rules: fmt.Sprintf("gte=%d,lte=%d", domain.MinRating, domain.MaxRating), Get: func(t domain.Testimonial) any { return t.Rating }},
			{Name: "avatar_url", Label: "Avatar", Rules: "omitempty,url", Get: func(t domain.Testimonial) any { return t.Avatar }},
			{Name: "status", Label: "Status", Rules: oneOf(domain.TestimonialStatuses), Get: func(t domain.Testimonial) any { return str(t.Status) }},
		},
	}

	v.member = Schema[domain.TeamMember]{
		Normalize: func(in domain.TeamMember) domain.TeamMember {
			in.Name = strings.TrimSpace(in.Name)
			in.Role = strings.TrimSpace(in.Role)
			in.Email = strings.TrimSpace(in.Email)
			in.Phone = strings.TrimSpace(in.Phone)
			in.Bio = strings.TrimSpace(in.Bio)
			in.Avatar = strings.TrimSpace(in.Avatar)
			in.JoinDate = strings.TrimSpace(in.JoinDate)
			in.Skills = domain.NormalizeLabels(in.Skills)
			if in.Status == "" {
				in.Status = domain.MemberActive
			}
			if len(in.SocialLinks) > 0 {
				links := make(domain.SocialLinks, len(in.SocialLinks))
				for platform, u := range in.SocialLinks {
					platform, u = strings.TrimSpace(platform), strings.TrimSpace(u)
					if platform != "" && u != "" {
						links[platform] = u
					}
				}
				in.SocialLinks = links
			}
			return in
		},
		Fields: []Field[domain.TeamMember]{
			{Name: "name", Label: "Name", Rules: "required", Get: func(m domain.TeamMember) any { return m.Name }},
			{Name: "role", Label: "Role", Rules: "required", Get: func(m domain.TeamMember) any { return m.Role }},
			{Name: "email", Label: "Email", Rules: "required,email", Get: func(m domain.TeamMember) any { return m.Email },
				Messages: map[string]string{"required": "Please enter a valid email address"}},
			{Name: "avatar_url", Label: "Avatar", Rules: "omitempty,url", Get: func(m domain.TeamMember) any { return m.Avatar }},
			{Name: "join_date", Label: "Join date", Rules: "required", Get: func(m domain.TeamMember) any { return m.JoinDate }},
			{Name: "status", Label: "Status", Rules: oneOf(domain.TeamMemberStatuses), Get: func(m domain.TeamMember) any { return str(m.Status) }},
			{Name: "social_links", Label: "Social links", Rules: "omitempty,dive,url", Get: func(m domain.TeamMember) any { return map[string]string(m.SocialLinks) }},
		},
	}

	v.category = Schema[domain.PortfolioCategory]{
		Normalize: func(in domain.PortfolioCategory) domain.PortfolioCategory {
			in.Name = strings.TrimSpace(in.Name)
			in.Description = strings.TrimSpace(in.Description)
			in.Color = strings.TrimSpace(in.Color)
			return in
		},
		Fields: []Field[domain.PortfolioCategory]{
			{Name: "name", Label: "Name", Rules: "required", Get: func(c domain.PortfolioCategory) any { return c.Name }},
			{Name: "color", Label: "Color", Rules: "required,hexcolor", Get: func(c domain.PortfolioCategory) any { return c.Color }},
		},
	}

	v.portfolio = Schema[domain.PortfolioItem]{
		Normalize: func(in domain.PortfolioItem) domain.PortfolioItem {
			in.Title = strings.TrimSpace(in.Title)
			in.Description = strings.TrimSpace(in.Description)
			in.CategoryID = strings.TrimSpace(in.CategoryID)
			in.Client = strings.TrimSpace(in.Client)
			in.ProjectDate = strings.TrimSpace(in.ProjectDate)
			in.ProjectURL = strings.TrimSpace(in.ProjectURL)
			in.Thumbnail = strings.TrimSpace(in.Thumbnail)
			in.Tags = domain.NormalizeLabels(in.Tags)
			in.Technologies = domain.NormalizeLabels(in.Technologies)
			in.TeamMembers = domain.NormalizeLabels(in.TeamMembers)
			in.Images = domain.NormalizeLabels(in.Images)
			if in.Status == "" {
				in.Status = domain.PortfolioDraft
			}
			return in
		},
		Fields: []Field[domain.PortfolioItem]{
			{Name: "title", Label: "Title", Rules: "required", Get: func(p domain.PortfolioItem) any { return p.Title }},
			{Name: "description", Label: "Description", Rules: "required", Get: func(p domain.PortfolioItem) any { return p.Description }},
			{Name: "project_date", Label: "Project date", Rules: "required", Get: func(p domain.PortfolioItem) any { return p.ProjectDate }},
			{Name: "status", Label: "Status", Rules: oneOf(domain.PortfolioStatuses), Get: func(p domain.PortfolioItem) any { return str(p.Status) }},
			{Name: "thumbnail_url", Label: "Thumbnail", Rules: "omitempty,url", Get: func(p domain.PortfolioItem) any { return p.Thumbnail }},
			{Name: "project_url", Label: "Project URL", Rules: "omitempty,url", Get: func(p domain.PortfolioItem) any { return p.ProjectURL }},
			{Name: "images", Label: "Images", Rules: "omitempty,dive,url", Get: func(p domain.PortfolioItem) any { return []string(p.Images) }},
		},
	}

	count := func(label string, get func(domain.BusinessStats) int) Field[domain.BusinessStats] {
		name := strings.ReplaceAll(strings.ToLower(label), " ", "_")
		return Field[domain.BusinessStats]{Name: name, Label: label, Rules: "gte=0", Get: func(s domain.BusinessStats) any { return get(s) }}
	}
	v.stats = Schema[domain.BusinessStats]{
		Fields: []Field[domain.BusinessStats]{
			count("Completed projects", func(s domain.BusinessStats) int { return s.CompletedProjects }),
			count("Happy clients", func(s domain.BusinessStats) int { return s.HappyClients }),
			count("Perspective clients", func(s domain.BusinessStats) int { return s.PerspectiveClients }),
			{Name: "total_revenue", Label: "Total revenue", Rules: "gte=0", Get: func(s domain.BusinessStats) any {
				return s.TotalRevenue.Decimal.InexactFloat64()
			}},
			{Name: "average_project_value", Label: "Average project value", Rules: "gte=0", Get: func(s domain.BusinessStats) any {
				return s.AverageProjectValue.Decimal.InexactFloat64()
			}},
		},
	}

	v.settings = Schema[domain.SystemSettings]{
		Normalize: func(in domain.SystemSettings) domain.SystemSettings {
			in.BusinessName = strings.TrimSpace(in.BusinessName)
			in.BusinessDescription = strings.TrimSpace(in.BusinessDescription)
			in.Industry = strings.TrimSpace(in.Industry)
			in.WebsiteURL = strings.TrimSpace(in.WebsiteURL)
			in.ContactEmail = strings.TrimSpace(in.ContactEmail)
			if in.Theme == "" {
				in.Theme = domain.ThemeLight
			}
			return in
		},
		Fields: []Field[domain.SystemSettings]{
			{Name: "business_name", Label: "Business name", Rules: "required", Get: func(s domain.SystemSettings) any { return s.BusinessName }},
			{Name: "website_url", Label: "Website", Rules: "omitempty,url", Get: func(s domain.SystemSettings) any { return s.WebsiteURL }},
			{Name: "contact_email", Label: "Contact email", Rules: "omitempty,email", Get: func(s domain.SystemSettings) any { return s.ContactEmail }},
			{Name: "theme", Label: "Theme", Rules: oneOf(domain.Themes), Get: func(s domain.SystemSettings) any { return str(s.Theme) }},
		},
	}
}

// Inquiry validates an inquiry.
func (v *Validator) Inquiry(in domain.Inquiry) (domain.Inquiry, FieldErrors) {
	return Check(v, v.inquiry, in)
}

// MediaItem validates a media library entry.
func (v *Validator) MediaItem(in domain.MediaItem) (domain.MediaItem, FieldErrors) {
	return Check(v, v.media, in)
}

// Video validates the add-video form and converts it into a video MediaItem
// whose thumbnail is the YouTube still.
func (v *Validator) Video(form VideoForm) (domain.MediaItem, FieldErrors) {
	form, errs := Check(v, v.video, form)
	if errs != nil {
		return domain.MediaItem{}, errs
	}
	id, _ := ExtractYouTubeID(form.YouTubeURL)
	return v.MediaItem(domain.MediaItem{
		Title:       form.Title,
		Type:        domain.MediaVideo,
		URL:         form.YouTubeURL,
		Thumbnail:   YouTubeThumbnail(id),
		Tags:        form.Tags,
		Description: form.Description,
		Category:    form.Category,
	})
}

// Testimonial validates a testimonial.
func (v *Validator) Testimonial(in domain.Testimonial) (domain.Testimonial, FieldErrors) {
	return Check(v, v.testimonial, in)
}

// TeamMember validates a team member.
func (v *Validator) TeamMember(in domain.TeamMember) (domain.TeamMember, FieldErrors) {
	return Check(v, v.member, in)
}

// PortfolioCategory validates a category.
func (v *Validator) PortfolioCategory(in domain.PortfolioCategory) (domain.PortfolioCategory, FieldErrors) {
	return Check(v, v.category, in)
}

// PortfolioItem validates a portfolio project.
func (v *Validator) PortfolioItem(in domain.PortfolioItem) (domain.PortfolioItem, FieldErrors) {
	return Check(v, v.portfolio, in)
}

// BusinessStats validates the public business numbers.
func (v *Validator) BusinessStats(in domain.BusinessStats) (domain.BusinessStats, FieldErrors) {
	return Check(v, v.stats, in)
}

// SystemSettings validates the business identity settings.
func (v *Validator) SystemSettings(in domain.SystemSettings) (domain.SystemSettings, FieldErrors) {
	return Check(v, v.settings, in)
}

// Validate dispatches on kind. A value of the wrong type for kind is
// reported under the "input" key.
func (v *Validator) Validate(kind Kind, input any) (any, FieldErrors) {
	switch in := input.(type) {
	case domain.Inquiry:
		if kind == KindInquiry {
			return v.Inquiry(in)
		}
	case domain.MediaItem:
		if kind == KindMediaItem {
			return v.MediaItem(in)
		}
	case VideoForm:
		if kind == KindVideoForm {
			return v.Video(in)
		}
	case domain.Testimonial:
		if kind == KindTestimonial {
			return v.Testimonial(in)
		}
	case domain.TeamMember:
		if kind == KindTeamMember {
			return v.TeamMember(in)
		}
	case domain.PortfolioCategory:
		if kind == KindPortfolioCategory {
			return v.PortfolioCategory(in)
		}
	case domain.PortfolioItem:
		if kind == KindPortfolioItem {
			return v.PortfolioItem(in)
		}
	case domain.BusinessStats:
		if kind == KindBusinessStats {
			return v.BusinessStats(in)
		}
	case domain.SystemSettings:
		if kind == KindSystemSettings {
			return v.SystemSettings(in)
		}
	}
	return input, FieldErrors{"input": fmt.Sprintf("cannot validate %T as %s", input, kind)}
}
