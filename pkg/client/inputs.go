package client

import "github.com/zoharmedia/zohar/pkg/domain"

// InquiryInput is the payload for creating or updating an inquiry.
type InquiryInput struct {
	Name       string               `json:"name"`
	Email      string               `json:"email"`
	Subject    string               `json:"subject"`
	Message    string               `json:"message"`
	Type       domain.InquiryType   `json:"type"`
	Status     domain.InquiryStatus `json:"status,omitempty"`
	AssignedTo string               `json:"assigned_to,omitempty"`
	Response   string               `json:"response,omitempty"`
}

func inquiryInput(i domain.Inquiry) any {
	return InquiryInput{
		Name:       i.Name,
		Email:      i.Email,
		Subject:    i.Subject,
		Message:    i.Message,
		Type:       i.Type,
		Status:     i.Status,
		AssignedTo: i.AssignedTo,
		Response:   i.Response,
	}
}

// MediaItemInput is the payload for creating or updating a media item.
type MediaItemInput struct {
	Title       string           `json:"title"`
	Type        domain.MediaType `json:"type"`
	URL         string           `json:"url"`
	Thumbnail   string           `json:"thumbnail_url,omitempty"`
	Size        string           `json:"file_size,omitempty"`
	Dimensions  string           `json:"dimensions,omitempty"`
	Duration    string           `json:"duration,omitempty"`
	Description string           `json:"description,omitempty"`
	Category    string           `json:"category,omitempty"`
	Tags        domain.Tags      `json:"tags"`
}

func mediaItemInput(m domain.MediaItem) any {
	tags := m.Tags
	if tags == nil {
		tags = domain.Tags{}
	}
	return MediaItemInput{
		Title:       m.Title,
		Type:        m.Type,
		URL:         m.URL,
		Thumbnail:   m.Thumbnail,
		Size:        m.Size,
		Dimensions:  m.Dimensions,
		Duration:    m.Duration,
		Description: m.Description,
		Category:    m.Category,
		Tags:        tags,
	}
}

// TestimonialInput is the payload for creating or updating a testimonial.
type TestimonialInput struct {
	Name            string                   `json:"name"`
	Company         string                   `json:"company,omitempty"`
	Email           string                   `json:"email,omitempty"`
	Message         string                   `json:"message"`
	Rating          int                      `json:"rating"`
	Date            string                   `json:"testimonial_date,omitempty"`
	Status          domain.TestimonialStatus `json:"status"`
	Featured        bool                     `json:"featured"`
	Avatar          string                   `json:"avatar_url,omitempty"`
	PortfolioItemID string                   `json:"portfolio_item_id,omitempty"`
}

func testimonialInput(t domain.Testimonial) any {
	return TestimonialInput{
		Name:            t.Name,
		Company:         t.Company,
		Email:           t.Email,
		Message:         t.Message,
		Rating:          t.Rating,
		Date:            t.Date,
		Status:          t.Status,
		Featured:        t.Featured,
		Avatar:          t.Avatar,
		PortfolioItemID: t.PortfolioItemID,
	}
}

// TeamMemberInput is the payload for creating or updating a team member.
type TeamMemberInput struct {
	Name        string                  `json:"name"`
	Role        string                  `json:"role"`
	Email       string                  `json:"email"`
	Phone       string                  `json:"phone,omitempty"`
	Avatar      string                  `json:"avatar_url,omitempty"`
	Bio         string                  `json:"bio,omitempty"`
	JoinDate    string                  `json:"join_date,omitempty"`
	Status      domain.TeamMemberStatus `json:"status"`
	Skills      domain.Skills           `json:"skills"`
	SocialLinks domain.SocialLinks      `json:"social_links"`
}

func teamMemberInput(m domain.TeamMember) any {
	in := TeamMemberInput{
		Name:        m.Name,
		Role:        m.Role,
		Email:       m.Email,
		Phone:       m.Phone,
		Avatar:      m.Avatar,
		Bio:         m.Bio,
		JoinDate:    m.JoinDate,
		Status:      m.Status,
		Skills:      m.Skills,
		SocialLinks: m.SocialLinks,
	}
	if in.Skills == nil {
		in.Skills = domain.Skills{}
	}
	if in.SocialLinks == nil {
		in.SocialLinks = domain.SocialLinks{}
	}
	return in
}

// PortfolioCategoryInput is the payload for creating or updating a category.
type PortfolioCategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color"`
}

func categoryInput(c domain.PortfolioCategory) any {
	return PortfolioCategoryInput{Name: c.Name, Description: c.Description, Color: c.Color}
}

// PortfolioItemInput is the payload for creating or updating a portfolio item.
type PortfolioItemInput struct {
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	CategoryID   string                 `json:"category_id,omitempty"`
	Thumbnail    string                 `json:"thumbnail_url,omitempty"`
	Client       string                 `json:"client_name,omitempty"`
	ProjectDate  string                 `json:"project_date"`
	Status       domain.PortfolioStatus `json:"status"`
	Featured     bool                   `json:"featured"`
	ProjectURL   string                 `json:"project_url,omitempty"`
	Testimonial  string                 `json:"testimonial,omitempty"`
	Images       domain.Images          `json:"images"`
	Tags         domain.Tags            `json:"tags"`
	Technologies domain.Technologies    `json:"technologies"`
	TeamMembers  domain.MemberRefs      `json:"team_members"`
}

func portfolioItemInput(p domain.PortfolioItem) any {
	in := PortfolioItemInput{
		Title:        p.Title,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		Thumbnail:    p.Thumbnail,
		Client:       p.Client,
		ProjectDate:  p.ProjectDate,
		Status:       p.Status,
		Featured:     p.Featured,
		ProjectURL:   p.ProjectURL,
		Testimonial:  p.Testimonial,
		Images:       p.Images,
		Tags:         p.Tags,
		Technologies: p.Technologies,
		TeamMembers:  p.TeamMembers,
	}
	if in.Images == nil {
		in.Images = domain.Images{}
	}
	if in.Tags == nil {
		in.Tags = domain.Tags{}
	}
	if in.Technologies == nil {
		in.Technologies = domain.Technologies{}
	}
	if in.TeamMembers == nil {
		in.TeamMembers = domain.MemberRefs{}
	}
	return in
}

// BusinessStatsInput is the payload for updating the business numbers.
// Money travels as a JSON number.
type BusinessStatsInput struct {
	CompletedProjects   int      `json:"completed_projects"`
	HappyClients        int      `json:"happy_clients"`
	PerspectiveClients  int      `json:"perspective_clients"`
	TotalRevenue        *float64 `json:"total_revenue"`
	AverageProjectValue *float64 `json:"average_project_value"`
	IsPublic            bool     `json:"is_public"`
	AutoUpdate          bool     `json:"auto_update"`
}

func businessStatsInput(s domain.BusinessStats) any {
	in := BusinessStatsInput{
		CompletedProjects:  s.CompletedProjects,
		HappyClients:       s.HappyClients,
		PerspectiveClients: s.PerspectiveClients,
		IsPublic:           s.IsPublic,
		AutoUpdate:         s.AutoUpdate,
	}
	if s.TotalRevenue.Valid {
		v := s.TotalRevenue.Decimal.InexactFloat64()
		in.TotalRevenue = &v
	}
	if s.AverageProjectValue.Valid {
		v := s.AverageProjectValue.Decimal.InexactFloat64()
		in.AverageProjectValue = &v
	}
	return in
}

// SystemSettingsInput is the payload for updating the business identity.
type SystemSettingsInput struct {
	BusinessName        string       `json:"business_name"`
	BusinessDescription string       `json:"business_description,omitempty"`
	Industry            string       `json:"industry,omitempty"`
	WebsiteURL          string       `json:"website_url,omitempty"`
	ContactEmail        string       `json:"contact_email,omitempty"`
	Theme               domain.Theme `json:"theme,omitempty"`
}

func systemSettingsInput(s domain.SystemSettings) any {
	return SystemSettingsInput{
		BusinessName:        s.BusinessName,
		BusinessDescription: s.BusinessDescription,
		Industry:            s.Industry,
		WebsiteURL:          s.WebsiteURL,
		ContactEmail:        s.ContactEmail,
		Theme:               s.Theme,
	}
}
