package client

import (
	"context"

	"github.com/zoharmedia/zohar/pkg/domain"
)

// Resource binds the list query and the create, update and delete
// mutations of one entity kind.
type Resource[T any] struct {
	c      *Client
	list   Operation
	create Operation
	update Operation
	remove Operation
	input  func(T) any
}

// List fetches every record of the kind.
func (r *Resource[T]) List(ctx context.Context) Result[[]T] {
	var vars map[string]any
	if r.list.Paged {
		vars = map[string]any{"limit": r.c.pageSize, "offset": 0}
	}
	return List[T](ctx, r.c, r.list, vars)
}

// Create sends a new record and returns the server's canonical copy.
func (r *Resource[T]) Create(ctx context.Context, item T) Result[T] {
	return Mutate[T](ctx, r.c, r.create, map[string]any{"input": r.input(item)})
}

// Update replaces the record with the given ID.
func (r *Resource[T]) Update(ctx context.Context, id string, item T) Result[T] {
	return Mutate[T](ctx, r.c, r.update, map[string]any{"id": id, "input": r.input(item)})
}

// Delete removes the record with the given ID.
func (r *Resource[T]) Delete(ctx context.Context, id string) Result[T] {
	return Mutate[T](ctx, r.c, r.remove, map[string]any{"id": id})
}

// Single binds the fetch query and save mutation of a singleton record.
type Single[T any] struct {
	c     *Client
	fetch Operation
	save  Operation
	input func(T) any
}

// Fetch returns the record. A Success result may carry nil Data when the
// server has no record yet.
func (s *Single[T]) Fetch(ctx context.Context) Result[T] {
	return Query[T](ctx, s.c, s.fetch, nil)
}

// Save writes the record and returns the server's copy.
func (s *Single[T]) Save(ctx context.Context, item T) Result[T] {
	return Mutate[T](ctx, s.c, s.save, map[string]any{"input": s.input(item)})
}

// Inquiries returns the inquiry resource.
func (c *Client) Inquiries() *Resource[domain.Inquiry] {
	return &Resource[domain.Inquiry]{c: c, list: listInquiries, create: createInquiry,
		update: updateInquiry, remove: deleteInquiry, input: inquiryInput}
}

// MediaItems returns the media library resource.
func (c *Client) MediaItems() *Resource[domain.MediaItem] {
	return &Resource[domain.MediaItem]{c: c, list: listMediaItems, create: createMediaItem,
		update: updateMediaItem, remove: deleteMediaItem, input: mediaItemInput}
}

// Testimonials returns the testimonial resource.
func (c *Client) Testimonials() *Resource[domain.Testimonial] {
	return &Resource[domain.Testimonial]{c: c, list: listTestimonials, create: createTestimonial,
		update: updateTestimonial, remove: deleteTestimonial, input: testimonialInput}
}

// TeamMembers returns the team roster resource.
func (c *Client) TeamMembers() *Resource[domain.TeamMember] {
	return &Resource[domain.TeamMember]{c: c, list: listTeamMembers, create: createTeamMember,
		update: updateTeamMember, remove: deleteTeamMember, input: teamMemberInput}
}

// PortfolioCategories returns the category resource.
func (c *Client) PortfolioCategories() *Resource[domain.PortfolioCategory] {
	return &Resource[domain.PortfolioCategory]{c: c, list: listPortfolioCategories, create: createPortfolioCategory,
		update: updatePortfolioCategory, remove: deletePortfolioCategory, input: categoryInput}
}

// PortfolioItems returns the portfolio resource.
func (c *Client) PortfolioItems() *Resource[domain.PortfolioItem] {
	return &Resource[domain.PortfolioItem]{c: c, list: listPortfolioItems, create: createPortfolioItem,
		update: updatePortfolioItem, remove: deletePortfolioItem, input: portfolioItemInput}
}

// BusinessStatistics returns the public business numbers singleton.
func (c *Client) BusinessStatistics() *Single[domain.BusinessStats] {
	return &Single[domain.BusinessStats]{c: c, fetch: getBusinessStatistics, save: updateBusinessStatistics,
		input: businessStatsInput}
}

// SystemSettings returns the business identity singleton.
func (c *Client) SystemSettings() *Single[domain.SystemSettings] {
	return &Single[domain.SystemSettings]{c: c, fetch: getSystemSettings, save: updateSystemSettings,
		input: systemSettingsInput}
}
