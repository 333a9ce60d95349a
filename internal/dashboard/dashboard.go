// Package dashboard builds one controller per entity kind and the rules
// that span collections, such as the category delete guard.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/zoharmedia/zohar/internal/collection"
	"github.com/zoharmedia/zohar/internal/stats"
	"github.com/zoharmedia/zohar/pkg/client"
	"github.com/zoharmedia/zohar/pkg/domain"
	"github.com/zoharmedia/zohar/pkg/validation"
)

// Facet names shared by the screens.
const (
	FacetStatus   = "status"
	FacetType     = "type"
	FacetRole     = "role"
	FacetCategory = "category"
)

// Gateways are the remote ends of every collection.
type Gateways struct {
	Inquiries    collection.Gateway[domain.Inquiry]
	Media        collection.Gateway[domain.MediaItem]
	Testimonials collection.Gateway[domain.Testimonial]
	Team         collection.Gateway[domain.TeamMember]
	Categories   collection.Gateway[domain.PortfolioCategory]
	Portfolio    collection.Gateway[domain.PortfolioItem]
	Stats        collection.Store[domain.BusinessStats]
	Settings     collection.Store[domain.SystemSettings]
}

// Remote returns gateways backed by the API client.
func Remote(c *client.Client) Gateways {
	return Gateways{
		Inquiries:    c.Inquiries(),
		Media:        c.MediaItems(),
		Testimonials: c.Testimonials(),
		Team:         c.TeamMembers(),
		Categories:   c.PortfolioCategories(),
		Portfolio:    c.PortfolioItems(),
		Stats:        c.BusinessStatistics(),
		Settings:     c.SystemSettings(),
	}
}

// Dashboard holds every collection of the admin console.
type Dashboard struct {
	Inquiries    *collection.Controller[domain.Inquiry]
	Media        *collection.Controller[domain.MediaItem]
	Testimonials *collection.Controller[domain.Testimonial]
	Team         *collection.Controller[domain.TeamMember]
	Categories   *collection.Controller[domain.PortfolioCategory]
	Portfolio    *collection.Controller[domain.PortfolioItem]
	Stats        *collection.Singleton[domain.BusinessStats]
	Settings     *collection.Singleton[domain.SystemSettings]

	validator *validation.Validator
	log       *slog.Logger
}

// New wires the controllers. A nil logger uses slog.Default.
func New(gw Gateways, v *validation.Validator, log *slog.Logger) *Dashboard {
	if log == nil {
		log = slog.Default()
	}
	d := &Dashboard{validator: v, log: log}
	d.Inquiries = collection.New(inquiryConfig(v, log), gw.Inquiries)
	d.Media = collection.New(mediaConfig(v, log), gw.Media)
	d.Testimonials = collection.New(testimonialConfig(v, log), gw.Testimonials)
	d.Team = collection.New(teamConfig(v, log), gw.Team)
	d.Portfolio = collection.New(portfolioConfig(v, log), gw.Portfolio)
	d.Categories = collection.New(categoryConfig(v, log, d.categoryGuard), gw.Categories)
	d.Stats = collection.NewSingleton("business stats", gw.Stats, v.BusinessStats, log)
	d.Settings = collection.NewSingleton("system settings", gw.Settings, v.SystemSettings, log)
	return d
}

// Validator returns the validator the collections use.
func (d *Dashboard) Validator() *validation.Validator { return d.validator }

// LoadAll loads every collection concurrently. Each failure is reported;
// one failing collection does not stop the others.
func (d *Dashboard) LoadAll(ctx context.Context) error {
	loaders := []func(context.Context) error{
		d.Inquiries.Load,
		d.Media.Load,
		d.Testimonials.Load,
		d.Team.Load,
		d.Categories.Load,
		d.Portfolio.Load,
		d.Stats.Load,
		d.Settings.Load,
	}

	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	for _, load := range loaders {
		load := load
		g.Go(func() error {
			if err := load(ctx); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	g.Wait() //nolint:errcheck // loaders report through errs
	if len(errs) > 0 {
		d.log.Warn("dashboard load incomplete", "failures", len(errs))
	}
	return errors.Join(errs...)
}

// Overview computes the headline counters.
func (d *Dashboard) Overview() stats.Overview {
	return stats.Overview{
		Inquiries:    stats.Inquiries(d.Inquiries.Items()),
		Media:        stats.Media(d.Media.Items()),
		Testimonials: stats.Testimonials(d.Testimonials.Items()),
		Team:         stats.Team(d.Team.Items()),
		Portfolio:    stats.Portfolio(d.Portfolio.Items()),
		Categories:   len(d.Categories.Items()),
	}
}

// Business returns the business numbers with derived values filled in.
func (d *Dashboard) Business() stats.BusinessSummary {
	return stats.Business(d.Stats.Get())
}
