package dashboard

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoharmedia/zohar/internal/collection"
	"github.com/zoharmedia/zohar/internal/logger"
	"github.com/zoharmedia/zohar/internal/testutil"
	"github.com/zoharmedia/zohar/pkg/client"
	"github.com/zoharmedia/zohar/pkg/domain"
	"github.com/zoharmedia/zohar/pkg/validation"
)

type fakes struct {
	inquiries    *testutil.Gateway[domain.Inquiry]
	media        *testutil.Gateway[domain.MediaItem]
	testimonials *testutil.Gateway[domain.Testimonial]
	team         *testutil.Gateway[domain.TeamMember]
	categories   *testutil.Gateway[domain.PortfolioCategory]
	portfolio    *testutil.Gateway[domain.PortfolioItem]
	stats        *testutil.Store[domain.BusinessStats]
	settings     *testutil.Store[domain.SystemSettings]
}

func newFakes() *fakes {
	return &fakes{
		inquiries: testutil.NewGateway("inq", func(i domain.Inquiry) string { return i.ID }, func(i *domain.Inquiry, id string) { i.ID = id },
			domain.Inquiry{ID: "i1", Name: "Ada", Email: "ada@example.com", Subject: "Pricing", Message: "How much for a reel?", Status: domain.InquiryUnread, Type: domain.InquiryPricing},
		),
		media: testutil.NewGateway("med", func(m domain.MediaItem) string { return m.ID }, func(m *domain.MediaItem, id string) { m.ID = id }),
		testimonials: testutil.NewGateway("tst", func(t domain.Testimonial) string { return t.ID }, func(t *domain.Testimonial, id string) { t.ID = id },
			domain.Testimonial{ID: "t1", Name: "Kofi", Message: "Brilliant work from start to finish.", Rating: 5, Status: domain.TestimonialApproved},
		),
		team: testutil.NewGateway("tm", func(m domain.TeamMember) string { return m.ID }, func(m *domain.TeamMember, id string) { m.ID = id },
			domain.TeamMember{ID: "m1", Name: "Rae", Role: "Editor", Email: "rae@example.com", JoinDate: "2024-01-01", Status: domain.MemberActive},
			domain.TeamMember{ID: "m2", Name: "Sol", Role: "Colorist", Email: "sol@example.com", JoinDate: "2024-02-01", Status: domain.MemberActive},
		),
		categories: testutil.NewGateway("cat", func(c domain.PortfolioCategory) string { return c.ID }, func(c *domain.PortfolioCategory, id string) { c.ID = id },
			domain.PortfolioCategory{ID: "c1", Name: "Weddings", Color: "#ff0000"},
			domain.PortfolioCategory{ID: "c2", Name: "Commercial", Color: "#00ff00"},
		),
		portfolio: testutil.NewGateway("prj", func(p domain.PortfolioItem) string { return p.ID }, func(p *domain.PortfolioItem, id string) { p.ID = id },
			domain.PortfolioItem{ID: "p1", Title: "Coastal Wedding", Description: "Two days", CategoryID: "c1", ProjectDate: "2025-05-01", Status: domain.PortfolioCompleted},
		),
		stats:    testutil.NewStore(&domain.BusinessStats{CompletedProjects: 4}),
		settings: testutil.NewStore(&domain.SystemSettings{BusinessName: "Zohar Media"}),
	}
}

func (f *fakes) gateways() Gateways {
	return Gateways{
		Inquiries:    f.inquiries,
		Media:        f.media,
		Testimonials: f.testimonials,
		Team:         f.team,
		Categories:   f.categories,
		Portfolio:    f.portfolio,
		Stats:        f.stats,
		Settings:     f.settings,
	}
}

func loaded(t *testing.T) (*Dashboard, *fakes) {
	t.Helper()
	f := newFakes()
	d := New(f.gateways(), validation.New(), logger.Discard())
	require.NoError(t, d.LoadAll(context.Background()))
	return d, f
}

func TestLoadAll(t *testing.T) {
	d, _ := loaded(t)
	assert.Len(t, d.Inquiries.Items(), 1)
	assert.Len(t, d.Team.Items(), 2)
	assert.Equal(t, "Zohar Media", d.Settings.Get().BusinessName)
	assert.True(t, d.Stats.Loaded())
}

func TestLoadAllReportsEveryFailure(t *testing.T) {
	f := newFakes()
	f.media.FailWith = "media down"
	f.team.FailWith = "team down"
	d := New(f.gateways(), validation.New(), logger.Discard())

	err := d.LoadAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "media down")
	assert.Contains(t, err.Error(), "team down")
	assert.Len(t, d.Inquiries.Items(), 1, "other collections still load")
}

func TestCategoryDeleteGuard(t *testing.T) {
	d, f := loaded(t)

	err := d.Categories.Remove(context.Background(), "c1")
	assert.Equal(t, collection.GuardFailed, collection.KindOf(err))
	assert.EqualError(t, err, "This category has 1 project(s). Please reassign or delete the projects first.")
	assert.Equal(t, 0, f.categories.CallCount("delete"))

	require.NoError(t, d.Categories.Remove(context.Background(), "c2"))
	assert.Len(t, d.Categories.Items(), 1)

	require.NoError(t, d.Portfolio.Remove(context.Background(), "p1"))
	require.NoError(t, d.Categories.Remove(context.Background(), "c1"))
	assert.Empty(t, d.Categories.Items())
}

func TestAddVideo(t *testing.T) {
	d, _ := loaded(t)

	item, err := d.AddVideo(context.Background(), validation.VideoForm{
		Title:      "Showreel",
		YouTubeURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Category:   "Reels",
	})
	require.NoError(t, err)
	assert.Equal(t, "med-1", item.ID)
	assert.Equal(t, domain.MediaVideo, item.Type)
	assert.Equal(t, "med-1", d.Media.Items()[0].ID)

	_, err = d.AddVideo(context.Background(), validation.VideoForm{Title: "x", YouTubeURL: "https://example.com", Category: "y"})
	assert.Equal(t, validation.FieldErrors{"youtube_url": "Please enter a valid YouTube URL"}, collection.FieldErrors(err))
	assert.Len(t, d.Media.Items(), 1)
}

func TestUpdateMediaKeepsType(t *testing.T) {
	d, _ := loaded(t)
	item, err := d.AddVideo(context.Background(), validation.VideoForm{
		Title: "Reel", YouTubeURL: "https://youtu.be/dQw4w9WgXcQ", Category: "Reels",
	})
	require.NoError(t, err)

	updated, err := d.UpdateMedia(context.Background(), item.ID, func(m *domain.MediaItem) {
		m.Title = "Reel 2026"
		m.Type = domain.MediaImage
	})
	require.NoError(t, err)
	assert.Equal(t, "Reel 2026", updated.Title)
	assert.Equal(t, domain.MediaVideo, updated.Type)
}

func TestAddUpload(t *testing.T) {
	d, _ := loaded(t)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 30))))
	path := filepath.Join(t.TempDir(), "behind-the-scenes.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	item, err := d.AddUpload(context.Background(), Upload{
		Path:   path,
		URL:    "http://localhost:4000/uploads/media/behind-the-scenes.png",
		Result: client.UploadResult{Success: true, FileName: "behind-the-scenes.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MediaImage, item.Type)
	assert.Equal(t, "behind-the-scenes", item.Title)
	assert.Equal(t, "40x30", item.Dimensions)
	assert.NotEmpty(t, item.Size)

	_, err = d.AddUpload(context.Background(), Upload{Path: path, Result: client.UploadResult{Message: "Upload failed with status 500"}})
	assert.Equal(t, collection.RemoteFailed, collection.KindOf(err))
}

func TestRespondAndAssign(t *testing.T) {
	d, _ := loaded(t)

	got, err := d.Respond(context.Background(), "i1", "Thanks, quote attached.")
	require.NoError(t, err)
	assert.Equal(t, domain.InquiryResponded, got.Status)
	assert.NotEmpty(t, got.ResponseDate)

	got, err = d.Assign(context.Background(), "i1", "m2")
	require.NoError(t, err)
	assert.Equal(t, "m2", got.AssignedTo)

	_, err = d.Assign(context.Background(), "i1", "ghost")
	assert.Equal(t, collection.GuardFailed, collection.KindOf(err))
}

func TestOverviewTracksMutations(t *testing.T) {
	d, _ := loaded(t)
	assert.Equal(t, 1, d.Overview().Inquiries.Unread)

	_, err := d.Inquiries.TransitionStatus(context.Background(), "i1", string(domain.InquiryResolved))
	require.NoError(t, err)

	o := d.Overview()
	assert.Equal(t, 0, o.Inquiries.Unread)
	assert.Equal(t, 1, o.Inquiries.Resolved)
	assert.Equal(t, 2, o.Categories)
	assert.Equal(t, map[string]int{"c1": 1, "c2": 0}, d.CategoryProjects())
	assert.Equal(t, []string{"Colorist", "Editor"}, d.Roles())
}

func TestToggles(t *testing.T) {
	d, _ := loaded(t)

	tm, err := d.ToggleFeatured(context.Background(), "t1")
	require.NoError(t, err)
	assert.True(t, tm.Featured)

	p, err := d.TogglePortfolioFeatured(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, p.Featured)
	assert.Equal(t, "Weddings", d.CategoryName(p.CategoryID))
}

func TestSearchFields(t *testing.T) {
	d, _ := loaded(t)

	d.Team.SetSearch("COLOR")
	assert.Len(t, d.Team.List(), 1, "role is searchable")
	d.Team.SetSearch("")
	d.Team.SetFilter(FacetRole, "Editor")
	assert.Equal(t, "m1", d.Team.List()[0].ID)

	d.Portfolio.SetFilter(FacetCategory, "c2")
	assert.Empty(t, d.Portfolio.List())
	d.Portfolio.SetFilter(FacetCategory, collection.AllValues)
	assert.Len(t, d.Portfolio.List(), 1)
}

func TestUncategorizedProjectCanChangeStatusAndFeature(t *testing.T) {
	f := newFakes()
	f.portfolio = testutil.NewGateway("prj", func(p domain.PortfolioItem) string { return p.ID }, func(p *domain.PortfolioItem, id string) { p.ID = id },
		domain.PortfolioItem{ID: "p9", Title: "Street Session", Description: "Archive shoot", ProjectDate: "2024-03-02", Status: domain.PortfolioDraft},
	)
	d := New(f.gateways(), validation.New(), logger.Discard())
	require.NoError(t, d.LoadAll(context.Background()))

	p, err := d.Portfolio.TransitionStatus(context.Background(), "p9", string(domain.PortfolioCompleted))
	require.NoError(t, err)
	assert.Equal(t, domain.PortfolioCompleted, p.Status)

	p, err = d.TogglePortfolioFeatured(context.Background(), "p9")
	require.NoError(t, err)
	assert.True(t, p.Featured)
	assert.Empty(t, p.CategoryID)
	assert.Equal(t, 2, f.portfolio.CallCount("update"), "both changes reached the gateway")
}
