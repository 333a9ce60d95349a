package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/zoharmedia/zohar/internal/collection"
	"github.com/zoharmedia/zohar/pkg/client"
	"github.com/zoharmedia/zohar/pkg/domain"
	"github.com/zoharmedia/zohar/pkg/validation"
)

func mediaConfig(v *validation.Validator, log *slog.Logger) collection.Config[domain.MediaItem] {
	return collection.Config[domain.MediaItem]{
		Name:     "media item",
		ID:       func(m domain.MediaItem) string { return m.ID },
		SetID:    func(m *domain.MediaItem, id string) { m.ID = id },
		Validate: v.MediaItem,
		Search: func(m domain.MediaItem) []string {
			return append([]string{m.Title}, m.Tags...)
		},
		Facets: map[string]func(domain.MediaItem) string{
			FacetType:     func(m domain.MediaItem) string { return string(m.Type) },
			FacetCategory: func(m domain.MediaItem) string { return m.Category },
		},
		Logger: log,
	}
}

// AddVideo adds a YouTube video from the add-video form.
func (d *Dashboard) AddVideo(ctx context.Context, form validation.VideoForm) (domain.MediaItem, error) {
	return collection.AddFrom(ctx, d.Media, form, d.validator.Video)
}

// UpdateMedia edits a media item. The media type cannot change.
func (d *Dashboard) UpdateMedia(ctx context.Context, id string, patch func(*domain.MediaItem)) (domain.MediaItem, error) {
	current, ok := d.Media.Get(id)
	if !ok {
		return domain.MediaItem{}, collection.ErrNotFound
	}
	return d.Media.Update(ctx, id, func(m *domain.MediaItem) {
		patch(m)
		m.Type = current.Type
	})
}

// Upload is a local file that has been sent to the upload endpoint.
type Upload struct {
	Path   string
	URL    string // where the API serves it
	Title  string // defaults to the file name
	Tags   []string
	Result client.UploadResult
}

// AddUpload registers an uploaded file in the media library, filling in
// type, size and image dimensions from the local copy.
func (d *Dashboard) AddUpload(ctx context.Context, up Upload) (domain.MediaItem, error) {
	if !up.Result.Success {
		return domain.MediaItem{}, &collection.RemoteError{Op: "upload", Message: up.Result.Message}
	}
	mime, err := client.DetectType(up.Path)
	if err != nil {
		return domain.MediaItem{}, fmt.Errorf("dashboard.AddUpload: %w", err)
	}

	item := domain.MediaItem{
		Title: up.Title,
		URL:   up.URL,
		Tags:  up.Tags,
	}
	if item.Title == "" {
		item.Title = strings.TrimSuffix(filepath.Base(up.Path), filepath.Ext(up.Path))
	}
	if info, err := os.Stat(up.Path); err == nil {
		item.Size = client.FormatFileSize(info.Size())
	}
	switch {
	case strings.HasPrefix(mime, "image/"):
		item.Type = domain.MediaImage
		item.Thumbnail = up.URL
		if w, h, err := client.ImageDimensions(up.Path); err == nil {
			item.Dimensions = fmt.Sprintf("%dx%d", w, h)
		}
	case strings.HasPrefix(mime, "video/"):
		item.Type = domain.MediaVideo
	default:
		return domain.MediaItem{}, &collection.ValidationError{Fields: validation.FieldErrors{"type": "Please select a valid type"}}
	}
	return d.Media.Add(ctx, item)
}
