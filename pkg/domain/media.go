package domain

// MediaType distinguishes images from videos. Fixed once the item exists.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// MediaTypes lists every media type.
var MediaTypes = []MediaType{MediaImage, MediaVideo}

var mediaTypeSet = setOf(MediaTypes)

// Valid reports whether t is a known media type.
func (t MediaType) Valid() bool { return mediaTypeSet[t] }

func (t MediaType) MarshalText() ([]byte, error) { return []byte(wireName(string(t))), nil }

func (t *MediaType) UnmarshalText(b []byte) error {
	*t = MediaType(localName(string(b)))
	return nil
}

// MediaItem is an image or video in the media library.
type MediaItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        MediaType `json:"type"`
	URL         string    `json:"url"`
	Thumbnail   string    `json:"thumbnail_url,omitempty"`
	Tags        Tags      `json:"tags,omitempty"`
	UploadDate  string    `json:"upload_date,omitempty"`
	Size        string    `json:"file_size,omitempty"`  // human readable, e.g. "2.4 MB"
	Dimensions  string    `json:"dimensions,omitempty"` // "1920x1080"
	Duration    string    `json:"duration,omitempty"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
}
