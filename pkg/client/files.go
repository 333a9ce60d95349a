package client

import (
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp" // register decoder
)

// MaxFileSize is the default upload size limit.
const MaxFileSize = 10 * 1024 * 1024

var (
	// ImageTypes are the accepted image MIME types.
	ImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	// VideoTypes are the accepted video MIME types.
	VideoTypes = []string{"video/mp4", "video/webm", "video/quicktime"}
)

// FileRules bound what may be uploaded.
type FileRules struct {
	MaxSize int64
	Allowed []string // MIME types
}

// DefaultFileRules accept the common web image and video formats up to 10MB.
func DefaultFileRules() FileRules {
	return FileRules{
		MaxSize: MaxFileSize,
		Allowed: []string{"image/jpeg", "image/png", "image/gif", "video/mp4", "video/webm"},
	}
}

// MediaFileRules accept every image and video type the media library shows.
func MediaFileRules(maxSize int64) FileRules {
	allowed := append(append([]string{}, ImageTypes...), VideoTypes...)
	return FileRules{MaxSize: maxSize, Allowed: allowed}
}

// ValidateFile checks size and sniffed content type against rules.
func ValidateFile(path string, rules FileRules) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}
	if rules.MaxSize > 0 && info.Size() > rules.MaxSize {
		return fmt.Errorf("File size must be less than %dMB", rules.MaxSize/(1024*1024))
	}
	if len(rules.Allowed) == 0 {
		return nil
	}
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return fmt.Errorf("cannot detect type of %s: %w", path, err)
	}
	for _, a := range rules.Allowed {
		if mt.Is(a) {
			return nil
		}
	}
	return fmt.Errorf("File type not allowed. Allowed types: %s", strings.Join(rules.Allowed, ", "))
}

// DetectType returns the sniffed MIME type of a file, without parameters.
func DetectType(path string) (string, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("client.DetectType: %w", err)
	}
	typ, _, _ := strings.Cut(mt.String(), ";")
	return typ, nil
}

// FormatFileSize renders a byte count as "1.5 MB", with at most two decimals.
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	i = min(i, len(units)-1)
	v := float64(bytes) / math.Pow(1024, float64(i))
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + units[i]
}

// ImageDimensions reads the pixel size of an image without decoding it.
func ImageDimensions(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("client.ImageDimensions: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("client.ImageDimensions: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
