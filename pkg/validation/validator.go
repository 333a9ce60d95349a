// Package validation holds the per-entity form schemas shared by every
// admin screen. Validation is pure: it never performs I/O.
package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/zoharmedia/zohar/pkg/domain"
)

// FieldErrors maps a field name (its JSON key) to a human-readable message.
// Only the first failing rule of each field is reported.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + fe[k]
	}
	return strings.Join(parts, "; ")
}

// Field is one validated attribute of T.
type Field[T any] struct {
	Name     string            // key in FieldErrors
	Label    string            // used in messages, e.g. "Join date"
	Rules    string            // validator tag, e.g. "required,email"
	Get      func(T) any
	Messages map[string]string // per-tag overrides of the default message
}

// Schema validates and normalizes one entity kind.
type Schema[T any] struct {
	Normalize func(T) T
	Fields    []Field[T]
}

// Validator checks inputs against the entity schemas.
type Validator struct {
	v   *validator.Validate
	now func() time.Time

	inquiry     Schema[domain.Inquiry]
	media       Schema[domain.MediaItem]
	video       Schema[VideoForm]
	testimonial Schema[domain.Testimonial]
	member      Schema[domain.TeamMember]
	category    Schema[domain.PortfolioCategory]
	portfolio   Schema[domain.PortfolioItem]
	stats       Schema[domain.BusinessStats]
	settings    Schema[domain.SystemSettings]
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock overrides the clock used to default missing dates.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// New builds a Validator with the custom rules registered.
func New(opts ...Option) *Validator {
	v := validator.New()

	v.RegisterValidation("youtube", func(fl validator.FieldLevel) bool { //nolint:errcheck // static tag name
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		_, ok = ExtractYouTubeID(value)
		return ok
	})

	out := &Validator{v: v, now: time.Now}
	for _, opt := range opts {
		opt(out)
	}
	out.buildSchemas()
	return out
}

// Today is the date used for defaulted date fields, as YYYY-MM-DD.
func (v *Validator) Today() string {
	return v.now().Format("2006-01-02")
}

// Check runs a schema against in and returns the normalized value.
// The returned FieldErrors is nil when in is valid.
func Check[T any](v *Validator, s Schema[T], in T) (T, FieldErrors) {
	out := in
	if s.Normalize != nil {
		out = s.Normalize(in)
	}
	var errs FieldErrors
	for _, f := range s.Fields {
		if _, seen := errs[f.Name]; seen {
			continue
		}
		msg, ok := v.checkField(f.Label, f.Rules, f.Get(out), f.Messages)
		if ok {
			continue
		}
		if errs == nil {
			errs = FieldErrors{}
		}
		errs[f.Name] = msg
	}
	return out, errs
}

func (v *Validator) checkField(label, rules string, value any, overrides map[string]string) (string, bool) {
	err := v.v.Var(value, rules)
	if err == nil {
		return "", true
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return fmt.Sprintf("%s is invalid", label), false
	}
	fe := ve[0]
	if msg, ok := overrides[fe.Tag()]; ok {
		return msg, false
	}
	return message(label, fe.Tag(), fe.Param()), false
}

func message(label, tag, param string) string {
	switch tag {
	case "required":
		return label + " is required"
	case "email":
		return "Please enter a valid email address"
	case "url":
		return "Please enter a valid URL"
	case "youtube":
		return "Please enter a valid YouTube URL"
	case "hexcolor":
		return "Please enter a valid hex color"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", label, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", label, param)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "lte":
		return fmt.Sprintf("%s must be at most %s", label, param)
	case "oneof":
		return "Please select a valid " + strings.ToLower(label)
	default:
		return label + " is invalid"
	}
}
