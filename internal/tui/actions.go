package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/zoharmedia/zohar/internal/browser"
	"github.com/zoharmedia/zohar/internal/collection"
	"github.com/zoharmedia/zohar/pkg/domain"
	"github.com/zoharmedia/zohar/pkg/validation"
)

// Clipboard and browser are swapped out in tests.
var (
	writeClipboard = clipboard.WriteAll
	openURL        = browser.Open
)

func fixed(values ...string) func() []string {
	return func() []string { return values }
}

// invalid reports a form input that could not be parsed, in the same shape
// as a validation failure so it shows next to the field.
func invalid(key, msg string) error {
	return &collection.ValidationError{Fields: validation.FieldErrors{key: msg}}
}

// copyAction copies a field of the selected row to the clipboard.
func copyAction[T any](key, label string, get func(T) string) action[T] {
	return action[T]{key: key, label: label, run: func(_ context.Context, item T) (string, error) {
		text := get(item)
		if text == "" {
			return "", errors.New("nothing to copy")
		}
		if err := writeClipboard(text); err != nil {
			return "", err
		}
		return "Copied " + text, nil
	}}
}

// openAction opens a URL of the selected row in the browser.
func openAction[T any](key, label string, get func(T) string) action[T] {
	return action[T]{key: key, label: label, run: func(_ context.Context, item T) (string, error) {
		url := get(item)
		if url == "" {
			return "", errors.New("no link to open")
		}
		if err := openURL(url); err != nil {
			return "", err
		}
		return "Opened " + url, nil
	}}
}

// statusAction moves the selected row to a fixed status.
func statusAction[T any](key, label string, ctrl *collection.Controller[T], id func(T) string, status string) action[T] {
	return action[T]{key: key, label: label, run: func(ctx context.Context, item T) (string, error) {
		if _, err := ctrl.TransitionStatus(ctx, id(item), status); err != nil {
			return "", err
		}
		return "Marked " + status, nil
	}}
}

func parseInt(values formValues, key, label string) (int, error) {
	raw := values.get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalid(key, label+" must be a whole number")
	}
	return n, nil
}

// parseSocialLinks reads "platform=url" pairs separated by commas.
func parseSocialLinks(raw string) (domain.SocialLinks, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	links := domain.SocialLinks{}
	for _, pair := range domain.ParseLabels(raw) {
		platform, url, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(platform) == "" {
			return nil, invalid("social_links", "Use platform=url, separated by commas")
		}
		links[strings.TrimSpace(platform)] = strings.TrimSpace(url)
	}
	return links, nil
}

func formatSocialLinks(links domain.SocialLinks) string {
	parts := make([]string, 0, len(links))
	for _, platform := range links.Platforms() {
		parts = append(parts, platform+"="+links[platform])
	}
	return strings.Join(parts, ", ")
}
