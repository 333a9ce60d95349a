package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// AddLabel appends a trimmed label unless it is blank or already present.
func AddLabel[S ~[]string](labels S, label string) S {
	label = strings.TrimSpace(label)
	if label == "" {
		return labels
	}
	for _, l := range labels {
		if l == label {
			return labels
		}
	}
	return append(labels, label)
}

// RemoveLabel drops every occurrence of label.
func RemoveLabel[S ~[]string](labels S, label string) S {
	out := make(S, 0, len(labels))
	for _, l := range labels {
		if l != label {
			out = append(out, l)
		}
	}
	return out
}

// NormalizeLabels trims, drops blanks and removes duplicates, keeping first
// occurrence order. Nil in, nil out.
func NormalizeLabels[S ~[]string](labels S) S {
	if labels == nil {
		return nil
	}
	out := make(S, 0, len(labels))
	for _, l := range labels {
		out = AddLabel(out, l)
	}
	return out
}

// ParseLabels splits a comma-separated list into normalized labels.
func ParseLabels(s string) []string {
	return NormalizeLabels(strings.Split(s, ","))
}

// Tags are free-form labels; on the wire [{"tag_name": "..."}].
type Tags []string

func (t Tags) MarshalJSON() ([]byte, error) { return marshalNamed("tag_name", t) }

func (t *Tags) UnmarshalJSON(b []byte) error {
	v, err := unmarshalNamed("tag_name", b)
	*t = v
	return err
}

// Skills belong to team members; on the wire [{"skill_name": "..."}].
type Skills []string

func (s Skills) MarshalJSON() ([]byte, error) { return marshalNamed("skill_name", s) }

func (s *Skills) UnmarshalJSON(b []byte) error {
	v, err := unmarshalNamed("skill_name", b)
	*s = v
	return err
}

// Technologies belong to portfolio items; on the wire [{"technology_name": "..."}].
type Technologies []string

func (t Technologies) MarshalJSON() ([]byte, error) { return marshalNamed("technology_name", t) }

func (t *Technologies) UnmarshalJSON(b []byte) error {
	v, err := unmarshalNamed("technology_name", b)
	*t = v
	return err
}

// MemberRefs are team member IDs; on the wire [{"team_member_id": "..."}].
type MemberRefs []string

func (m MemberRefs) MarshalJSON() ([]byte, error) { return marshalNamed("team_member_id", m) }

func (m *MemberRefs) UnmarshalJSON(b []byte) error {
	v, err := unmarshalNamed("team_member_id", b)
	*m = v
	return err
}

// Images are image URLs in display order; on the wire
// [{"image_url": "...", "sort_order": n}].
type Images []string

func (im Images) MarshalJSON() ([]byte, error) {
	type image struct {
		URL       string `json:"image_url"`
		SortOrder int    `json:"sort_order"`
	}
	out := make([]image, len(im))
	for i, u := range im {
		out[i] = image{URL: u, SortOrder: i}
	}
	return json.Marshal(out)
}

func (im *Images) UnmarshalJSON(b []byte) error {
	var raw []struct {
		URL       string `json:"image_url"`
		SortOrder int    `json:"sort_order"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("images: %w", err)
	}
	sort.SliceStable(raw, func(i, j int) bool { return raw[i].SortOrder < raw[j].SortOrder })
	out := make(Images, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.URL)
	}
	*im = out
	return nil
}

// SocialLinks maps a platform name to a profile URL; on the wire
// [{"platform": "...", "url": "..."}].
type SocialLinks map[string]string

// Platforms returns the platform names in sorted order.
func (s SocialLinks) Platforms() []string {
	platforms := make([]string, 0, len(s))
	for p := range s {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)
	return platforms
}

func (s SocialLinks) MarshalJSON() ([]byte, error) {
	type link struct {
		Platform string `json:"platform"`
		URL      string `json:"url"`
	}
	out := make([]link, 0, len(s))
	for _, p := range s.Platforms() {
		out = append(out, link{Platform: p, URL: s[p]})
	}
	return json.Marshal(out)
}

func (s *SocialLinks) UnmarshalJSON(b []byte) error {
	var raw []struct {
		Platform string `json:"platform"`
		URL      string `json:"url"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("social links: %w", err)
	}
	out := make(SocialLinks, len(raw))
	for _, r := range raw {
		out[r.Platform] = r.URL
	}
	*s = out
	return nil
}

func marshalNamed[S ~[]string](key string, values S) ([]byte, error) {
	out := make([]map[string]string, len(values))
	for i, v := range values {
		out[i] = map[string]string{key: v}
	}
	return json.Marshal(out)
}

// unmarshalNamed accepts both the object form and a plain string array.
func unmarshalNamed(key string, b []byte) ([]string, error) {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil, nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("%s list: %w", key, err)
	}
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		var s string
		if json.Unmarshal(r, &s) == nil {
			out = append(out, s)
			continue
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(r, &obj); err != nil {
			return nil, fmt.Errorf("%s list: %w", key, err)
		}
		if err := json.Unmarshal(obj[key], &s); err != nil {
			return nil, fmt.Errorf("%s list: missing %s", key, key)
		}
		out = append(out, s)
	}
	return out, nil
}
