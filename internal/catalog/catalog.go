// Package catalog fetches a dataset catalog and renders one YAML descriptor
// file per public, available dataset.
package catalog

import "strings"

const (
	authPublic      = "OPENBAAR"
	statusAvailable = "beschikbaar"
)

type Dataset struct {
	ID          string   `json:"id"`
	Path        string   `json:"path"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Auth        []string `json:"auth"`
	Status      string   `json:"status"`
}

// DisplayTitle falls back to the dataset id when no title is set.
func (d Dataset) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return d.ID
}

// Public reports whether the dataset is openly accessible and available.
func (d Dataset) Public() bool {
	if d.Status != statusAvailable {
		return false
	}
	return len(d.Auth) == 1 && d.Auth[0] == authPublic
}

// FilterPublic keeps only the datasets worth publishing a descriptor for.
func FilterPublic(datasets []Dataset) []Dataset {
	var out []Dataset
	for _, d := range datasets {
		if d.Public() {
			out = append(out, d)
		}
	}
	return out
}

// KebabCase converts a camelCase dataset id to kebab-case for file naming.
func KebabCase(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimPrefix(b.String(), "-")
}
