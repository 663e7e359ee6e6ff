package model

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/surfaces/internal/surface"
)

type seedFile struct {
	Surfaces []seedSurface `yaml:"surfaces"`
}

type seedSurface struct {
	ID      string   `yaml:"id"`
	Title   string   `yaml:"title"`
	Authors []string `yaml:"authors"`
	Notes   int      `yaml:"notes"`
}

// LoadSeed reads surfaces from a YAML fixture. An empty path yields the
// built-in demo set.
func LoadSeed(path string) ([]surface.Surface, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultSeed(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a YAML fixture.
func ParseSeed(data []byte) ([]surface.Surface, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	out := make([]surface.Surface, 0, len(file.Surfaces))
	for i, entry := range file.Surfaces {
		title := strings.TrimSpace(entry.Title)
		if title == "" {
			return nil, fmt.Errorf("parse seed: surface %d has no title", i)
		}
		if entry.Notes < 0 {
			return nil, fmt.Errorf("parse seed: surface %q has negative note count", title)
		}
		out = append(out, surface.Surface{
			ID:        strings.TrimSpace(entry.ID),
			Title:     title,
			Authors:   append([]string(nil), entry.Authors...),
			NoteCount: entry.Notes,
		})
	}
	return out, nil
}

// DefaultSeed is the demo set used when no fixture is configured.
func DefaultSeed() []surface.Surface {
	return []surface.Surface{
		{Title: "Groceries", Authors: []string{"ana"}, NoteCount: 4},
		{Title: "Sprint board", Authors: []string{"ana", "bo", "cy"}, NoteCount: 12},
		{Title: "Reading list", Authors: []string{"bo"}, NoteCount: 7},
		{Title: "Trip to Lisbon", Authors: []string{"cy", "ana"}, NoteCount: 2},
	}
}
