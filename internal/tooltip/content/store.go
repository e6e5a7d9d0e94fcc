// Package content is the static tooltip text catalog. Lookups never fail:
// an unknown id produces a placeholder entry instead.
package content

import (
	_ "embed"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/shhac/aura/internal/errors"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Category groups tooltips by the kind of value they explain.
type Category string

const (
	CategoryRisk     Category = "risk"
	CategoryShap     Category = "shap"
	CategoryCampaign Category = "campaign"
	CategoryMetric   Category = "metric"
	CategoryField    Category = "field"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryRisk, CategoryShap, CategoryCampaign, CategoryMetric, CategoryField:
		return true
	}
	return false
}

// Placeholder text for ids with no catalog entry.
const (
	FallbackTitle   = "Bilgi Eksik"
	FallbackContent = "Bu alan için açıklama henüz eklenmemiş."
)

// Entry is one tooltip's display text.
type Entry struct {
	ID       string   `yaml:"-"`
	Title    string   `yaml:"title"`
	Content  string   `yaml:"content"`
	Category Category `yaml:"category"`

	// Fallback marks a synthesized placeholder for an unknown id.
	Fallback bool `yaml:"-"`
}

// Placeholder returns the entry shown for an id missing from the catalog.
func Placeholder(id string) Entry {
	return Entry{
		ID:       id,
		Title:    FallbackTitle,
		Content:  FallbackContent,
		Category: CategoryField,
		Fallback: true,
	}
}

// Store is an immutable id -> Entry catalog.
type Store struct {
	entries map[string]Entry
	ids     []string
	logger  *slog.Logger
}

// New builds a store from the given entries. Later duplicates win.
func New(entries []Entry, logger *slog.Logger) *Store {
	s := &Store{
		entries: make(map[string]Entry, len(entries)),
		logger:  logger,
	}
	for _, e := range entries {
		s.entries[e.ID] = e
	}
	s.ids = make([]string, 0, len(s.entries))
	for id := range s.entries {
		s.ids = append(s.ids, id)
	}
	sort.Strings(s.ids)
	return s
}

// Load parses a YAML catalog keyed by tooltip id.
func Load(data []byte, logger *slog.Logger) (*Store, error) {
	entries, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return New(entries, logger), nil
}

// Default returns the store backed by the catalog compiled into the binary.
func Default(logger *slog.Logger) (*Store, error) {
	store, err := Load(catalogYAML, logger)
	if err != nil {
		return nil, fmt.Errorf("load embedded tooltip catalog: %w", err)
	}
	return store, nil
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) ([]Entry, error) {
	var doc map[string]Entry
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal tooltip catalog: %w", err)
	}

	entries := make([]Entry, 0, len(doc))
	for id, e := range doc {
		e.ID = id
		if err := validateEntry(e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

func validateEntry(e Entry) error {
	switch {
	case e.ID == "":
		return apperrors.ValidationError{Field: "id", Message: "tooltip id must not be empty"}
	case e.Title == "":
		return apperrors.ValidationError{Field: e.ID + ".title", Message: "title must not be empty"}
	case e.Content == "":
		return apperrors.ValidationError{Field: e.ID + ".content", Message: "content must not be empty"}
	case !e.Category.Valid():
		return apperrors.ValidationError{Field: e.ID + ".category", Message: fmt.Sprintf("unknown category %q", e.Category)}
	}
	return nil
}

// Scoped qualifies id with scope so a second trigger can show the same
// entry under its own tooltip id. Get and Lookup resolve it to id.
func Scoped(scope, id string) string {
	return scope + "/" + id
}

// BaseID strips the scope added by Scoped.
func BaseID(id string) string {
	if i := strings.LastIndexByte(id, '/'); i >= 0 {
		return id[i+1:]
	}
	return id
}

// Get returns the entry for id and whether the catalog has it.
func (s *Store) Get(id string) (Entry, bool) {
	e, ok := s.entries[BaseID(id)]
	return e, ok
}

// Lookup returns the entry for id, or a placeholder carrying the same id
// when the catalog has none. Missing ids are logged, never fatal.
func (s *Store) Lookup(id string) Entry {
	if e, ok := s.Get(id); ok {
		return e
	}
	if s.logger != nil {
		s.logger.Warn("no tooltip content for id", slog.String("id", id))
	}
	return Placeholder(id)
}

// IDs returns every catalog id in sorted order.
func (s *Store) IDs() []string {
	return append([]string(nil), s.ids...)
}

// Len returns the number of catalog entries.
func (s *Store) Len() int {
	return len(s.ids)
}

// IDsByCategory returns the sorted ids belonging to category c.
func (s *Store) IDsByCategory(c Category) []string {
	var ids []string
	for _, id := range s.ids {
		if s.entries[id].Category == c {
			ids = append(ids, id)
		}
	}
	return ids
}

// ValidationResult lists the ids a page needs but the catalog lacks.
type ValidationResult struct {
	Checked int
	Missing []string
}

// Valid reports whether every checked id was found.
func (r ValidationResult) Valid() bool {
	return len(r.Missing) == 0
}

// Validate checks that every id in ids has catalog content.
func (s *Store) Validate(ids []string) ValidationResult {
	result := ValidationResult{Checked: len(ids)}
	for _, id := range ids {
		if _, ok := s.Get(id); !ok {
			result.Missing = append(result.Missing, id)
		}
	}
	if !result.Valid() && s.logger != nil {
		s.logger.Warn("missing tooltip content", slog.Any("ids", result.Missing))
	}
	return result
}
