package words

import (
	"context"
	"sort"

	"github.com/vovakirdan/wordsearch/internal/registry"
)

// Pack sources reported by Library.Entries.
const (
	SourceBuiltin = "builtin"
	SourceCatalog = "catalog"
)

// Entry describes one pack available to play.
type Entry struct {
	Name   string
	Title  string
	Words  int
	Source string
}

// Library merges the catalog with the built-in packs.
// It is safe for concurrent use when the catalog is.
type Library struct {
	catalog Catalog
}

// NewLibrary returns a library over catalog. A nil catalog serves built-ins only.
func NewLibrary(catalog Catalog) *Library {
	return &Library{catalog: catalog}
}

// Entries lists every playable pack sorted by name. A catalog pack hides the
// built-in of the same name.
func (l *Library) Entries(ctx context.Context) ([]Entry, error) {
	byName := make(map[string]Entry)
	for _, info := range registry.List() {
		byName[info.Name] = Entry{Name: info.Name, Title: info.Title, Words: info.Size, Source: SourceBuiltin}
	}

	if l.catalog != nil {
		stored, err := l.catalog.ListPacks(ctx)
		if err != nil {
			return nil, err
		}
		for _, ps := range stored {
			byName[ps.Name] = Entry{Name: ps.Name, Title: ps.Title, Words: ps.Words, Source: SourceCatalog}
		}
	}

	entries := make([]Entry, 0, len(byName))
	for _, e := range byName {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Resolve finds a pack by name. See the package-level Resolve.
func (l *Library) Resolve(ctx context.Context, name string) (registry.Pack, error) {
	return Resolve(ctx, l.catalog, name)
}
