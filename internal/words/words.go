// Package words loads, normalizes and resolves word packs.
// Built-in packs are embedded YAML files registered at init; user packs live
// in the SQLite catalog and take precedence over built-ins of the same name.
package words

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/wordsearch/internal/registry"
	"github.com/vovakirdan/wordsearch/internal/storage"
)

var (
	// ErrEmptyPool is returned when a pack has no usable words.
	ErrEmptyPool = errors.New("words: empty word pool")
	// ErrInvalidWord is returned for words with characters outside A-Z.
	ErrInvalidWord = errors.New("words: invalid word")
)

// Normalize trims, uppercases and deduplicates words, keeping first
// occurrences in order. Blank entries are skipped. Words containing anything
// other than the letters A-Z are rejected.
func Normalize(words []string) ([]string, error) {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))

	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		for _, r := range w {
			if r < 'A' || r > 'Z' {
				return nil, fmt.Errorf("%w: %q", ErrInvalidWord, w)
			}
		}
		seen[w] = true
		out = append(out, w)
	}

	if len(out) == 0 {
		return nil, ErrEmptyPool
	}
	return out, nil
}

// ParseYAML decodes and normalizes a pack file.
func ParseYAML(data []byte) (registry.Pack, error) {
	var p registry.Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return registry.Pack{}, fmt.Errorf("words: parse pack: %w", err)
	}

	p.Name = strings.ToLower(strings.TrimSpace(p.Name))
	if p.Name == "" {
		return registry.Pack{}, errors.New("words: pack has no name")
	}
	if p.Title == "" {
		p.Title = p.Name
	}

	normalized, err := Normalize(p.Words)
	if err != nil {
		return registry.Pack{}, fmt.Errorf("words: pack %q: %w", p.Name, err)
	}
	p.Words = normalized
	return p, nil
}

// LoadFile reads a pack file from disk.
func LoadFile(path string) (registry.Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return registry.Pack{}, fmt.Errorf("words: read %s: %w", path, err)
	}
	return ParseYAML(data)
}

// Catalog is a store of user packs, typically *storage.Store.
type Catalog interface {
	Pack(ctx context.Context, name string) (registry.Pack, error)
	ListPacks(ctx context.Context) ([]storage.PackSummary, error)
}

// Resolve finds a pack by name, trying the catalog first and the built-in
// registry second. A nil catalog skips straight to the built-ins.
func Resolve(ctx context.Context, catalog Catalog, name string) (registry.Pack, error) {
	if catalog != nil {
		p, err := catalog.Pack(ctx, name)
		if err == nil {
			return checkPool(p)
		}
		if !errors.Is(err, registry.ErrPackNotFound) {
			return registry.Pack{}, err
		}
	}

	p, err := registry.Lookup(name)
	if err != nil {
		return registry.Pack{}, fmt.Errorf("words: pack %q: %w", name, registry.ErrPackNotFound)
	}
	return checkPool(p)
}

func checkPool(p registry.Pack) (registry.Pack, error) {
	if len(p.Words) == 0 {
		return registry.Pack{}, fmt.Errorf("words: pack %q: %w", p.Name, ErrEmptyPool)
	}
	return p, nil
}
