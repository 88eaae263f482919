// Package registry provides a global registry for built-in word packs.
// Packs register themselves in init() functions, allowing the front ends to
// discover them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrPackNotFound is returned when no pack has the requested name.
var ErrPackNotFound = errors.New("pack not found")

// Pack is a named word pool.
type Pack struct {
	Name  string   `yaml:"name" json:"name"`
	Title string   `yaml:"title" json:"title"`
	Words []string `yaml:"words" json:"words"`
}

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	Name  string
	Title string
	Size  int // Number of words
}

var (
	packs = make(map[string]Pack)
	mu    sync.RWMutex
)

// Register adds a pack to the registry.
// Typically called from an init() function.
// Panics if a pack with the same name is already registered.
func Register(p Pack) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := packs[p.Name]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", p.Name))
	}

	p.Words = append([]string(nil), p.Words...)
	packs[p.Name] = p
}

// List returns information about all registered packs, sorted by name.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(packs))
	for name, p := range packs {
		result = append(result, PackInfo{
			Name:  name,
			Title: p.Title,
			Size:  len(p.Words),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Lookup returns a copy of the pack registered under name.
func Lookup(name string) (Pack, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := packs[name]
	if !ok {
		return Pack{}, fmt.Errorf("registry: %q: %w", name, ErrPackNotFound)
	}

	p.Words = append([]string(nil), p.Words...)
	return p, nil
}

// Exists checks if a pack with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := packs[name]
	return ok
}
