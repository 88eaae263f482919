package words

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/vovakirdan/wordsearch/internal/registry"
)

// DefaultPack is the pack used when none is configured.
const DefaultPack = "tech"

//go:embed packs/*.yaml
var builtinFS embed.FS

func init() {
	packs, err := builtinPacks()
	if err != nil {
		panic(err)
	}
	for _, p := range packs {
		registry.Register(p)
	}
}

// builtinPacks parses every embedded pack file.
func builtinPacks() ([]registry.Pack, error) {
	files, err := fs.Glob(builtinFS, "packs/*.yaml")
	if err != nil {
		return nil, err
	}

	packs := make([]registry.Pack, 0, len(files))
	for _, name := range files {
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("words: read builtin %s: %w", name, err)
		}
		p, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("words: builtin %s: %w", name, err)
		}
		packs = append(packs, p)
	}
	return packs, nil
}
