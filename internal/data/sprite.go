package data

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sprite is a handle into a texture atlas. Index is the region's position
// in the atlas listing; the renderer resolves it to pixels.
type Sprite struct {
	Atlas int
	Key   string
	Index int
}

func (s Sprite) IsZero() bool { return s.Key == "" }

var ErrSpriteNotFound = errors.New("sprite not found")

type atlasEntry struct {
	ID   int      `yaml:"id"`
	Name string   `yaml:"name"`
	Keys []string `yaml:"keys"`
}

type spriteListFile struct {
	Atlases []atlasEntry `yaml:"atlases"`
}

// SpriteTable answers sprite-by-key lookups per atlas id.
type SpriteTable struct {
	atlases map[int]map[string]Sprite
}

// LoadSpriteTable loads atlas key listings from a YAML file.
func LoadSpriteTable(path string) (*SpriteTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sprite list %s: %w", path, err)
	}
	return ParseSpriteTable(raw)
}

func ParseSpriteTable(raw []byte) (*SpriteTable, error) {
	var f spriteListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse sprite list: %w", err)
	}
	t := &SpriteTable{atlases: make(map[int]map[string]Sprite, len(f.Atlases))}
	for _, a := range f.Atlases {
		keys := t.atlases[a.ID]
		if keys == nil {
			keys = make(map[string]Sprite, len(a.Keys))
			t.atlases[a.ID] = keys
		}
		for i, k := range a.Keys {
			keys[k] = Sprite{Atlas: a.ID, Key: k, Index: i}
		}
	}
	return t, nil
}

// Sprite looks up key in the given atlas.
func (t *SpriteTable) Sprite(atlas int, key string) (Sprite, error) {
	keys, ok := t.atlases[atlas]
	if !ok {
		return Sprite{}, fmt.Errorf("atlas %d: %w", atlas, ErrSpriteNotFound)
	}
	s, ok := keys[key]
	if !ok {
		return Sprite{}, fmt.Errorf("atlas %d key %q: %w", atlas, key, ErrSpriteNotFound)
	}
	return s, nil
}

// Count returns the total number of sprite keys across atlases.
func (t *SpriteTable) Count() int {
	n := 0
	for _, keys := range t.atlases {
		n += len(keys)
	}
	return n
}
