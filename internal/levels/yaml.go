package levels

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLPack is the on-disk format for a level pack:
//
//	name: weekend puzzles
//	levels:
//	  - id: 5
//	    name: The Courtyard
//	    rows:
//	      - [8, 8, 8, 8]
//	      - [8, 1, 0, 8]
//	      - [8, 2, 4, 8]
//	      - [8, 8, 8, 8]
type YAMLPack struct {
	Name   string      `yaml:"name"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel is a single level entry in a pack file.
type YAMLLevel struct {
	ID   int     `yaml:"id"`
	Name string  `yaml:"name"`
	Rows [][]int `yaml:"rows"`
}

// ParsePack parses pack data into a fresh registry. Malformed packs are
// configuration errors reported to the caller; an empty pack is one too.
func ParsePack(data []byte) (*Registry, error) {
	var pack YAMLPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}

	if len(pack.Levels) == 0 {
		return nil, fmt.Errorf("levels: pack %q contains no levels", pack.Name)
	}

	reg := NewRegistry()
	for _, lvl := range pack.Levels {
		if lvl.ID < 1 {
			return nil, fmt.Errorf("levels: pack %q: invalid level id %d", pack.Name, lvl.ID)
		}
		if _, dup := reg.Get(lvl.ID); dup {
			return nil, fmt.Errorf("levels: pack %q: duplicate level id %d", pack.Name, lvl.ID)
		}
		if len(lvl.Rows) == 0 {
			return nil, fmt.Errorf("levels: pack %q: level %d has no rows", pack.Name, lvl.ID)
		}
		reg.Add(Level{ID: lvl.ID, Name: lvl.Name, Layout: lvl.Rows})
	}
	return reg, nil
}

// LoadPack reads and parses a pack file from disk.
func LoadPack(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: reading pack %s: %w", path, err)
	}
	return ParsePack(data)
}
