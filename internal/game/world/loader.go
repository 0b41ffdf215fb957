package world

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlWorldFile is the top-level YAML structure for world files.
type yamlWorldFile struct {
	World yamlWorld `yaml:"world"`
}

// yamlWorld is the YAML representation of a world.
type yamlWorld struct {
	Rooms []yamlRoom `yaml:"rooms"`
}

// yamlRoom is the YAML representation of a room.
type yamlRoom struct {
	ID          int        `yaml:"id"`
	Description string     `yaml:"description"`
	Exits       []yamlExit `yaml:"exits"`
}

// yamlExit is the YAML representation of an exit.
type yamlExit struct {
	Direction string `yaml:"direction"`
	Target    int    `yaml:"target"`
}

// ParseYAML builds a World from YAML bytes. The YAML schema carries the
// same information as the text directive format and is held to the same
// invariants: unique room ids, known directions, resolvable exit targets.
//
// Postcondition: Returns a validated World or a non-nil error.
func ParseYAML(data []byte) (*World, error) {
	var file yamlWorldFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing world YAML: %w", err)
	}

	w := NewWorld()
	for _, yr := range file.World.Rooms {
		room := NewRoom(yr.ID, strings.TrimSpace(yr.Description))
		for _, ye := range yr.Exits {
			dir, ok := ParseDirection(ye.Direction)
			if !ok {
				return nil, fmt.Errorf("room %d: invalid exit direction %q", yr.ID, ye.Direction)
			}
			room.Exits[dir] = ye.Target
		}
		if err := w.AddRoom(room); err != nil {
			return nil, err
		}
	}

	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("validating world: %w", err)
	}
	return w, nil
}

// LoadFromFile reads a world description file and builds a World.
// Files ending in .yaml or .yml use the YAML schema; everything else uses
// the line-oriented text directive format.
//
// Postcondition: Returns a fully wired World, or a non-nil error and no
// partial world.
func LoadFromFile(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world file %s: %w", path, err)
	}

	var w *World
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		w, err = ParseYAML(data)
	default:
		w, err = ParseText(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("loading world from %s: %w", path, err)
	}
	return w, nil
}
