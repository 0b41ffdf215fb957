// Package importer converts worlds between the supported description
// formats. Its main use is migrating legacy text directive files to the
// YAML schema.
package importer

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mudstone/adventure/internal/game/world"
)

// yamlWorldFile mirrors the YAML world schema for serialisation.
type yamlWorldFile struct {
	World yamlWorld `yaml:"world"`
}

type yamlWorld struct {
	Rooms []yamlRoom `yaml:"rooms"`
}

type yamlRoom struct {
	ID          int        `yaml:"id"`
	Description string     `yaml:"description"`
	Exits       []yamlExit `yaml:"exits,omitempty"`
}

type yamlExit struct {
	Direction string `yaml:"direction"`
	Target    int    `yaml:"target"`
}

// ToYAML serialises a loaded world into the YAML world schema. Rooms keep
// their insertion order; exits are listed in the fixed direction order.
//
// Precondition: w must be a fully loaded world.
// Postcondition: Returns YAML bytes that world.ParseYAML accepts, or a
// non-nil error.
func ToYAML(w *world.World) ([]byte, error) {
	file := yamlWorldFile{}
	for _, room := range w.Rooms() {
		yr := yamlRoom{
			ID:          room.ID,
			Description: room.Description,
		}
		for _, dir := range room.ExitDirections() {
			yr.Exits = append(yr.Exits, yamlExit{
				Direction: string(dir),
				Target:    room.Exits[dir],
			})
		}
		file.World.Rooms = append(file.World.Rooms, yr)
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("marshalling world: %w", err)
	}
	return data, nil
}
