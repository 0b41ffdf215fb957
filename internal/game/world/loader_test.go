package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalWorldYAML = `
world:
  rooms:
    - id: 0
      description: "A dusty library. A door leads north."
      exits:
        - direction: north
          target: 1
    - id: 1
      description: "A cold cavern."
      exits:
        - direction: south
          target: 0
`

func TestParseYAML_Valid(t *testing.T) {
	w, err := ParseYAML([]byte(minimalWorldYAML))
	require.NoError(t, err)

	assert.Equal(t, 2, w.RoomCount())
	dest, err := w.Navigate(0, North)
	require.NoError(t, err)
	assert.Equal(t, 1, dest.ID)
}

func TestParseYAML_InvalidYAML(t *testing.T) {
	_, err := ParseYAML([]byte("world: [not a mapping"))
	assert.Error(t, err)
}

func TestParseYAML_BadDirection(t *testing.T) {
	yaml := `
world:
  rooms:
    - id: 0
      description: "a room"
      exits:
        - direction: up
          target: 0
`
	_, err := ParseYAML([]byte(yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exit direction")
}

func TestParseYAML_DanglingTarget(t *testing.T) {
	yaml := `
world:
  rooms:
    - id: 0
      description: "a room"
      exits:
        - direction: north
          target: 9
`
	_, err := ParseYAML([]byte(yaml))
	assert.Error(t, err)
}

func TestLoadFromFile_FormatsAgree(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "world.world")
	yamlPath := filepath.Join(dir, "world.yaml")
	require.NoError(t, os.WriteFile(textPath, []byte(minimalWorld), 0o644))
	require.NoError(t, os.WriteFile(yamlPath, []byte(minimalWorldYAML), 0o644))

	fromText, err := LoadFromFile(textPath)
	require.NoError(t, err)
	fromYAML, err := LoadFromFile(yamlPath)
	require.NoError(t, err)

	require.Equal(t, fromText.RoomCount(), fromYAML.RoomCount())
	for _, tr := range fromText.Rooms() {
		yr, ok := fromYAML.FindByID(tr.ID)
		require.True(t, ok)
		assert.Equal(t, tr.Description, yr.Description)
		assert.Equal(t, tr.Exits, yr.Exits)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.world"))
	assert.Error(t, err)
}
