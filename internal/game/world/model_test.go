package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorld()
	require.NoError(t, w.AddRoom(NewRoom(0, "A dusty library.")))
	require.NoError(t, w.AddRoom(NewRoom(1, "A cold cavern.")))
	require.NoError(t, w.AddRoom(NewRoom(7, "A narrow ledge.")))
	a, _ := w.FindByID(0)
	b, _ := w.FindByID(1)
	a.Exits[North] = 1
	b.Exits[South] = 0
	b.Exits[East] = 7
	return w
}

func TestParseDirection(t *testing.T) {
	for word, want := range map[string]Direction{
		"north": North, "n": North,
		"south": South, "s": South,
		"east": East, "e": East,
		"west": West, "w": West,
	} {
		got, ok := ParseDirection(word)
		assert.True(t, ok, word)
		assert.Equal(t, want, got)
	}

	_, ok := ParseDirection("up")
	assert.False(t, ok)
	_, ok = ParseDirectionCode("north")
	assert.False(t, ok, "codes are single letters only")
}

func TestDirectionOpposite(t *testing.T) {
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, North, South.Opposite())
	assert.Equal(t, West, East.Opposite())
	assert.Equal(t, East, West.Opposite())
}

func TestWorldAddRoom_DuplicateID(t *testing.T) {
	w := NewWorld()
	require.NoError(t, w.AddRoom(NewRoom(3, "first")))
	err := w.AddRoom(NewRoom(3, "second"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate room id 3")
	assert.Equal(t, 1, w.RoomCount())
}

func TestWorldFindByID(t *testing.T) {
	w := buildTestWorld(t)

	r, ok := w.FindByID(7)
	require.True(t, ok)
	assert.Equal(t, "A narrow ledge.", r.Description)

	_, ok = w.FindByID(99)
	assert.False(t, ok)
}

func TestWorldRooms_InsertionOrder(t *testing.T) {
	w := buildTestWorld(t)
	ids := make([]int, 0, w.RoomCount())
	for _, r := range w.Rooms() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int{0, 1, 7}, ids)
}

func TestWorldStartRoom(t *testing.T) {
	w := buildTestWorld(t)
	start, ok := w.StartRoom()
	require.True(t, ok)
	assert.Equal(t, 0, start.ID)

	empty := NewWorld()
	require.NoError(t, empty.AddRoom(NewRoom(5, "not the start")))
	_, ok = empty.StartRoom()
	assert.False(t, ok)
}

func TestWorldNavigate(t *testing.T) {
	w := buildTestWorld(t)

	dest, err := w.Navigate(0, North)
	require.NoError(t, err)
	assert.Equal(t, 1, dest.ID)

	_, err = w.Navigate(0, West)
	assert.Error(t, err)

	_, err = w.Navigate(42, North)
	assert.Error(t, err)
}

func TestExitDirections_FixedOrder(t *testing.T) {
	r := NewRoom(0, "crossroads")
	r.Exits[West] = 1
	r.Exits[North] = 2
	r.Exits[East] = 3
	assert.Equal(t, []Direction{North, East, West}, r.ExitDirections())
}

func TestRoomSelfLink(t *testing.T) {
	w := NewWorld()
	r := NewRoom(0, "a hall of mirrors")
	r.Exits[North] = 0
	require.NoError(t, w.AddRoom(r))
	require.NoError(t, w.Validate())

	dest, err := w.Navigate(0, North)
	require.NoError(t, err)
	assert.Same(t, r, dest)
}

func TestWorldValidate_DanglingExit(t *testing.T) {
	w := NewWorld()
	r := NewRoom(0, "dead end")
	r.Exits[East] = 9
	require.NoError(t, w.AddRoom(r))
	err := w.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown room 9")
}
