// Package world provides the game world model: rooms, exits, directions,
// and the loaders that build a world from a description file.
package world

import "fmt"

// Direction represents one of the four cardinal directions.
type Direction string

// The four cardinal directions.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// CardinalDirections contains all four directions in the fixed enumeration
// order used when listing exits.
var CardinalDirections = []Direction{North, South, East, West}

// directionCodes maps the single-letter codes used by the text world format.
var directionCodes = map[string]Direction{
	"n": North,
	"s": South,
	"e": East,
	"w": West,
}

// directionWords maps every accepted spelling, long or short, to a Direction.
var directionWords = map[string]Direction{
	"north": North, "n": North,
	"south": South, "s": South,
	"east": East, "e": East,
	"west": West, "w": West,
}

// ParseDirectionCode resolves a single-letter direction code (n, s, e, w).
//
// Postcondition: Returns (direction, true) for a valid code, or ("", false).
func ParseDirectionCode(code string) (Direction, bool) {
	d, ok := directionCodes[code]
	return d, ok
}

// ParseDirection resolves a direction word in either long ("north") or
// short ("n") form.
//
// Postcondition: Returns (direction, true) for a valid word, or ("", false).
func ParseDirection(word string) (Direction, bool) {
	d, ok := directionWords[word]
	return d, ok
}

// Opposite returns the opposite cardinal direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return ""
	}
}

// Room represents a location in the game world.
//
// Rooms are created during load and are read-only afterwards. Exits hold
// target room ids, not pointers: the World owns every room and the ids act
// as non-owning handles, which keeps cyclic maps (two rooms pointing at each
// other, or a room linked to itself) trivially safe.
type Room struct {
	// ID uniquely identifies this room within the world.
	ID int
	// Description is the narrative text shown when the player looks.
	Description string
	// Exits maps each cardinal direction to the id of the room it leads to.
	// A missing key means there is no exit that way.
	Exits map[Direction]int
}

// NewRoom creates a Room with no exits.
func NewRoom(id int, description string) *Room {
	return &Room{
		ID:          id,
		Description: description,
		Exits:       make(map[Direction]int, len(CardinalDirections)),
	}
}

// ExitTo returns the target room id for the given direction, if an exit
// exists.
//
// Postcondition: Returns (id, true) if an exit exists, or (0, false).
func (r *Room) ExitTo(dir Direction) (int, bool) {
	id, ok := r.Exits[dir]
	return id, ok
}

// ExitDirections returns the directions with exits, in the fixed
// enumeration order north, south, east, west.
func (r *Room) ExitDirections() []Direction {
	var dirs []Direction
	for _, d := range CardinalDirections {
		if _, ok := r.Exits[d]; ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// StartRoomID is the id of the room the player occupies at the beginning of
// every session. A world without this room cannot be played.
const StartRoomID = 0

// World owns every room of a loaded world and indexes them by id.
//
// A World is write-once: the loaders populate it, after which it is
// read-only. It is safe for concurrent reads once loading has finished.
type World struct {
	rooms []*Room
	byID  map[int]*Room
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{byID: make(map[int]*Room)}
}

// AddRoom inserts a room into the world.
//
// Precondition: room must be non-nil.
// Postcondition: The room is indexed by id, or an error is returned if the
// id is already taken.
func (w *World) AddRoom(room *Room) error {
	if _, exists := w.byID[room.ID]; exists {
		return fmt.Errorf("duplicate room id %d", room.ID)
	}
	w.rooms = append(w.rooms, room)
	w.byID[room.ID] = room
	return nil
}

// FindByID returns the room with the given id.
//
// Postcondition: Returns (room, true) if found, or (nil, false).
func (w *World) FindByID(id int) (*Room, bool) {
	r, ok := w.byID[id]
	return r, ok
}

// Rooms returns all rooms in insertion order.
func (w *World) Rooms() []*Room {
	return w.rooms
}

// RoomCount returns the number of rooms in the world.
func (w *World) RoomCount() int {
	return len(w.rooms)
}

// StartRoom returns the room with id StartRoomID.
//
// Postcondition: Returns (room, true) if the start room exists, or
// (nil, false) for a world that cannot be played.
func (w *World) StartRoom() (*Room, bool) {
	return w.FindByID(StartRoomID)
}

// Navigate resolves movement from a room in a direction.
//
// Postcondition: Returns the destination room, or an error if the source
// room is unknown, it has no exit that way, or the exit target is missing.
func (w *World) Navigate(fromID int, dir Direction) (*Room, error) {
	from, ok := w.byID[fromID]
	if !ok {
		return nil, fmt.Errorf("room %d not found", fromID)
	}
	targetID, ok := from.ExitTo(dir)
	if !ok {
		return nil, fmt.Errorf("no exit %s from room %d", dir, fromID)
	}
	target, ok := w.byID[targetID]
	if !ok {
		return nil, fmt.Errorf("exit %s from room %d targets unknown room %d", dir, fromID, targetID)
	}
	return target, nil
}

// Validate checks that every exit of every room resolves to a known room.
//
// Postcondition: Returns nil if all exits resolve, or an error naming the
// first dangling target.
func (w *World) Validate() error {
	for _, room := range w.rooms {
		for _, dir := range room.ExitDirections() {
			target := room.Exits[dir]
			if _, ok := w.byID[target]; !ok {
				return fmt.Errorf("room %d: exit %s targets unknown room %d", room.ID, dir, target)
			}
		}
	}
	return nil
}
