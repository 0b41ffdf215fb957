// Package session provides the runtime state of one game run: the player's
// location, the scrollback log, and the loop that drives the UI and the
// command dispatcher.
package session

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"github.com/mudstone/adventure/internal/game/world"
)

// Status is the snapshot handed to the UI on every render.
type Status struct {
	// RoomID is the id of the room the player currently occupies.
	RoomID int
	// Visited is the number of distinct rooms entered so far.
	Visited int
}

// UI is the presentation collaborator. Any implementation satisfying this
// contract is interchangeable: a terminal console, a test harness feeding
// scripted input, or anything else that can show lines and read one back.
type UI interface {
	// Render displays the current status and the scrollback, oldest first.
	Render(status Status, log []string)
	// ReadCommand blocks until the player supplies the next input line.
	// A non-nil error means no further input will arrive.
	ReadCommand() (string, error)
}

// Dispatcher resolves one line of player input against a session.
type Dispatcher interface {
	Dispatch(s *Session, line string)
}

// EnterHook is an optional callback fired after the player arrives in a
// room. The returned line is appended to the scrollback when ok is true.
type EnterHook func(roomID int) (line string, ok bool)

// Session tracks one game run. It is the sole mutator of the player's
// location, the scrollback log, and the termination flag; handlers reach
// those through the exported methods only. Single-threaded by contract.
type Session struct {
	id        string
	world     *world.World
	location  *world.Room
	log       *Log
	visited   mapset.Set[int]
	terminate bool
	enterHook EnterHook
	logger    *zap.Logger
}

// New creates a Session for the given world with the player placed in the
// start room.
//
// Precondition: w must be fully loaded; logger must be non-nil.
// Postcondition: Returns a ready Session, or an error if the world has no
// room with id world.StartRoomID.
func New(w *world.World, logCapacity int, logger *zap.Logger) (*Session, error) {
	start, ok := w.StartRoom()
	if !ok {
		return nil, fmt.Errorf("world has no start room (id %d)", world.StartRoomID)
	}

	id := uuid.NewString()
	s := &Session{
		id:       id,
		world:    w,
		location: start,
		log:      NewLog(logCapacity),
		visited:  mapset.New[int](),
		logger:   logger.With(zap.String("session_id", id)),
	}
	s.visited.Put(start.ID)
	return s, nil
}

// ID returns the unique identifier of this run.
func (s *Session) ID() string {
	return s.id
}

// World returns the world this session plays in.
func (s *Session) World() *world.World {
	return s.world
}

// CurrentRoom returns the room the player occupies.
func (s *Session) CurrentRoom() *world.Room {
	return s.location
}

// Status returns the snapshot handed to the UI.
func (s *Session) Status() Status {
	return Status{
		RoomID:  s.location.ID,
		Visited: s.visited.Size(),
	}
}

// Append adds a narrative line to the scrollback.
func (s *Session) Append(line string) {
	s.log.Append(line)
}

// Appendf adds a formatted narrative line to the scrollback.
func (s *Session) Appendf(format string, args ...any) {
	s.log.Append(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the scrollback, oldest first.
func (s *Session) Lines() []string {
	return s.log.Lines()
}

// MoveTo places the player in the given room and records the visit.
//
// Precondition: room must belong to this session's world.
func (s *Session) MoveTo(room *world.Room) {
	s.logger.Debug("player moved",
		zap.Int("from", s.location.ID),
		zap.Int("to", room.ID),
	)
	s.location = room
	s.visited.Put(room.ID)
}

// SetEnterHook installs the arrival callback. A nil hook disables it.
func (s *Session) SetEnterHook(hook EnterHook) {
	s.enterHook = hook
}

// AnnounceEntry fires the arrival hook for the current room, appending its
// line to the scrollback. No-op when no hook is installed or the hook has
// nothing to say.
func (s *Session) AnnounceEntry() {
	if s.enterHook == nil {
		return
	}
	if line, ok := s.enterHook(s.location.ID); ok {
		s.log.Append(line)
	}
}

// RequestQuit marks the session for termination. The run loop honors the
// flag at the top of its next iteration.
func (s *Session) RequestQuit() {
	s.terminate = true
}

// Terminated reports whether the session has been asked to stop.
func (s *Session) Terminated() bool {
	return s.terminate
}

// Run drives the session to completion: render, block for one command,
// dispatch, repeat, until the quit flag is set. An input error from the UI
// (end of scripted input, closed terminal) terminates the loop the same way
// quit does.
//
// Precondition: ui and d must be non-nil.
// Postcondition: The session is terminated; resources acquired by the UI
// remain the UI's to release.
func (s *Session) Run(ui UI, d Dispatcher) {
	s.logger.Info("session started",
		zap.Int("start_room", s.location.ID),
		zap.Int("rooms", s.world.RoomCount()),
	)

	for !s.terminate {
		ui.Render(s.Status(), s.log.Lines())
		line, err := ui.ReadCommand()
		if err != nil {
			s.logger.Info("input closed, terminating", zap.Error(err))
			s.terminate = true
			break
		}
		d.Dispatch(s, line)
	}

	s.logger.Info("session terminated",
		zap.Int("final_room", s.location.ID),
		zap.Int("rooms_visited", s.visited.Size()),
	)
}
