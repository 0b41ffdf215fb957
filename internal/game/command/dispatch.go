package command

import (
	"strings"

	"go.uber.org/zap"

	"github.com/mudstone/adventure/internal/game/session"
	"github.com/mudstone/adventure/internal/game/world"
)

// Player-facing messages for recoverable input problems. These surface in
// the scrollback, never as errors.
const (
	msgUnknownCommand   = "I don't understand that command."
	msgGoWhere          = "Go where?"
	msgInvalidDirection = "That's not a valid direction."
	msgBlockedMovement  = "You can't go that way."
	msgNoExits          = "There are no obvious exits."
)

// Dispatcher resolves player input lines against the command registry and
// runs the matched handler. Dispatch never fails: every problem with the
// input degrades to a scrollback message and the session continues.
type Dispatcher struct {
	registry *Registry
	logger   *zap.Logger
}

// NewDispatcher creates a Dispatcher over the given registry.
//
// Precondition: registry and logger must be non-nil.
func NewDispatcher(registry *Registry, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   logger,
	}
}

// Dispatch handles one line of player input. Empty input is a silent no-op.
// A direction word typed as the verb ("north", "n") is folded to
// "go <direction>" before lookup, so bare directions move the player.
func (d *Dispatcher) Dispatch(s *session.Session, line string) {
	parsed := Parse(line)
	if parsed.Empty() {
		return
	}

	verb, arg := parsed.Verb, parsed.Arg
	if _, ok := world.ParseDirection(verb); ok {
		verb, arg = "go", parsed.Verb
	}

	cmd, ok := d.registry.Resolve(verb)
	if !ok {
		d.logger.Debug("unknown command", zap.String("verb", verb))
		s.Append(msgUnknownCommand)
		return
	}

	d.logger.Debug("dispatching",
		zap.String("command", cmd.Name),
		zap.String("arg", arg),
	)

	switch cmd.Handler {
	case HandlerQuit:
		s.RequestQuit()
	case HandlerLook:
		d.look(s)
	case HandlerGo:
		d.move(s, arg)
	case HandlerHelp:
		d.help(s)
	}
}

// look appends the current room's description and its exits to the
// scrollback. Exits are listed in the fixed order north, south, east, west.
func (d *Dispatcher) look(s *session.Session) {
	room := s.CurrentRoom()
	s.Append(room.Description)

	dirs := room.ExitDirections()
	if len(dirs) == 0 {
		s.Append(msgNoExits)
		return
	}
	names := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		names = append(names, string(dir))
	}
	s.Appendf("Exits: %s", strings.Join(names, ", "))
}

// move resolves the direction argument and walks the player through the
// matching exit, auto-looking on arrival.
func (d *Dispatcher) move(s *session.Session, arg string) {
	if arg == "" {
		s.Append(msgGoWhere)
		return
	}
	dir, ok := world.ParseDirection(arg)
	if !ok {
		s.Append(msgInvalidDirection)
		return
	}

	target, err := s.World().Navigate(s.CurrentRoom().ID, dir)
	if err != nil {
		s.Append(msgBlockedMovement)
		return
	}

	s.MoveTo(target)
	d.look(s)
	s.AnnounceEntry()
}

// help appends the command summary to the scrollback.
func (d *Dispatcher) help(s *session.Session) {
	s.Append("Commands:")
	for _, cmd := range d.registry.Commands() {
		name := cmd.Name
		if len(cmd.Aliases) > 0 {
			name += " (" + strings.Join(cmd.Aliases, ", ") + ")"
		}
		s.Appendf("  %-14s %s", name, cmd.Help)
	}
	s.Append("  north, south, east, west (or n, s, e, w) move directly.")
}
