package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mudstone/adventure/internal/game/command"
	"github.com/mudstone/adventure/internal/game/session"
	"github.com/mudstone/adventure/internal/game/world"
)

// newGame builds a two-room world (a cavern north of the library, linked
// both ways) and a fresh session placed in room 0.
func newGame(t *testing.T) (*session.Session, *command.Dispatcher) {
	t.Helper()
	w := world.NewWorld()
	require.NoError(t, w.AddRoom(world.NewRoom(0, "A dusty library.")))
	require.NoError(t, w.AddRoom(world.NewRoom(1, "A cold cavern.")))
	library, _ := w.FindByID(0)
	cavern, _ := w.FindByID(1)
	library.Exits[world.North] = 1
	cavern.Exits[world.South] = 0

	s, err := session.New(w, 10, zap.NewNop())
	require.NoError(t, err)
	return s, command.NewDispatcher(command.DefaultRegistry(), zap.NewNop())
}

func TestDispatch_EmptyInputIsSilent(t *testing.T) {
	s, d := newGame(t)
	d.Dispatch(s, "")
	d.Dispatch(s, "   ")
	assert.Empty(t, s.Lines())
	assert.Equal(t, 0, s.CurrentRoom().ID)
}

func TestDispatch_UnknownCommandIsInert(t *testing.T) {
	s, d := newGame(t)
	d.Dispatch(s, "fly")

	assert.Equal(t, []string{"I don't understand that command."}, s.Lines())
	assert.Equal(t, 0, s.CurrentRoom().ID)
	assert.False(t, s.Terminated())
}

func TestDispatch_Look(t *testing.T) {
	s, d := newGame(t)
	d.Dispatch(s, "look")

	assert.Equal(t, []string{
		"A dusty library.",
		"Exits: north",
	}, s.Lines())
}

func TestDispatch_LookAlias(t *testing.T) {
	s, d := newGame(t)
	d.Dispatch(s, "l")
	assert.Equal(t, []string{"A dusty library.", "Exits: north"}, s.Lines())
}

func TestDispatch_LookNoExits(t *testing.T) {
	w := world.NewWorld()
	require.NoError(t, w.AddRoom(world.NewRoom(0, "A sealed vault.")))
	s, err := session.New(w, 10, zap.NewNop())
	require.NoError(t, err)
	d := command.NewDispatcher(command.DefaultRegistry(), zap.NewNop())

	d.Dispatch(s, "look")
	assert.Equal(t, []string{
		"A sealed vault.",
		"There are no obvious exits.",
	}, s.Lines())
}

// TestDispatch_SynonymEquivalence checks that every spelling of a northward
// move produces the identical resulting state and auto-look output.
func TestDispatch_SynonymEquivalence(t *testing.T) {
	wantLog := []string{"A cold cavern.", "Exits: south"}

	for _, input := range []string{"go north", "go n", "north", "n"} {
		t.Run(input, func(t *testing.T) {
			s, d := newGame(t)
			d.Dispatch(s, input)

			assert.Equal(t, 1, s.CurrentRoom().ID)
			assert.Equal(t, wantLog, s.Lines())
		})
	}
}

func TestDispatch_GoWithoutArgument(t *testing.T) {
	s, d := newGame(t)
	d.Dispatch(s, "go")

	assert.Equal(t, []string{"Go where?"}, s.Lines())
	assert.Equal(t, 0, s.CurrentRoom().ID)
}

func TestDispatch_GoInvalidDirection(t *testing.T) {
	s, d := newGame(t)
	d.Dispatch(s, "go sideways")

	assert.Equal(t, []string{"That's not a valid direction."}, s.Lines())
	assert.Equal(t, 0, s.CurrentRoom().ID)
}

func TestDispatch_BlockedMovementIsNonFatal(t *testing.T) {
	s, d := newGame(t)
	d.Dispatch(s, "go south")

	assert.Equal(t, []string{"You can't go that way."}, s.Lines())
	assert.Equal(t, 0, s.CurrentRoom().ID)
	assert.False(t, s.Terminated())
}

func TestDispatch_MoveFiresEnterHook(t *testing.T) {
	s, d := newGame(t)
	s.SetEnterHook(func(roomID int) (string, bool) {
		if roomID == 1 {
			return "Your breath fogs in the cold air.", true
		}
		return "", false
	})

	d.Dispatch(s, "north")
	assert.Equal(t, []string{
		"A cold cavern.",
		"Exits: south",
		"Your breath fogs in the cold air.",
	}, s.Lines(), "hook line follows the auto-look")
}

func TestDispatch_QuitSetsTerminate(t *testing.T) {
	for _, input := range []string{"quit", "exit", "QUIT"} {
		t.Run(input, func(t *testing.T) {
			s, d := newGame(t)
			d.Dispatch(s, input)
			assert.True(t, s.Terminated())
		})
	}
}

func TestDispatch_Help(t *testing.T) {
	s, d := newGame(t)
	d.Dispatch(s, "help")

	lines := s.Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "Commands:", lines[0])
	joined := ""
	for _, l := range lines {
		joined += l + "\n"
	}
	assert.Contains(t, joined, "go")
	assert.Contains(t, joined, "look (l)")
	assert.Contains(t, joined, "quit (exit)")
	assert.False(t, s.Terminated())
}

func TestDispatch_RoundTripThereAndBack(t *testing.T) {
	s, d := newGame(t)
	d.Dispatch(s, "n")
	d.Dispatch(s, "s")

	assert.Equal(t, 0, s.CurrentRoom().ID)
	assert.Equal(t, session.Status{RoomID: 0, Visited: 2}, s.Status())
}
