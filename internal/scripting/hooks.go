package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// enterHookName is the Lua global a world script defines to narrate room
// arrivals: on_enter(room_id) -> string or nil.
const enterHookName = "on_enter"

// Hooks owns one sandboxed Lua VM loaded from a world script file and
// exposes the hook functions the script defined. Hook calls are best
// effort: a missing function, a runtime error, or a non-string return all
// yield nothing, and the game continues.
//
// Hooks is single-threaded, matching the session loop that drives it.
type Hooks struct {
	state  *lua.LState
	cancel func()
	logger *zap.Logger
}

// LoadHooks executes the script file in a fresh sandboxed VM.
//
// Precondition: path must name a readable Lua file; logger must be non-nil.
// Postcondition: Returns loaded Hooks, or a non-nil error if the script
// fails to load or run. The caller must Close the returned Hooks.
func LoadHooks(path string, instLimit int, logger *zap.Logger) (*Hooks, error) {
	L, cancel := NewSandboxedState(instLimit)
	if err := L.DoFile(path); err != nil {
		cancel()
		L.Close()
		return nil, fmt.Errorf("scripting: loading %q: %w", path, err)
	}
	return &Hooks{
		state:  L,
		cancel: cancel,
		logger: logger,
	}, nil
}

// OnEnter calls the script's on_enter hook for the given room.
//
// Postcondition: Returns (line, true) when the hook returned a string, or
// ("", false) when the hook is absent, errored, or returned anything else.
func (h *Hooks) OnEnter(roomID int) (string, bool) {
	fn := h.state.GetGlobal(enterHookName)
	if fn == lua.LNil {
		return "", false
	}

	if err := h.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(roomID)); err != nil {
		h.logger.Warn("scripting: on_enter runtime error",
			zap.Int("room", roomID),
			zap.Error(err),
		)
		return "", false
	}

	ret := h.state.Get(-1)
	h.state.Pop(1)

	if line, ok := ret.(lua.LString); ok {
		return string(line), true
	}
	return "", false
}

// Close releases the Lua VM.
func (h *Hooks) Close() {
	h.cancel()
	h.state.Close()
}
