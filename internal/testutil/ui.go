// Package testutil provides test doubles shared across packages.
package testutil

import (
	"io"

	"github.com/mudstone/adventure/internal/game/session"
)

// ScriptedUI is a session.UI that feeds a fixed sequence of commands and
// records everything rendered. ReadCommand returns io.EOF once the script
// is exhausted, which the session loop treats as a quit request.
type ScriptedUI struct {
	// Commands is the input script, consumed front to back.
	Commands []string
	// Renders records each Render call's status.
	Renders []session.Status
	// Logs records each Render call's scrollback snapshot.
	Logs [][]string

	next int
}

// NewScriptedUI creates a ScriptedUI that will play the given commands.
func NewScriptedUI(commands ...string) *ScriptedUI {
	return &ScriptedUI{Commands: commands}
}

// Render records the status and scrollback it was handed.
func (u *ScriptedUI) Render(status session.Status, log []string) {
	u.Renders = append(u.Renders, status)
	snapshot := make([]string, len(log))
	copy(snapshot, log)
	u.Logs = append(u.Logs, snapshot)
}

// ReadCommand returns the next scripted command, or io.EOF when the script
// has run out.
func (u *ScriptedUI) ReadCommand() (string, error) {
	if u.next >= len(u.Commands) {
		return "", io.EOF
	}
	cmd := u.Commands[u.next]
	u.next++
	return cmd, nil
}

// LastLog returns the scrollback snapshot from the most recent render, or
// nil if nothing was rendered.
func (u *ScriptedUI) LastLog() []string {
	if len(u.Logs) == 0 {
		return nil
	}
	return u.Logs[len(u.Logs)-1]
}
