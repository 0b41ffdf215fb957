// Package console implements the session.UI contract for an interactive
// terminal: scrollback and status on stdout, one command line read from
// stdin per turn.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/mudstone/adventure/internal/config"
	"github.com/mudstone/adventure/internal/game/session"
)

// Console renders the session state as colored terminal text and reads
// player commands line by line.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	prompt  string
	colored bool

	colorStatus color.Style
	colorPrompt color.Style
}

// New creates a Console reading from in and writing to out.
//
// Precondition: in and out must be non-nil.
func New(in io.Reader, out io.Writer, cfg config.UIConfig) *Console {
	return &Console{
		in:          bufio.NewReader(in),
		out:         out,
		prompt:      cfg.Prompt,
		colored:     cfg.Color,
		colorStatus: color.Style{color.FgCyan, color.OpBold},
		colorPrompt: color.Style{color.FgGreen, color.OpBold},
	}
}

// sprint renders s through the style, or verbatim when color is disabled.
func (c *Console) sprint(style color.Style, s string) string {
	if !c.colored {
		return s
	}
	return style.Sprint(s)
}

// Render writes the status line and the scrollback, oldest first.
func (c *Console) Render(status session.Status, log []string) {
	fmt.Fprintln(c.out)
	statusLine := fmt.Sprintf("[room %d | %d visited]", status.RoomID, status.Visited)
	fmt.Fprintln(c.out, c.sprint(c.colorStatus, statusLine))
	fmt.Fprintln(c.out, strings.Repeat("-", 40))
	for _, line := range log {
		fmt.Fprintln(c.out, line)
	}
}

// ReadCommand prints the prompt and blocks until the player enters a line.
// Returns the line without its trailing newline; the error is non-nil only
// when input is closed for good (EOF, broken terminal).
func (c *Console) ReadCommand() (string, error) {
	fmt.Fprint(c.out, c.sprint(c.colorPrompt, c.prompt))
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			// A final unterminated line still counts as a command.
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
