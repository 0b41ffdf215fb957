package world

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Directive keywords of the text world format.
const (
	keywordRoom = "room"
	keywordLink = "link"
)

// ParseText builds a World from the line-oriented text description format:
//
//	room <id> "<description>"
//	link <from_id> <n|s|e|w> <to_id>
//
// Construction is two-pass: the first pass creates every room, the second
// wires every link. Link directives may therefore reference rooms defined
// later in the file. Lines whose first token is neither keyword are
// ignored, which doubles as comment and blank-line support; a line that
// starts with a keyword but fails field parsing aborts the whole load.
//
// Links are directional. "link 0 n 1" does not create the reverse edge;
// a world that wants two-way passage must say "link 1 s 0" as well.
//
// Postcondition: Returns a fully wired World, or a non-nil error and no
// partial world.
func ParseText(r io.Reader) (*World, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("reading world description: %w", err)
	}

	w := NewWorld()

	// Pass 1: create rooms.
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != keywordRoom {
			continue
		}
		room, err := parseRoomDirective(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if err := w.AddRoom(room); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	// Pass 2: wire links.
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != keywordLink {
			continue
		}
		if err := applyLinkDirective(w, fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	return w, nil
}

// readLines slurps the reader into a line slice so both passes can scan the
// same input without seeking.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// parseRoomDirective parses a line already known to start with "room".
//
// Postcondition: Returns a new Room, or an error if the id or quoted
// description is malformed.
func parseRoomDirective(line string) (*Room, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), keywordRoom))

	spaceIdx := strings.IndexByte(rest, ' ')
	if spaceIdx < 0 {
		return nil, fmt.Errorf("room directive: missing description")
	}

	id, err := strconv.Atoi(rest[:spaceIdx])
	if err != nil {
		return nil, fmt.Errorf("room directive: invalid id %q", rest[:spaceIdx])
	}

	desc, err := parseQuoted(strings.TrimSpace(rest[spaceIdx+1:]))
	if err != nil {
		return nil, fmt.Errorf("room directive: %w", err)
	}

	return NewRoom(id, desc), nil
}

// parseQuoted extracts the contents of a double-quoted string that must
// span the entire remainder of the directive.
func parseQuoted(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", fmt.Errorf("description must be double-quoted, got %q", s)
	}
	body := s[1 : len(s)-1]
	if strings.ContainsRune(body, '"') {
		return "", fmt.Errorf("description must not contain embedded quotes")
	}
	return body, nil
}

// applyLinkDirective parses the fields of a line already known to start
// with "link" and wires the edge into the world.
//
// Postcondition: The from-room's exit is set, or an error is returned if
// the field count, ids, or direction code are invalid, or either id does
// not resolve to a room created in pass 1.
func applyLinkDirective(w *World, fields []string) error {
	if len(fields) != 4 {
		return fmt.Errorf("link directive: want 3 fields, got %d", len(fields)-1)
	}

	fromID, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("link directive: invalid from id %q", fields[1])
	}
	dir, ok := ParseDirectionCode(fields[2])
	if !ok {
		return fmt.Errorf("link directive: invalid direction code %q", fields[2])
	}
	toID, err := strconv.Atoi(fields[3])
	if err != nil {
		return fmt.Errorf("link directive: invalid to id %q", fields[3])
	}

	from, ok := w.FindByID(fromID)
	if !ok {
		return fmt.Errorf("link directive: unknown from room %d", fromID)
	}
	if _, ok := w.FindByID(toID); !ok {
		return fmt.Errorf("link directive: unknown to room %d", toID)
	}

	from.Exits[dir] = toID
	return nil
}
