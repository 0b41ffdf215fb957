package command

import "strings"

// ParseResult holds the normalized verb and argument from a player input line.
type ParseResult struct {
	// Verb is the first word of the input, lowercased.
	Verb string
	// Arg is the word after the verb, lowercased. Empty if none was typed.
	Arg string
}

// Empty reports whether the input normalized to nothing at all.
func (p ParseResult) Empty() bool {
	return p.Verb == ""
}

// Parse normalizes a raw input line into a verb and an optional single
// argument. The whole line is lowercased before splitting; words beyond the
// second are discarded.
//
// Postcondition: Returns a ParseResult. If the line is blank, Verb is empty.
func Parse(line string) ParseResult {
	fields := strings.Fields(strings.ToLower(line))
	switch len(fields) {
	case 0:
		return ParseResult{}
	case 1:
		return ParseResult{Verb: fields[0]}
	default:
		return ParseResult{Verb: fields[0], Arg: fields[1]}
	}
}
