package session

// DefaultLogCapacity is the scrollback depth used when no override is
// configured.
const DefaultLogCapacity = 10

// Log is a bounded FIFO scrollback of narrative lines. Once the capacity is
// reached, appending evicts the oldest line, one in, one out.
type Log struct {
	lines    []string
	capacity int
}

// NewLog creates a Log with the given capacity.
//
// Precondition: capacity >= 1; values below 1 use DefaultLogCapacity.
func NewLog(capacity int) *Log {
	if capacity < 1 {
		capacity = DefaultLogCapacity
	}
	return &Log{
		lines:    make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Append adds a line to the scrollback, evicting the oldest line when the
// log is full.
func (l *Log) Append(line string) {
	if len(l.lines) == l.capacity {
		copy(l.lines, l.lines[1:])
		l.lines[len(l.lines)-1] = line
		return
	}
	l.lines = append(l.lines, line)
}

// Lines returns a copy of the scrollback, oldest first.
func (l *Log) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Len returns the number of lines currently held.
func (l *Log) Len() int {
	return len(l.lines)
}

// Capacity returns the maximum number of lines the log holds.
func (l *Log) Capacity() int {
	return l.capacity
}
