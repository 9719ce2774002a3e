package frontier

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmpty is the panic value of Retrieve on an empty frontier.
	ErrEmpty = errors.New("frontier: retrieve from empty frontier")

	// ErrUnknownDiscipline is returned for an unrecognized Discipline.
	ErrUnknownDiscipline = errors.New("frontier: unknown discipline")
)

// Discipline selects the removal order of a Frontier.
type Discipline int

const (
	// Stack removes the most recently stored state (LIFO, depth-first).
	Stack Discipline = iota
	// Queue removes the least recently stored state (FIFO, breadth-first).
	Queue
)

// String returns "stack" or "queue".
func (d Discipline) String() string {
	switch d {
	case Stack:
		return "stack"
	case Queue:
		return "queue"
	}
	return fmt.Sprintf("Discipline(%d)", int(d))
}

// ParseDiscipline maps "stack", "s", "lifo", "queue", "q" or "fifo"
// (case-insensitive) to a Discipline.
func ParseDiscipline(s string) (Discipline, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stack", "s", "lifo":
		return Stack, nil
	case "queue", "q", "fifo":
		return Queue, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDiscipline, s)
}

// Frontier is a container of pending states.
type Frontier[T any] interface {
	// Store adds v.
	Store(v T)
	// Retrieve removes and returns the next value per the discipline.
	// It panics with ErrEmpty when nothing is stored.
	Retrieve() T
	// IsEmpty reports whether nothing is stored.
	IsEmpty() bool
	// Len returns the number of stored values.
	Len() int
}
