package good

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync/atomic"
)

// ErrEntryIndexOutOfRange is returned by RemoveEntry for an index outside [0, len(entries)).
var ErrEntryIndexOutOfRange = errors.New("entry index out of range")

// Counter hands out entry numbers. The first number is 1.
type Counter struct {
	value atomic.Int64
}

// NewCounter creates a Counter starting from zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Next increments the counter and returns the new value.
func (c *Counter) Next() int {
	return int(c.value.Add(1))
}

// processCounter is shared by every Journal created without WithCounter.
var processCounter = NewCounter()

// Journal manages numbered text entries. It knows nothing about files or networks.
type Journal struct {
	entries []string
	counter *Counter
}

// JournalOption defines a functional option for configuring a Journal.
type JournalOption func(*Journal)

// WithCounter makes the journal number its entries from counter instead of the process-wide one.
// Journals sharing a counter interleave their numbering.
func WithCounter(counter *Counter) JournalOption {
	return func(j *Journal) {
		if counter != nil {
			j.counter = counter
		}
	}
}

// NewJournal creates an empty Journal.
func NewJournal(options ...JournalOption) *Journal {
	j := &Journal{
		entries: make([]string, 0),
		counter: processCounter,
	}

	for _, option := range options {
		option(j)
	}

	return j
}

// AddEntry appends "<n>: <text>" where n is the next value of the shared counter.
func (j *Journal) AddEntry(text string) {
	j.entries = append(j.entries, fmt.Sprintf("%d: %s", j.counter.Next(), text))
}

// RemoveEntry removes the entry at index. The counter is not rewound.
func (j *Journal) RemoveEntry(index int) error {
	if index < 0 || index >= len(j.entries) {
		return errors.Join(
			ErrEntryIndexOutOfRange,
			fmt.Errorf("index %d, length %d", index, len(j.entries)),
		)
	}

	j.entries = slices.Delete(j.entries, index, index+1)

	return nil
}

// Entries returns a copy of the entries in insertion order.
func (j *Journal) Entries() []string {
	return slices.Clone(j.entries)
}

// String renders the journal on a single line, e.g. "[1: I cried today, 2: I ate a bug]".
func (j *Journal) String() string {
	return "[" + strings.Join(j.entries, ", ") + "]"
}
