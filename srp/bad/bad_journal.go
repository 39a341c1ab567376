package bad

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

var count = 0

// BadJournal keeps entries and also saves and loads itself.
// Entry management and persistence change for different reasons, yet live in one type.
type BadJournal struct {
	entries []string
}

// NewBadJournal creates an empty BadJournal.
func NewBadJournal() *BadJournal {
	return &BadJournal{entries: make([]string, 0)}
}

func (j *BadJournal) AddEntry(text string) {
	count++
	j.entries = append(j.entries, fmt.Sprintf("%d: %s", count, text))
}

// RemoveEntry panics for an index out of range, like any slice access would.
func (j *BadJournal) RemoveEntry(index int) {
	j.entries = append(j.entries[:index], j.entries[index+1:]...)
}

func (j *BadJournal) Entries() []string {
	return j.entries
}

func (j *BadJournal) String() string {
	return "[" + strings.Join(j.entries, ", ") + "]"
}

// Save always overwrites filename.
func (j *BadJournal) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintln(f, j.String())

	return err
}

func (j *BadJournal) Load(_ string) {}

func (j *BadJournal) LoadFromURL(_ *url.URL) {}
