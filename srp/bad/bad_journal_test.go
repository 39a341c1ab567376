package bad_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/solid-principles-go/srp/bad"
)

func Test_BadJournal_AddEntry_NumbersAcrossInstances(t *testing.T) {
	// arrange
	first := bad.NewBadJournal()
	second := bad.NewBadJournal()

	// act
	first.AddEntry("a")
	second.AddEntry("b")

	// assert
	var firstNumber, secondNumber int
	_, err := fmt.Sscanf(first.Entries()[0], "%d:", &firstNumber)
	require.NoError(t, err)
	_, err = fmt.Sscanf(second.Entries()[0], "%d:", &secondNumber)
	require.NoError(t, err)
	assert.Equal(t, firstNumber+1, secondNumber)
}

func Test_BadJournal_RemoveEntry(t *testing.T) {
	journal := bad.NewBadJournal()
	journal.AddEntry("a")
	journal.AddEntry("b")

	journal.RemoveEntry(0)

	assert.Len(t, journal.Entries(), 1)
	assert.Contains(t, journal.Entries()[0], ": b")
}

func Test_BadJournal_RemoveEntry_PanicsOutOfRange(t *testing.T) {
	journal := bad.NewBadJournal()

	assert.Panics(t, func() { journal.RemoveEntry(0) })
}

func Test_BadJournal_Save_AlwaysOverwrites(t *testing.T) {
	// arrange
	filename := filepath.Join(t.TempDir(), "journal.txt")
	require.NoError(t, os.WriteFile(filename, []byte("old content\n"), 0o600))
	journal := bad.NewBadJournal()
	journal.AddEntry("I ate a bug")

	// act
	err := journal.Save(filename)

	// assert
	require.NoError(t, err)
	content, readErr := os.ReadFile(filename)
	require.NoError(t, readErr)
	assert.Equal(t, journal.String()+"\n", string(content))
}
