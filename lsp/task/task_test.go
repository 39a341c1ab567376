package task_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/solid-principles-go/lsp/task"
)

func Test_Birds_AreWarmBloodedAnimals(t *testing.T) {
	var out bytes.Buffer
	animals := []task.Animal{task.NewBird(&out), task.NewOstrich(&out), task.NewDuck(&out)}

	for _, animal := range animals {
		assert.True(t, animal.IsWarmBlooded())
	}
}

func Test_Ostrich_InheritsFlyItCannotHonor(t *testing.T) {
	// arrange
	var out bytes.Buffer
	ostrich := task.NewOstrich(&out)

	// act
	ostrich.Fly()
	ostrich.HideHeadInTheSand()

	// assert
	assert.Equal(t, "I'm flying\nHiding...\n", out.String())
}

func Test_Duck_Quacks(t *testing.T) {
	var out bytes.Buffer

	task.NewDuck(&out).Quack()

	assert.Equal(t, "I'm hungry..\n", out.String())
}
