package bad_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/solid-principles-go/dip"
	"github.com/AntonStoeckl/solid-principles-go/dip/bad"
)

func Test_AddParentAndChild_StoresBothDirections(t *testing.T) {
	// arrange
	john := dip.NewPerson("John")
	chris := dip.NewPerson("Chris")
	relationships := bad.NewRelationships()

	// act
	relationships.AddParentAndChild(john, chris)

	// assert
	relations := relationships.Relations()
	assert.Len(t, relations, 2)
	assert.Equal(t, dip.NewTriplet(john, dip.Parent, chris), relations[0])
	assert.Equal(t, dip.NewTriplet(chris, dip.Child, john), relations[1])
}

func Test_Research_NarratesChildren(t *testing.T) {
	// arrange
	relationships := bad.NewRelationships()
	relationships.AddParentAndChild(dip.NewPerson("John"), dip.NewPerson("Chris"))
	relationships.AddParentAndChild(dip.NewPerson("John"), dip.NewPerson("Matt"))
	var out bytes.Buffer

	// act
	children := bad.Research(relationships, "John", &out)

	// assert
	assert.Equal(t, []dip.Person{dip.NewPerson("Chris"), dip.NewPerson("Matt")}, children)
	assert.Equal(t, "John has a child called Chris\nJohn has a child called Matt\n", out.String())
}

func Test_Relations_LeaksInternalStorage(t *testing.T) {
	// arrange
	relationships := bad.NewRelationships()
	relationships.AddParentAndChild(dip.NewPerson("John"), dip.NewPerson("Chris"))

	// act
	leaked := relationships.Relations()
	leaked[0] = dip.NewTriplet(dip.NewPerson("Mallory"), dip.Parent, dip.NewPerson("Chris"))

	// assert
	assert.Empty(t, bad.Research(relationships, "John", &bytes.Buffer{}))
}
