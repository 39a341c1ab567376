package good_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/solid-principles-go/dip"
	"github.com/AntonStoeckl/solid-principles-go/dip/good"
)

func Test_FindAllChildrenOf(t *testing.T) {
	john := dip.NewPerson("John")
	jane := dip.NewPerson("Jane")
	chris := dip.NewPerson("Chris")
	matt := dip.NewPerson("Matt")
	lisa := dip.NewPerson("Lisa")

	relationships := good.NewBetterRelationships()
	relationships.AddParentAndChild(john, chris)
	relationships.AddParentAndChild(jane, lisa)
	relationships.AddParentAndChild(john, matt)

	tests := []struct {
		name string
		of   string
		want []dip.Person
	}{
		{name: "children_in_insertion_order", of: "John", want: []dip.Person{chris, matt}},
		{name: "other_parent_is_separate", of: "Jane", want: []dip.Person{lisa}},
		{name: "child_edges_do_not_count_as_parent", of: "Chris", want: []dip.Person{}},
		{name: "unknown_name_yields_empty", of: "Nobody", want: []dip.Person{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := relationships.FindAllChildrenOf(tc.of)
			assert.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func Test_BetterResearch_DependsOnAbstractionOnly(t *testing.T) {
	// arrange
	browser := browserStub{children: []dip.Person{dip.NewPerson("Chris"), dip.NewPerson("Matt")}}
	var out bytes.Buffer

	// act
	children := good.BetterResearch(browser, "John", &out)

	// assert
	assert.Len(t, children, 2)
	assert.Equal(t, "John has a child called Chris\nJohn has a child called Matt\n", out.String())
}

func Test_BetterResearch_WithBetterRelationships(t *testing.T) {
	// arrange
	relationships := good.NewBetterRelationships()
	relationships.AddParentAndChild(dip.NewPerson("John"), dip.NewPerson("Chris"))
	var out bytes.Buffer

	// act
	children := good.BetterResearch(relationships, "John", &out)

	// assert
	assert.Equal(t, []dip.Person{dip.NewPerson("Chris")}, children)
	assert.Equal(t, "John has a child called Chris\n", out.String())
}

type browserStub struct {
	children []dip.Person
}

func (b browserStub) FindAllChildrenOf(_ string) []dip.Person {
	return b.children
}
