package good

import "github.com/AntonStoeckl/solid-principles-go/dip"

// RelationshipBrowser is the abstraction high-level modules depend on.
// It exposes queries over the relationship graph without exposing how the graph is stored.
type RelationshipBrowser interface {
	FindAllChildrenOf(name string) []dip.Person
}

// BetterRelationships is the low-level store. Its edges never leave the type.
type BetterRelationships struct {
	relations []dip.Edge
}

// NewBetterRelationships creates an empty store.
func NewBetterRelationships() *BetterRelationships {
	return &BetterRelationships{relations: make([]dip.Edge, 0)}
}

// AddParentAndChild stores the edge in both directions.
func (r *BetterRelationships) AddParentAndChild(parent, child dip.Person) {
	r.relations = append(
		r.relations,
		dip.NewTriplet(parent, dip.Parent, child),
		dip.NewTriplet(child, dip.Child, parent),
	)
}

// FindAllChildrenOf returns, in insertion order, every person P with an edge (X, PARENT, P) where X.Name == name.
// Unknown names yield an empty slice.
func (r *BetterRelationships) FindAllChildrenOf(name string) []dip.Person {
	children := make([]dip.Person, 0)

	for _, edge := range r.relations {
		if edge.Value0().Name == name && edge.Value1() == dip.Parent {
			children = append(children, edge.Value2())
		}
	}

	return children
}
