package bad

import "github.com/AntonStoeckl/solid-principles-go/dip"

// Relationships is a low-level store of parent/child edges.
type Relationships struct {
	relations []dip.Edge
}

// NewRelationships creates an empty store.
func NewRelationships() *Relationships {
	return &Relationships{relations: make([]dip.Edge, 0)}
}

// Relations exposes the internal storage to callers.
// Every reader now depends on the slice-of-triplets representation.
func (r *Relationships) Relations() []dip.Edge {
	return r.relations
}

// AddParentAndChild stores the edge in both directions.
func (r *Relationships) AddParentAndChild(parent, child dip.Person) {
	r.relations = append(
		r.relations,
		dip.NewTriplet(parent, dip.Parent, child),
		dip.NewTriplet(child, dip.Child, parent),
	)
}
