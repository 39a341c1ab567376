package dip

// Triplet is an immutable ordered triple.
type Triplet[F, S, T any] struct {
	value0 F
	value1 S
	value2 T
}

// NewTriplet creates a Triplet.
func NewTriplet[F, S, T any](value0 F, value1 S, value2 T) Triplet[F, S, T] {
	return Triplet[F, S, T]{value0: value0, value1: value1, value2: value2}
}

func (t Triplet[F, S, T]) Value0() F {
	return t.value0
}

func (t Triplet[F, S, T]) Value1() S {
	return t.value1
}

func (t Triplet[F, S, T]) Value2() T {
	return t.value2
}

// Edge is a (subject, relationship, object) triple of the relationship graph.
type Edge = Triplet[Person, Relationship, Person]
