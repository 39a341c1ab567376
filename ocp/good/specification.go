package good

// Specification is a side-effect free predicate over a single item.
type Specification[T any] interface {
	IsSatisfied(item T) bool
}

// Filter selects the items satisfying a Specification.
type Filter[T any] interface {
	Filter(items []T, spec Specification[T]) []T
}

var _ Filter[int] = BetterFilter[int]{}

// BetterFilter returns, in input order, exactly the items satisfying spec.
type BetterFilter[T any] struct{}

func (BetterFilter[T]) Filter(items []T, spec Specification[T]) []T {
	filtered := make([]T, 0)

	for _, item := range items {
		if spec.IsSatisfied(item) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

// SpecificationFunc adapts an ordinary function to a Specification.
type SpecificationFunc[T any] func(item T) bool

func (f SpecificationFunc[T]) IsSatisfied(item T) bool {
	return f(item)
}

// AndSpecification is satisfied iff both constituents are.
type AndSpecification[T any] struct {
	first  Specification[T]
	second Specification[T]
}

// And combines two specifications by logical AND.
func And[T any](first, second Specification[T]) AndSpecification[T] {
	return AndSpecification[T]{first: first, second: second}
}

func (s AndSpecification[T]) IsSatisfied(item T) bool {
	return s.first.IsSatisfied(item) && s.second.IsSatisfied(item)
}

// AllOfSpecification is satisfied iff every constituent is.
type AllOfSpecification[T any] struct {
	specs []Specification[T]
}

// AllOf combines one or multiple specifications by logical AND.
func AllOf[T any](spec Specification[T], specs ...Specification[T]) AllOfSpecification[T] {
	return AllOfSpecification[T]{specs: append([]Specification[T]{spec}, specs...)}
}

func (s AllOfSpecification[T]) IsSatisfied(item T) bool {
	for _, spec := range s.specs {
		if !spec.IsSatisfied(item) {
			return false
		}
	}

	return true
}

// AnyOfSpecification is satisfied iff at least one constituent is.
type AnyOfSpecification[T any] struct {
	specs []Specification[T]
}

// AnyOf combines one or multiple specifications by logical OR.
func AnyOf[T any](spec Specification[T], specs ...Specification[T]) AnyOfSpecification[T] {
	return AnyOfSpecification[T]{specs: append([]Specification[T]{spec}, specs...)}
}

func (s AnyOfSpecification[T]) IsSatisfied(item T) bool {
	for _, spec := range s.specs {
		if spec.IsSatisfied(item) {
			return true
		}
	}

	return false
}
