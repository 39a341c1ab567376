package good

import "github.com/AntonStoeckl/solid-principles-go/ocp"

// ColorSpecification is satisfied by products of one color.
type ColorSpecification ocp.Color

func (s ColorSpecification) IsSatisfied(p ocp.Product) bool {
	return p.Color() == ocp.Color(s)
}

// SizeSpecification is satisfied by products of one size.
type SizeSpecification ocp.Size

func (s SizeSpecification) IsSatisfied(p ocp.Product) bool {
	return p.Size() == ocp.Size(s)
}

// NameSpecification is satisfied by the product with exactly this name.
// It was added without touching BetterFilter or any other specification.
type NameSpecification string

func (s NameSpecification) IsSatisfied(p ocp.Product) bool {
	return p.Name() == string(s)
}
