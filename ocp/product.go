// Package ocp holds the Product catalogue used by the open/closed examples.
//
//   - bad: a ProductFilter that needs one more method for every new criterion combination
//   - good: composable specifications and a generic filter that never changes
//   - task: a calculator switching on an action string, left for the reader to refactor
package ocp

type Color string

const (
	Green Color = "green"
	Blue  Color = "blue"
	Red   Color = "red"
)

type Size string

const (
	Small  Size = "small"
	Medium Size = "medium"
	Large  Size = "large"
)

// Product is immutable once built.
type Product struct {
	name  string
	color Color
	size  Size
}

// BuildProduct is a factory method for Product.
func BuildProduct(name string, color Color, size Size) Product {
	return Product{name: name, color: color, size: size}
}

func (p Product) Name() string {
	return p.name
}

func (p Product) Color() Color {
	return p.color
}

func (p Product) Size() Size {
	return p.size
}

// Names maps products to their names, keeping the order.
func Names(products []Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.name)
	}

	return names
}
