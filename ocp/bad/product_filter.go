// Package bad holds a filter that must be modified for every new criterion.
// Three criteria already need seven methods.
package bad

import "github.com/AntonStoeckl/solid-principles-go/ocp"

type ProductFilter struct{}

func (ProductFilter) FilterByColor(products []ocp.Product, color ocp.Color) []ocp.Product {
	filtered := make([]ocp.Product, 0)
	for _, p := range products {
		if p.Color() == color {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

func (ProductFilter) FilterBySize(products []ocp.Product, size ocp.Size) []ocp.Product {
	filtered := make([]ocp.Product, 0)
	for _, p := range products {
		if p.Size() == size {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

func (ProductFilter) FilterBySizeAndColor(products []ocp.Product, size ocp.Size, color ocp.Color) []ocp.Product {
	filtered := make([]ocp.Product, 0)
	for _, p := range products {
		if p.Size() == size && p.Color() == color {
			filtered = append(filtered, p)
		}
	}

	return filtered
}
