package bad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/solid-principles-go/ocp"
	"github.com/AntonStoeckl/solid-principles-go/ocp/bad"
)

func Test_ProductFilter(t *testing.T) {
	apple := ocp.BuildProduct("Apple", ocp.Green, ocp.Small)
	tree := ocp.BuildProduct("Tree", ocp.Green, ocp.Large)
	house := ocp.BuildProduct("House", ocp.Blue, ocp.Large)
	products := []ocp.Product{apple, tree, house}
	pf := bad.ProductFilter{}

	assert.Equal(t, []ocp.Product{apple, tree}, pf.FilterByColor(products, ocp.Green))
	assert.Equal(t, []ocp.Product{tree, house}, pf.FilterBySize(products, ocp.Large))
	assert.Equal(t, []ocp.Product{house}, pf.FilterBySizeAndColor(products, ocp.Large, ocp.Blue))
	assert.Empty(t, pf.FilterByColor(products, ocp.Red))
}
