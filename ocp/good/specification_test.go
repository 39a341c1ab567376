package good_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/solid-principles-go/ocp"
	"github.com/AntonStoeckl/solid-principles-go/ocp/good"
)

var (
	apple    = ocp.BuildProduct("Apple", ocp.Green, ocp.Small)
	tree     = ocp.BuildProduct("Tree", ocp.Green, ocp.Large)
	house    = ocp.BuildProduct("House", ocp.Blue, ocp.Large)
	products = []ocp.Product{apple, tree, house}
)

func Test_BetterFilter(t *testing.T) {
	filter := good.BetterFilter[ocp.Product]{}

	tests := []struct {
		name string
		spec good.Specification[ocp.Product]
		want []string
	}{
		{
			name: "green",
			spec: good.ColorSpecification(ocp.Green),
			want: []string{"Apple", "Tree"},
		},
		{
			name: "large",
			spec: good.SizeSpecification(ocp.Large),
			want: []string{"Tree", "House"},
		},
		{
			name: "large_and_blue",
			spec: good.And[ocp.Product](good.ColorSpecification(ocp.Blue), good.SizeSpecification(ocp.Large)),
			want: []string{"House"},
		},
		{
			name: "red_matches_nothing",
			spec: good.ColorSpecification(ocp.Red),
			want: []string{},
		},
		{
			name: "all_of_green_large_tree",
			spec: good.AllOf[ocp.Product](
				good.ColorSpecification(ocp.Green),
				good.SizeSpecification(ocp.Large),
				good.NameSpecification("Tree"),
			),
			want: []string{"Tree"},
		},
		{
			name: "any_of_small_or_blue",
			spec: good.AnyOf[ocp.Product](good.SizeSpecification(ocp.Small), good.ColorSpecification(ocp.Blue)),
			want: []string{"Apple", "House"},
		},
		{
			name: "func_specification",
			spec: good.SpecificationFunc[ocp.Product](func(p ocp.Product) bool { return len(p.Name()) > 4 }),
			want: []string{"Apple", "House"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := filter.Filter(products, tc.spec)
			assert.Equal(t, tc.want, ocp.Names(got))
		})
	}
}

func Test_BetterFilter_EmptyInput(t *testing.T) {
	got := good.BetterFilter[ocp.Product]{}.Filter(nil, good.ColorSpecification(ocp.Green))

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func Test_BetterFilter_ResultIsOrderPreservingSubsequence(t *testing.T) {
	// arrange
	items := []int{9, 2, 7, 4, 4, 1, 8}
	even := good.SpecificationFunc[int](func(i int) bool { return i%2 == 0 })

	// act
	got := good.BetterFilter[int]{}.Filter(items, even)

	// assert
	assert.Equal(t, []int{2, 4, 4, 8}, got)
}

func Test_AndSpecification_IsLogicalAnd(t *testing.T) {
	yes := good.SpecificationFunc[int](func(int) bool { return true })
	no := good.SpecificationFunc[int](func(int) bool { return false })

	tests := []struct {
		name   string
		first  good.Specification[int]
		second good.Specification[int]
		want   bool
	}{
		{name: "true_true", first: yes, second: yes, want: true},
		{name: "true_false", first: yes, second: no, want: false},
		{name: "false_true", first: no, second: yes, want: false},
		{name: "false_false", first: no, second: no, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, good.And(tc.first, tc.second).IsSatisfied(1))
		})
	}
}
