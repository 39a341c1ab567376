// Package good implements the specification pattern.
//
// A Specification[T] is a predicate over one item. Specifications compose with And, AllOf
// and AnyOf, and BetterFilter applies any of them without ever being modified:
//
//	filter := good.BetterFilter[ocp.Product]{}
//	largeBlue := filter.Filter(
//		products,
//		good.And[ocp.Product](good.ColorSpecification(ocp.Blue), good.SizeSpecification(ocp.Large)),
//	)
//
// Adding a criterion means adding one Specification implementation. Product specifications
// that also implement ExpressibleAsSQL can be rendered to a SQL WHERE clause with BuildSelectQuery.
package good
