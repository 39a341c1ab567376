package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/solid-principles-go/ocp"
	ocpbad "github.com/AntonStoeckl/solid-principles-go/ocp/bad"
	ocpgood "github.com/AntonStoeckl/solid-principles-go/ocp/good"
	ocptask "github.com/AntonStoeckl/solid-principles-go/ocp/task"
)

const productsTable = "products"

func ocpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ocp",
		Short: "Open/closed: product filters and specifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			products := []ocp.Product{
				ocp.BuildProduct("Apple", ocp.Green, ocp.Small),
				ocp.BuildProduct("Tree", ocp.Green, ocp.Large),
				ocp.BuildProduct("House", ocp.Blue, ocp.Large),
			}

			_, _ = fmt.Fprintln(out, "Green products (old):")
			printProducts(out, ocpbad.ProductFilter{}.FilterByColor(products, ocp.Green), "is green")

			filter := ocpgood.BetterFilter[ocp.Product]{}
			green := ocpgood.ColorSpecification(ocp.Green)
			large := ocpgood.SizeSpecification(ocp.Large)
			largeAndBlue := ocpgood.And[ocp.Product](ocpgood.ColorSpecification(ocp.Blue), large)

			_, _ = fmt.Fprintln(out, "Green products (new):")
			printProducts(out, filter.Filter(products, green), "is green")
			_, _ = fmt.Fprintln(out, "Large products:")
			printProducts(out, filter.Filter(products, large), "is large")
			_, _ = fmt.Fprintln(out, "Large blue items:")
			printProducts(out, filter.Filter(products, largeAndBlue), "is large and blue")

			query, err := ocpgood.BuildSelectQuery(productsTable, largeAndBlue)
			if err != nil {
				return err
			}
			a.logger.Debug("specification as sql", "query", query)
			_, _ = fmt.Fprintf(out, "Large blue items as SQL: %s\n", query)

			calculator := ocptask.Calculator{}
			for _, action := range []string{"add", "divide", "modulo"} {
				result, calcErr := calculator.Calculate(action, 6, 3)
				if calcErr != nil {
					a.logger.Warn("calculation failed", "action", action, "error", calcErr.Error())
					continue
				}
				_, _ = fmt.Fprintf(out, "%s(6, 3) = %d\n", action, result)
			}

			return nil
		},
	}
}

func printProducts(out io.Writer, products []ocp.Product, suffix string) {
	for _, p := range products {
		_, _ = fmt.Fprintf(out, " - %s %s\n", p.Name(), suffix)
	}
}
