package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/solid-principles-go/lsp"
	lspbad "github.com/AntonStoeckl/solid-principles-go/lsp/bad"
	lspgood "github.com/AntonStoeckl/solid-principles-go/lsp/good"
	lsptask "github.com/AntonStoeckl/solid-principles-go/lsp/task"
)

func lspCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Liskov substitution: rectangles, squares and birds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			printResize(out, "Rectangle", lsp.NewRectangle(2, 3))
			printResize(out, "Square subtype", lspbad.NewSquare(5))
			printResize(out, "Square from factory", lspgood.CreateSquare(5))

			ostrich := lsptask.NewOstrich(out)
			ostrich.HideHeadInTheSand()
			ostrich.Fly()

			return nil
		},
	}
}

func printResize(out io.Writer, label string, shape lsp.Shape) {
	expected, actual := lsp.ResizeHeight(shape)
	_, _ = fmt.Fprintf(out, "%s: expected an area of %d, got %d\n", label, expected, actual)
}
