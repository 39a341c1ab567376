// Package good replaces the Square subtype with a factory.
package good

import "github.com/AntonStoeckl/solid-principles-go/lsp"

// CreateSquare returns a plain Rectangle with width == height == side.
// Squareness holds at construction only; later SetWidth/SetHeight calls don't re-enforce it.
func CreateSquare(side int) *lsp.Rectangle {
	rect := lsp.NewRectangle(0, 0)
	rect.SetWidth(side)
	rect.SetHeight(side)

	return rect
}

// IsSquare reports whether the rectangle currently has equal sides.
func IsSquare(shape lsp.Shape) bool {
	return shape.Width() == shape.Height()
}
