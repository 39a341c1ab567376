// Package bad shows a Square that breaks the Rectangle contract.
package bad

import "github.com/AntonStoeckl/solid-principles-go/lsp"

var _ lsp.Shape = (*Square)(nil)

// Square embeds Rectangle and overrides both setters to keep width == height.
type Square struct {
	lsp.Rectangle
}

func NewSquare(size int) *Square {
	s := &Square{}
	s.Rectangle.SetWidth(size)
	s.Rectangle.SetHeight(size)

	return s
}

// SetWidth also changes the height.
func (s *Square) SetWidth(width int) {
	s.Rectangle.SetWidth(width)
	s.Rectangle.SetHeight(width)
}

// SetHeight also changes the width.
func (s *Square) SetHeight(height int) {
	s.Rectangle.SetHeight(height)
	s.Rectangle.SetWidth(height)
}
