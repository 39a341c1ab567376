// Package lsp holds the Rectangle used by the Liskov substitution examples.
//
// The contract of a Rectangle is that width and height are set independently:
// after SetWidth(w) the height is whatever it was before.
package lsp

import "fmt"

// Shape is the contract every rectangle-like value must honor.
type Shape interface {
	Width() int
	Height() int
	SetWidth(width int)
	SetHeight(height int)
	Area() int
}

var _ Shape = (*Rectangle)(nil)

type Rectangle struct {
	width  int
	height int
}

// NewRectangle creates a Rectangle.
func NewRectangle(width int, height int) *Rectangle {
	return &Rectangle{width: width, height: height}
}

func (r *Rectangle) Width() int {
	return r.width
}

func (r *Rectangle) Height() int {
	return r.height
}

func (r *Rectangle) SetWidth(width int) {
	r.width = width
}

func (r *Rectangle) SetHeight(height int) {
	r.height = height
}

func (r *Rectangle) Area() int {
	return r.width * r.height
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle{width=%d, height=%d}", r.width, r.height)
}

// ResizeHeight relies on the Shape contract: it sets the height to 10 and expects
// the area to follow from the untouched width. It returns the expected and the actual area.
func ResizeHeight(shape Shape) (expectedArea int, actualArea int) {
	width := shape.Width()
	shape.SetHeight(10)

	return width * 10, shape.Area()
}
