package lsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/solid-principles-go/lsp"
)

func Test_Rectangle_DimensionsAreIndependent(t *testing.T) {
	// arrange
	rect := lsp.NewRectangle(2, 3)

	// act
	rect.SetWidth(5)

	// assert
	assert.Equal(t, 5, rect.Width())
	assert.Equal(t, 3, rect.Height())
	assert.Equal(t, 15, rect.Area())
	assert.Equal(t, "Rectangle{width=5, height=3}", rect.String())
}

func Test_ResizeHeight_Rectangle(t *testing.T) {
	expected, actual := lsp.ResizeHeight(lsp.NewRectangle(2, 3))

	assert.Equal(t, 20, expected)
	assert.Equal(t, expected, actual)
}
