// Package task is a single responsibility exercise: refactor PageNavigationController so that
// navigation, page lookup and element inspection each live in their own type.
package task

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Page is a browser page.
type Page struct {
	ID uuid.UUID
}

// NewPage creates a Page with a fresh ID.
func NewPage() Page {
	return Page{ID: uuid.New()}
}

func (p Page) String() string {
	return "Page(" + p.ID.String() + ")"
}

// WebElement is an element on a page, identified by its CSS selector.
type WebElement struct {
	Selector string
}

func (e WebElement) String() string {
	return "WebElement(" + e.Selector + ")"
}

// PageNavigationController narrates every action to out.
type PageNavigationController struct {
	out io.Writer
}

// NewPageNavigationController creates a controller narrating to out.
func NewPageNavigationController(out io.Writer) *PageNavigationController {
	return &PageNavigationController{out: out}
}

func (c *PageNavigationController) NavigateTo(page Page) {
	c.printf("Navigating to page %s\n", page)
}

func (c *PageNavigationController) NavigateToName(pageName string) {
	c.printf("Navigating to %s\n", pageName)
}

func (c *PageNavigationController) Refresh() {
	c.printf("Refreshing the page %s\n", c.CurrentPage())
}

func (c *PageNavigationController) Back() {}

func (c *PageNavigationController) Forward() {}

// CurrentPage returns a new Page on every call.
func (c *PageNavigationController) CurrentPage() Page {
	c.printf("Getting current page\n")

	return NewPage()
}

func (c *PageNavigationController) Close(page Page) {
	c.printf("Closing page %s\n", page)
}

func (c *PageNavigationController) ScrollToElement(element WebElement) {
	c.printf("Scrolling to element %s\n", element)
}

// IsElementPresentOnPage always reports false.
func (c *PageNavigationController) IsElementPresentOnPage(page Page, element WebElement) bool {
	c.printf("Checking if %s element is present on %s\n", element, page)

	return false
}

func (c *PageNavigationController) IsElementPresentOnCurrentPage(element WebElement) bool {
	return c.IsElementPresentOnPage(c.CurrentPage(), element)
}

func (c *PageNavigationController) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
