package good

import (
	"fmt"
	"io"

	"github.com/AntonStoeckl/solid-principles-go/dip"
)

// BetterResearch is the high-level module. It only knows the RelationshipBrowser abstraction.
func BetterResearch(browser RelationshipBrowser, name string, out io.Writer) []dip.Person {
	children := browser.FindAllChildrenOf(name)

	for _, child := range children {
		_, _ = fmt.Fprintf(out, "%s has a child called %s\n", name, child.Name)
	}

	return children
}
