package bad

import (
	"fmt"
	"io"

	"github.com/AntonStoeckl/solid-principles-go/dip"
)

// Research is the high-level module. It reaches into the concrete store and filters its edges itself.
// It returns the children it found and narrates them to out.
func Research(relationships *Relationships, name string, out io.Writer) []dip.Person {
	children := make([]dip.Person, 0)

	for _, edge := range relationships.Relations() {
		if edge.Value0().Name == name && edge.Value1() == dip.Parent {
			children = append(children, edge.Value2())
			_, _ = fmt.Fprintf(out, "%s has a child called %s\n", name, edge.Value2().Name)
		}
	}

	return children
}
