package bad

import (
	"fmt"
	"io"
)

// Printer bundles every capability of an office machine into one interface.
type Printer interface {
	Print(text string)
	Scan()
	Fax()
}

// MultiFunctionalPrinter can really do all three.
type MultiFunctionalPrinter struct {
	out io.Writer
}

func NewMultiFunctionalPrinter(out io.Writer) MultiFunctionalPrinter {
	return MultiFunctionalPrinter{out: out}
}

func (p MultiFunctionalPrinter) Print(text string) {
	_, _ = fmt.Fprintf(p.out, "Printing %s\n", text)
}

func (p MultiFunctionalPrinter) Scan() {
	_, _ = fmt.Fprintln(p.out, "Scanning...")
}

func (p MultiFunctionalPrinter) Fax() {
	_, _ = fmt.Fprintln(p.out, "Faxing...")
}

// SimplePrinter can only print, but the fat interface makes it pretend otherwise.
type SimplePrinter struct {
	out io.Writer
}

func NewSimplePrinter(out io.Writer) SimplePrinter {
	return SimplePrinter{out: out}
}

func (p SimplePrinter) Print(text string) {
	_, _ = fmt.Fprintf(p.out, "Printing: %s\n", text)
}

// Scan does nothing.
func (p SimplePrinter) Scan() {}

// Fax does nothing.
func (p SimplePrinter) Fax() {}
