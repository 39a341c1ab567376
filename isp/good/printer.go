package good

import (
	"fmt"
	"io"
)

type Printer interface {
	Print(text string)
}

type Scanner interface {
	Scan()
}

type Faxer interface {
	Fax()
}

// MultiFunctionDevice is composed from the capability interfaces, not declared as one fat interface.
type MultiFunctionDevice interface {
	Printer
	Scanner
	Faxer
}

var (
	_ Printer             = SimplePrinter{}
	_ Printer             = ScanningPrinter{}
	_ Scanner             = ScanningPrinter{}
	_ MultiFunctionDevice = MultiFunctionalPrinter{}
)

// SimplePrinter only prints.
type SimplePrinter struct {
	out io.Writer
}

func NewSimplePrinter(out io.Writer) SimplePrinter {
	return SimplePrinter{out: out}
}

func (p SimplePrinter) Print(text string) {
	_, _ = fmt.Fprintf(p.out, "Printing: %s\n", text)
}

// ScanningPrinter prints and scans.
type ScanningPrinter struct {
	out io.Writer
}

func NewScanningPrinter(out io.Writer) ScanningPrinter {
	return ScanningPrinter{out: out}
}

func (p ScanningPrinter) Print(text string) {
	_, _ = fmt.Fprintf(p.out, "Printing %s\n", text)
}

func (p ScanningPrinter) Scan() {
	_, _ = fmt.Fprintln(p.out, "Scanning")
}

// MultiFunctionalPrinter prints, scans and faxes.
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
