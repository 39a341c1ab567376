package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	ispbad "github.com/AntonStoeckl/solid-principles-go/isp/bad"
	ispgood "github.com/AntonStoeckl/solid-principles-go/isp/good"
	isptask "github.com/AntonStoeckl/solid-principles-go/isp/task"
)

func ispCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "isp",
		Short: "Interface segregation: printers and phones",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(out, "Fat Printer interface, SimplePrinter must stub Scan and Fax:")
			simple := ispbad.NewSimplePrinter(out)
			simple.Print("hello")
			simple.Scan()
			simple.Fax()

			_, _ = fmt.Fprintln(out, "Segregated interfaces:")
			devices := []any{
				ispgood.NewSimplePrinter(out),
				ispgood.NewScanningPrinter(out),
				ispgood.NewMultiFunctionalPrinter(out),
			}
			for _, device := range devices {
				_, _ = fmt.Fprintf(out, " - %T can %s\n", device, strings.Join(ispgood.Capabilities(device), ", "))
			}
			scanned := ispgood.ScanAll(devices...)
			_, _ = fmt.Fprintf(out, "%d of %d devices scanned\n", scanned, len(devices))

			_, _ = fmt.Fprintln(out, "Phones forced to implement every feature:")
			var nokia isptask.Phone = isptask.NewNokia3310(out)
			if err := nokia.TakeAPhoto(); err != nil {
				a.logger.Warn("phone feature failed", "phone", "Nokia3310", "error", err.Error())
			}

			return nil
		},
	}
}
