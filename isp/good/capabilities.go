package good

const (
	CapabilityPrint = "print"
	CapabilityScan  = "scan"
	CapabilityFax   = "fax"
)

// Capabilities lists what a device can do, discovered from the interfaces it implements.
// The result is ordered print, scan, fax.
func Capabilities(device any) []string {
	capabilities := make([]string, 0, 3)

	if _, ok := device.(Printer); ok {
		capabilities = append(capabilities, CapabilityPrint)
	}

	if _, ok := device.(Scanner); ok {
		capabilities = append(capabilities, CapabilityScan)
	}

	if _, ok := device.(Faxer); ok {
		capabilities = append(capabilities, CapabilityFax)
	}

	return capabilities
}

// ScanAll scans on every device that can scan and reports how many did.
func ScanAll(devices ...any) int {
	scanned := 0

	for _, device := range devices {
		if scanner, ok := device.(Scanner); ok {
			scanner.Scan()
			scanned++
		}
	}

	return scanned
}
