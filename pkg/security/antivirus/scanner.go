// Package antivirus scans uploaded videos before they reach storage.
package antivirus

import (
	"context"
	"io"
)

// ScanResult contains the result of a malware scan
type ScanResult struct {
	Infected    bool   // True if malware was detected
	ThreatName  string // Name of detected threat (empty if clean)
	ScannerName string
	Error       error // Set when the scan could not complete; Infected is then true
}

// Scanner is implemented by malware scanning backends. Implementations fail
// closed: a scan that cannot complete reports Infected with an Error.
type Scanner interface {
	Scan(ctx context.Context, filename string, data io.Reader) ScanResult
	Name() string
}
