// Package buildinfo carries version metadata stamped in with
//
//	go build -ldflags "-X fieldviz/internal/buildinfo.Version=v1.2.3 -X fieldviz/internal/buildinfo.Commit=abc123 -X fieldviz/internal/buildinfo.Date=2024-01-01"
package buildinfo

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for window titles and the HUD.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// Long returns every stamped field for the startup log line.
func Long() string {
	return "fieldviz " + Version + " commit=" + Commit + " built=" + Date
}
