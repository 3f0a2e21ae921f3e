//go:build !cgo

package hal

import "errors"

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Screen Screen
	Scale  int
	TPS    int
}

func RunWindow(_ NewApp, _ WindowConfig) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1); try -terminal or -headless")
}
