// Package clipboard writes share codes to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/runoshun/tasklist/internal/domain"
)

// Ensure System implements domain.Clipboard.
var _ domain.Clipboard = (*System)(nil)

// System is the OS clipboard.
type System struct{}

// New returns the system clipboard.
func New() *System {
	return &System{}
}

// Available reports whether a clipboard utility was found.
func (*System) Available() bool {
	return !clipboard.Unsupported
}

// WriteAll replaces the clipboard contents with text.
func (s *System) WriteAll(text string) error {
	if !s.Available() {
		return fmt.Errorf("clipboard: no clipboard utility available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
