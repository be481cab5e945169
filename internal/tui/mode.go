// Package tui provides the terminal user interface for tasklist.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Default navigation mode
	ModeAdd                 // New task text input
	ModeImport              // Share code input
	ModeConfirm             // Delete confirmation
	ModeHelp                // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeAdd:
		return "add"
	case ModeImport:
		return "import"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeAdd, ModeImport:
		return true
	case ModeNormal, ModeConfirm, ModeHelp:
		return false
	}
	return false
}
