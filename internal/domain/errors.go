package domain

import "errors"

// Domain errors.
var (
	ErrEmptyInput     = errors.New("task text cannot be empty")
	ErrStaleIdentity  = errors.New("task not found in list")
	ErrInvalidFilter  = errors.New("invalid filter")
	ErrStorageParse   = errors.New("stored task list is corrupt")
	ErrDecode         = errors.New("share code cannot be decoded")
	ErrParse          = errors.New("share code does not contain valid JSON")
	ErrValidation     = errors.New("share code has an invalid task list shape")
	ErrNoShareBaseURL = errors.New("no share base URL configured (set [share] base_url or pass --base-url)")
	ErrConfigExists   = errors.New("config file already exists")
	ErrEmptyFile      = errors.New("file is empty")
	ErrNoTasksInFile  = errors.New("no tasks found in file")
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// FailureClass names the class of a share import failure for user notification.
// Returns an empty string for errors outside the import taxonomy.
func FailureClass(err error) string {
	switch {
	case errors.Is(err, ErrDecode):
		return "DecodeError"
	case errors.Is(err, ErrParse):
		return "ParseError"
	case errors.Is(err, ErrValidation):
		return "ValidationError"
	}
	return ""
}
