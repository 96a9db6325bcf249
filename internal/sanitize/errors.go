// Package sanitize validates filenames and artifact sizes before anything touches the filesystem.
package sanitize

import "fmt"

// InvalidFilenameError indicates a filename was rejected, either for a path
// traversal attempt or for disallowed characters.
type InvalidFilenameError struct {
	Name   string
	Reason string
}

func (e *InvalidFilenameError) Error() string {
	return fmt.Sprintf("invalid filename %q: %s", e.Name, e.Reason)
}

// PayloadTooLargeError indicates an artifact exceeds the persistence size bound.
type PayloadTooLargeError struct {
	Size  int
	Limit int
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("pdf size (%d bytes) exceeds maximum allowed size (%d bytes)", e.Size, e.Limit)
}
