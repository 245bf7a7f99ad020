package storage

import "errors"

// Sentinel error kinds returned by the task store. Callers match them with
// errors.Is rather than inspecting message text.
var (
	// ErrNotFound is returned when an edit or remove references an id that
	// is not present in the collection. The backing file is left untouched.
	ErrNotFound = errors.New("task not found")

	// ErrDecode is returned when the backing file contains malformed
	// content (wrong field count, unparsable done flag). The whole read is
	// aborted; no partial collection is ever returned.
	ErrDecode = errors.New("malformed todo file")
)
