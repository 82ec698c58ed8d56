package attendance

import "errors"

// ErrNotFound is returned by stores when a single-record lookup matches
// nothing. List operations return empty slices instead.
var ErrNotFound = errors.New("not found")
