package cli

import "errors"

// ErrNoAppFactory is returned by commands that need an app when the root
// command was built without an AppFactory.
var ErrNoAppFactory = errors.New("no app factory configured")
