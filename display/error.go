package display

import "fmt"

// ConnectError is the only error kind returned by Open: no display server
// was reachable at the resolved endpoint, whether because the server is
// not running, the name is malformed, or the transport refused us.
type ConnectError struct {
	// Display is the display name that was attempted, empty for the
	// default display.
	Display string
	// Err is the underlying cause.
	Err error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("failed to connect to display %q: %v", e.Display, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}
