package display

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/linuxdeepin/go-lib/log"
	x "github.com/linuxdeepin/go-x11-client"
	"github.com/linuxdeepin/go-x11-client/ext/randr"
	"golang.org/x/xerrors"
)

var logger = log.NewLogger("xdpyprobe/display")

// Connection is an open session with an X display server. A non-nil
// Connection is always valid; it stays owned by the process until Close.
type Connection struct {
	xConn *x.Conn
	root  x.Window
}

// Open connects to the display server named by displayName. The empty
// name means the default display, resolved from the DISPLAY environment
// variable inside the X client library.
//
// Every failure is reported as a *ConnectError wrapping the cause.
func Open(displayName string) (*Connection, error) {
	xConn, err := x.NewConnDisplay(displayName)
	if err != nil {
		return nil, &ConnectError{Display: displayName, Err: err}
	}

	root := xConn.GetDefaultScreen().Root
	if root == 0 {
		xConn.Close()
		return nil, &ConnectError{
			Display: displayName,
			Err:     xerrors.New("default screen has no root window"),
		}
	}

	if logger.GetLogLevel() == log.LevelDebug {
		logger.Debug("default screen:", spew.Sdump(xConn.GetDefaultScreen()))
		// randr stays link-only, nothing here speaks the extension protocol
		logger.Debugf("randr client protocol %d.%d linked", randr.MajorVersion, randr.MinorVersion)
	}

	return &Connection{
		xConn: xConn,
		root:  root,
	}, nil
}

// Handle returns the identity of the underlying connection, formatted
// like a pointer value (0x-prefixed).
func (c *Connection) Handle() string {
	return fmt.Sprintf("%p", c.xConn)
}

func (c *Connection) String() string {
	return c.Handle()
}

// RootWindow returns the root window of the default screen, captured at
// open time.
func (c *Connection) RootWindow() x.Window {
	return c.root
}

// Close releases the session with the display server.
func (c *Connection) Close() {
	c.xConn.Close()
}

func SetLogLevel(level log.Priority) {
	logger.SetLogLevel(level)
}
