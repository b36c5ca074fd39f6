package display

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMalformedName(t *testing.T) {
	conn, err := Open("no-such-display")
	require.Error(t, err)
	assert.Nil(t, conn)

	var connErr *ConnectError
	require.True(t, errors.As(err, &connErr))
	assert.Equal(t, "no-such-display", connErr.Display)
	assert.NotNil(t, connErr.Err)
}

func TestOpenUnreachableDisplay(t *testing.T) {
	// display 253 has no socket under /tmp/.X11-unix on any sane host
	conn, err := Open(":253")
	require.Error(t, err)
	assert.Nil(t, conn)

	var connErr *ConnectError
	require.True(t, errors.As(err, &connErr))
	assert.Equal(t, ":253", connErr.Display)
}

func TestOpenDefaultDisplay(t *testing.T) {
	if os.Getenv("DISPLAY") == "" {
		t.Skip("DISPLAY is not set")
	}

	conn, err := Open("")
	require.NoError(t, err)
	defer conn.Close()

	assert.True(t, strings.HasPrefix(conn.Handle(), "0x"))
	assert.Equal(t, conn.Handle(), conn.String())
	assert.NotZero(t, conn.RootWindow())
}

func TestOpenRepeatable(t *testing.T) {
	_, err0 := Open(":253")
	_, err1 := Open(":253")
	assert.Error(t, err0)
	assert.Error(t, err1)
}

func TestConnectError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &ConnectError{Display: ":1", Err: cause}

	assert.Equal(t, `failed to connect to display ":1": connection refused`, err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, cause, errors.Unwrap(err))
}
