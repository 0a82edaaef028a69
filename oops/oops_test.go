//go:build testing

package oops

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var errSentinel = errors.New("sentinel")

func TestWrapKeepsIdentity(t *testing.T) {
	err := Wrap(errSentinel)
	require.ErrorIs(t, err, errSentinel)
	require.Equal(t, "sentinel", err.Error())

	wrapped := Wrapf(errSentinel, "loading %s", "fr")
	require.ErrorIs(t, wrapped, errSentinel)
	require.Equal(t, "loading fr: sentinel", wrapped.Error())
}

func TestWrapNil(t *testing.T) {
	require.NoError(t, Wrap(nil))
	require.NoError(t, Wrapf(nil, "ignored"))
}

func TestWrapDoesNotDoubleWrap(t *testing.T) {
	err := New("first")
	require.Same(t, err, Wrap(err))
}

func TestFullStringHasFrames(t *testing.T) {
	err := Newf("bad range %d > %d", 2050, 1900)
	var sterr *Error
	require.True(t, errors.As(err, &sterr))
	full := sterr.FullString()
	require.True(t, strings.HasPrefix(full, "bad range 2050 > 1900\n"), full)
	require.Contains(t, full, "oops_test.go")
}
