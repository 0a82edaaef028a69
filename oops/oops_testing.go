//go:build testing

package oops

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireNoError is require.NoError that prints the stack of an *oops.Error
func RequireNoError(t *testing.T, err error, msgAndArgs ...any) {
	if err == nil {
		return
	}

	t.Helper()
	sterr, ok := err.(*Error)
	if !ok {
		require.Fail(t, fmt.Sprintf("Received unexpected error:\n%+v", err), msgAndArgs...)
		return
	}
	require.Fail(t, fmt.Sprintf("Received unexpected error:\n%s", sterr.FullString()), msgAndArgs...)
}
