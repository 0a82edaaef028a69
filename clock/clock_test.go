//go:build testing

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFixed(t *testing.T) {
	c := Fixed(time.Date(2024, time.June, 3, 23, 30, 0, 0, time.FixedZone("X", -3*3600)))
	require.Equal(t, 2024, Year(c))
	require.Equal(t, time.June, c.UTCNow().Month())
	require.Equal(t, 4, c.UTCNow().Day())
}

func TestOverride(t *testing.T) {
	defer ResetUTCNowOverride()

	require.False(t, IsSetUTCNowOverride())
	MustSetUTCNowOverride(time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC))
	require.True(t, IsSetUTCNowOverride())
	require.Equal(t, 1999, Year(System))

	ResetUTCNowOverride()
	require.NotEqual(t, 1999, Year(System))
}

func TestOverrideRequiresUTC(t *testing.T) {
	require.Panics(t, func() {
		MustSetUTCNowOverride(time.Date(2020, time.May, 1, 0, 0, 0, 0, time.FixedZone("Y", 3600)))
	})
}
