package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	require.Equal(t, "19.90", Format(1990))
	require.Equal(t, "0.00", Format(0))
	require.Equal(t, "0.05", Format(5))
	require.Equal(t, "100.00", Format(10000))
	require.Equal(t, "-4.50", Format(-450))
}
