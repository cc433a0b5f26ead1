package currency

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatRupiah(t *testing.T) {
	require.Equal(t, "Rp 0", FormatRupiah(0))
	require.Equal(t, "Rp 500", FormatRupiah(500))
	require.Equal(t, "Rp 18.000", FormatRupiah(18000))
	require.Equal(t, "Rp 1.250.000", FormatRupiah(1250000))
}
