package payments

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		amount string
		want   int64
	}{
		{"90", 9000},
		{"35.50", 3550},
		{"10.005", 1001}, // pola ide naviše
		{"10.004", 1000},
		{"0", 0},
	}
	for _, tc := range cases {
		got := MinorUnits(decimal.RequireFromString(tc.amount))
		require.Equal(t, tc.want, got, "amount %s", tc.amount)
	}
}

func TestMetadataRejectsOversizedValue(t *testing.T) {
	md := Metadata{}
	err := md.Set("items", strings.Repeat("x", MaxMetadataValueLen+1))
	require.Error(t, err)
	require.Empty(t, md.Get("items"))
}

func TestMetadataSetAndGet(t *testing.T) {
	md := Metadata{}
	require.NoError(t, md.Set("orderId", "order_123"))
	require.Equal(t, "order_123", md.Get("orderId"))
	require.Empty(t, md.Get("nepostojeci"))
}
