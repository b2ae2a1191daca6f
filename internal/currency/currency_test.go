package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$1234.50", Format("USD", dec("1234.5")))
	assert.Equal(t, "€0.99", Format("EUR", dec("0.99")))

	// Zero-decimal currencies round to whole units.
	assert.Equal(t, "¥1500", Format("JPY", dec("1500")))
	assert.Equal(t, "₩1000", Format("KRW", dec("999.6")))
}

func TestFormat_UnknownCode(t *testing.T) {
	assert.Equal(t, "XYZ 10.00", Format("XYZ", dec("10")))
}

func TestLookup(t *testing.T) {
	info, ok := Lookup("GBP")
	require.True(t, ok)
	assert.Equal(t, "£", info.Symbol)
	assert.Equal(t, "British Pound", info.Name)
	assert.EqualValues(t, 2, info.Decimals)

	_, ok = Lookup("XYZ")
	assert.False(t, ok)
}

func TestCodes(t *testing.T) {
	codes := Codes()
	assert.Len(t, codes, 12)
	assert.Contains(t, codes, Default)
	assert.True(t, sortedStrings(codes))
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}
