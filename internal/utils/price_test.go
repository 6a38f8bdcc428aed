package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriceCents(t *testing.T) {
	t.Run("CommaDecimal", func(t *testing.T) {
		cents, err := ParsePriceCents("1500,00")
		assert.NoError(t, err)
		assert.Equal(t, int64(150000), cents)
	})

	t.Run("DotDecimal", func(t *testing.T) {
		cents, err := ParsePriceCents("99.90")
		assert.NoError(t, err)
		assert.Equal(t, int64(9990), cents)
	})

	t.Run("Whitespace", func(t *testing.T) {
		cents, err := ParsePriceCents("  250,50 ")
		assert.NoError(t, err)
		assert.Equal(t, int64(25050), cents)
	})

	t.Run("Rounding", func(t *testing.T) {
		cents, err := ParsePriceCents("0,015")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), cents)
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, text := range []string{"", "abc", "0", "0,00", "-5,00", "NaN", "Inf"} {
			_, err := ParsePriceCents(text)
			assert.Error(t, err, "expected error for %q", text)
		}
	})
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "1500,00", FormatPrice(150000))
	assert.Equal(t, "0,05", FormatPrice(5))
	assert.Equal(t, "99,90", FormatPrice(9990))
}
