package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertCurrency(t *testing.T) {
	cases := []struct {
		value string
		from  Currency
		to    Currency
		want  string
	}{
		{"90", CurrencyRUB, CurrencyUSD, "1"},
		{"1", CurrencyRUB, CurrencyRUB, "1"},
		{"1", CurrencyUSD, CurrencyRUB, "90"},
		{"9", CurrencyEUR, CurrencyUSD, "10"},
		{"90000", CurrencyRUB, CurrencyUSD, "1000"},
		{"250", CurrencyEUR, CurrencyRUB, "25000"},
		{"0", CurrencyUSD, CurrencyEUR, "0"},
	}

	for _, tc := range cases {
		got, err := ConvertCurrency(decimal.RequireFromString(tc.value), tc.from, tc.to)
		require.NoError(t, err)
		assertDecimal(t, tc.want, got)
	}
}

func TestConvertCurrency_UnknownCode(t *testing.T) {
	_, err := ConvertCurrency(decimal.NewFromInt(1), CurrencyRUB, "usddd")
	assert.ErrorIs(t, err, ErrUnknownCurrency)

	_, err = ConvertCurrency(decimal.NewFromInt(1), "gbp", CurrencyRUB)
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestParseCurrency(t *testing.T) {
	c, err := ParseCurrency(" USD ")
	require.NoError(t, err)
	assert.Equal(t, CurrencyUSD, c)

	_, err = ParseCurrency("")
	assert.ErrorIs(t, err, ErrUnknownCurrency)

	_, err = ParseCurrency("usddd")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestCurrencies(t *testing.T) {
	for _, c := range Currencies() {
		assert.True(t, c.Valid(), c)
		_, err := Rate(c)
		assert.NoError(t, err)
	}
	assert.False(t, Currency("gbp").Valid())
}
