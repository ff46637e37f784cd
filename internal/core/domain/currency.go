package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is the ISO-like lowercase code a salary is denominated in.
type Currency string

const (
	CurrencyRUB Currency = "rub"
	CurrencyUSD Currency = "usd"
	CurrencyEUR Currency = "eur"
)

var ErrUnknownCurrency = errors.New("unknown currency")

// exchangeRates holds the value of one unit of each currency expressed in rubles.
// The table is fixed; there is no live rate source.
var exchangeRates = map[Currency]decimal.Decimal{
	CurrencyRUB: decimal.NewFromInt(1),
	CurrencyUSD: decimal.NewFromInt(90),
	CurrencyEUR: decimal.NewFromInt(100),
}

// Currencies returns the supported currencies in a stable order.
func Currencies() []Currency {
	return []Currency{CurrencyRUB, CurrencyUSD, CurrencyEUR}
}

// Valid reports whether c is present in the rate table.
func (c Currency) Valid() bool {
	_, ok := exchangeRates[c]
	return ok
}

// ParseCurrency normalises raw (trim + lowercase) and checks it against the rate table.
func ParseCurrency(raw string) (Currency, error) {
	c := Currency(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, raw)
	}
	return c, nil
}

// Rate returns the ruble value of one unit of c.
func Rate(c Currency) (decimal.Decimal, error) {
	r, ok := exchangeRates[c]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownCurrency, c)
	}
	return r, nil
}

// ConvertCurrency converts value from one currency to another using the fixed rate table:
// value * rate[from] / rate[to]. It touches no employee state.
func ConvertCurrency(value decimal.Decimal, from, to Currency) (decimal.Decimal, error) {
	fromRate, err := Rate(from)
	if err != nil {
		return decimal.Zero, err
	}
	toRate, err := Rate(to)
	if err != nil {
		return decimal.Zero, err
	}
	return value.Mul(fromRate).Div(toRate), nil
}
