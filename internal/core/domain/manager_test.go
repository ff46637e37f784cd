package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineer_Standards(t *testing.T) {
	_, opt := captureLogs()

	cases := []struct {
		age  int
		want bool
	}{
		{80, false},
		{70, false},
		{EngineerAgeLimit, false},
		{60, true},
	}
	for _, tc := range cases {
		eng, err := NewEngineer(params(tc.age), opt)
		require.NoError(t, err)
		assert.Equal(t, tc.want, eng.MeetsStandards(tc.age), "age %d", tc.age)
	}
}

func TestEngineer_Construction(t *testing.T) {
	buf, opt := captureLogs()

	eng, err := NewEngineer(params(70), opt)
	require.NoError(t, err)
	assert.Equal(t, KindEngineer, eng.Kind())
	assert.Equal(t, EngineerAgeLimit, eng.AgeLimit())
	assert.Nil(t, eng.Manager())
	assertDecimal(t, "50000", eng.Salary())
	assert.Contains(t, buf.String(), "does not meet corporate standards")

	eng, err = NewEngineer(params(130), opt)
	assert.Nil(t, eng)
	assert.ErrorIs(t, err, ErrInvalidAge)
}

func TestEngineer_GivePremium(t *testing.T) {
	buf, opt := captureLogs()
	eng, err := NewEngineer(withSalary(params(testAge), 50000), opt)
	require.NoError(t, err)

	premium := eng.GivePremium()
	assertDecimal(t, "5000", premium)
	assert.Contains(t, buf.String(), "engineer Ivan Ivanov received premium 5000 rub")
}

func TestNewManager_DefaultSalary(t *testing.T) {
	_, opt := captureLogs()

	m, err := NewManager(params(testAge), opt)
	require.NoError(t, err)
	assertDecimal(t, "70000", m.Salary())
	assert.Equal(t, CurrencyRUB, m.Currency())
	assert.Equal(t, KindManager, m.Kind())
	assert.Equal(t, EmployeeAgeLimit, m.AgeLimit())
	assert.Empty(t, m.Engineers())
}

func TestNewManager_SalaryOverride(t *testing.T) {
	_, opt := captureLogs()

	m, err := NewManager(withSalary(params(testAge), 120000), opt)
	require.NoError(t, err)
	assertDecimal(t, "120000", m.Salary())

	m, err = NewManager(withSalary(params(testAge), -5), opt)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrInvalidSalary)
}

func TestManager_AddEngineer(t *testing.T) {
	_, opt := captureLogs()
	m, err := NewManager(params(testAge), opt)
	require.NoError(t, err)
	eng, err := NewEngineer(params(testAge), opt)
	require.NoError(t, err)

	assert.True(t, m.AddEngineer(eng))
	assert.True(t, m.HasEngineer(eng))
	assert.Same(t, m, eng.Manager())
	require.Len(t, m.Engineers(), 1)
	assert.Same(t, eng, m.Engineers()[0])
}

func TestManager_AddEngineerIgnoresEqualDuplicates(t *testing.T) {
	_, opt := captureLogs()
	m, err := NewManager(params(testAge), opt)
	require.NoError(t, err)
	first, err := NewEngineer(withSalary(params(40), 10), opt)
	require.NoError(t, err)
	twin, err := NewEngineer(withSalary(params(40), 99999), opt)
	require.NoError(t, err)

	assert.True(t, m.AddEngineer(first))
	assert.False(t, m.AddEngineer(first))
	assert.False(t, m.AddEngineer(twin))
	assert.False(t, m.AddEngineer(nil))

	assert.Len(t, m.Engineers(), 1)
	assert.Nil(t, twin.Manager(), "ignored engineer must keep no manager")
}

func TestManager_EngineersKeepInsertionOrder(t *testing.T) {
	_, opt := captureLogs()
	m, err := NewManager(params(testAge), opt)
	require.NoError(t, err)

	var added []*Engineer
	for _, age := range []int{30, 25, 50} {
		eng, err := NewEngineer(params(age), opt)
		require.NoError(t, err)
		require.True(t, m.AddEngineer(eng))
		added = append(added, eng)
	}

	got := m.Engineers()
	require.Len(t, got, 3)
	for i := range added {
		assert.Same(t, added[i], got[i])
	}

	got[0] = nil
	assert.NotNil(t, m.Engineers()[0], "Engineers must return a copy")
}

func TestManager_ReassignMovesBackReference(t *testing.T) {
	_, opt := captureLogs()
	m1, err := NewManager(params(40), opt)
	require.NoError(t, err)
	m2, err := NewManager(params(41), opt)
	require.NoError(t, err)
	eng, err := NewEngineer(params(30), opt)
	require.NoError(t, err)

	m1.AddEngineer(eng)
	m2.AddEngineer(eng)

	assert.Same(t, m2, eng.Manager())
	assert.True(t, m1.HasEngineer(eng))
}

func TestManager_GivePremium(t *testing.T) {
	buf, opt := captureLogs()
	m, err := NewManager(params(testAge), opt)
	require.NoError(t, err)

	assert.True(t, m.GivePremium().IsZero())

	for i, salary := range []int64{50000, 60000} {
		eng, err := NewEngineer(withSalary(params(30+i), salary), opt)
		require.NoError(t, err)
		m.AddEngineer(eng)
	}

	buf.Reset()
	granted := m.GivePremium()
	assertDecimal(t, "16500", granted)
	assertDecimal(t, "8800", m.ReportedPremium())
	assert.Contains(t, buf.String(), "received premium 8800 rub")
	assert.NotContains(t, buf.String(), "16500")
}

func TestManager_ChangeSalary(t *testing.T) {
	cases := []struct {
		name           string
		newSalary      int64
		currency       Currency
		wantSuspicious bool
		wantCurrency   Currency
	}{
		{"modest raise", 100000, "", false, CurrencyRUB},
		{"exactly fifty percent", 105000, "", false, CurrencyRUB},
		{"large raise", 110000, "", true, CurrencyRUB},
		{"cut", 10000, "", false, CurrencyRUB},
		{"same currency given", 110000, CurrencyRUB, true, CurrencyRUB},
		{"modest raise in usd", 1000, CurrencyUSD, false, CurrencyUSD},
		{"large raise in usd", 1200, CurrencyUSD, true, CurrencyUSD},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf, opt := captureLogs()
			m, err := NewManager(params(testAge), opt)
			require.NoError(t, err)

			suspicious, err := m.ChangeSalary(decimal.NewFromInt(tc.newSalary), tc.currency)
			require.NoError(t, err)

			assert.Equal(t, tc.wantSuspicious, suspicious)
			assert.True(t, decimal.NewFromInt(tc.newSalary).Equal(m.Salary()))
			assert.Equal(t, tc.wantCurrency, m.Currency())
			if tc.wantSuspicious {
				assert.Contains(t, buf.String(), "suspected corruption scheme")
			} else {
				assert.NotContains(t, buf.String(), "suspected corruption scheme")
			}
		})
	}
}

func TestManager_ChangeSalaryRejections(t *testing.T) {
	buf, opt := captureLogs()
	m, err := NewManager(params(testAge), opt)
	require.NoError(t, err)

	suspicious, err := m.ChangeSalary(decimal.NewFromInt(1000000), "usddd")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
	assert.False(t, suspicious)
	assertDecimal(t, "70000", m.Salary())
	assert.Equal(t, CurrencyRUB, m.Currency())

	suspicious, err = m.ChangeSalary(decimal.NewFromInt(-1), CurrencyUSD)
	assert.ErrorIs(t, err, ErrInvalidSalary)
	assert.False(t, suspicious)
	assertDecimal(t, "70000", m.Salary())
	assert.Equal(t, CurrencyRUB, m.Currency())

	assert.NotContains(t, buf.String(), "suspected corruption scheme")
}

func TestManager_ChangeSalaryFromZero(t *testing.T) {
	_, opt := captureLogs()
	m, err := NewManager(withSalary(params(testAge), 0), opt)
	require.NoError(t, err)

	suspicious, err := m.ChangeSalary(decimal.Zero, "")
	require.NoError(t, err)
	assert.False(t, suspicious)

	suspicious, err = m.ChangeSalary(decimal.NewFromInt(1), "")
	require.NoError(t, err)
	assert.True(t, suspicious)
}
