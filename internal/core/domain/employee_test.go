package domain

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testName     = "Ivan"
	testSurname  = "Ivanov"
	testPosition = "engineer"
	testAge      = 35
)

func captureLogs() (*bytes.Buffer, Option) {
	buf := &bytes.Buffer{}
	return buf, WithLogger(zerolog.New(buf))
}

func params(age int) Params {
	return Params{Name: testName, Surname: testSurname, Position: testPosition, Age: age}
}

func withSalary(p Params, salary int64) Params {
	p.Salary = decimal.NewNullDecimal(decimal.NewFromInt(salary))
	return p
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	w := decimal.RequireFromString(want)
	assert.Truef(t, w.Equal(got), "want %s, got %s", w, got)
}

func TestNewEmployee_Defaults(t *testing.T) {
	_, opt := captureLogs()

	e, err := NewEmployee(params(testAge), opt)
	require.NoError(t, err)
	require.NotNil(t, e)

	assert.Equal(t, testName, e.Name())
	assert.Equal(t, testSurname, e.Surname())
	assert.Equal(t, testPosition, e.Position())
	assert.Equal(t, testAge, e.Age())
	assertDecimal(t, "50000", e.Salary())
	assert.Equal(t, CurrencyRUB, e.Currency())
	assert.Equal(t, KindEmployee, e.Kind())
	assert.Equal(t, EmployeeAgeLimit, e.AgeLimit())
}

func TestNewEmployee_ExplicitSalaryAndCurrency(t *testing.T) {
	_, opt := captureLogs()
	p := withSalary(params(testAge), 100)
	p.Currency = CurrencyUSD

	e, err := NewEmployee(p, opt)
	require.NoError(t, err)

	assertDecimal(t, "100", e.Salary())
	assert.Equal(t, CurrencyUSD, e.Currency())
}

func TestNewEmployee_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		params  Params
		wantErr error
		wantLog string
	}{
		{"age above range", params(130), ErrInvalidAge, "incorrect age, object not created"},
		{"age at upper bound", params(MaxAge), ErrInvalidAge, "incorrect age, object not created"},
		{"age below range", params(10), ErrInvalidAge, "incorrect age, object not created"},
		{"age just below minimum", params(MinAge - 1), ErrInvalidAge, "incorrect age, object not created"},
		{"negative salary", withSalary(params(30), -90), ErrInvalidSalary, "incorrect salary, object not created"},
		{"negative salary wins over bad age", withSalary(params(130), -1), ErrInvalidSalary, "incorrect salary"},
		{"unknown currency", Params{Name: testName, Age: 30, Currency: "usddd"}, ErrUnknownCurrency, "invalid currency name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf, opt := captureLogs()

			e, err := NewEmployee(tc.params, opt)
			assert.Nil(t, e)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Contains(t, buf.String(), tc.wantLog)
		})
	}
}

func TestNewEmployee_AgeBoundsAccepted(t *testing.T) {
	for _, age := range []int{MinAge, MaxAge - 1} {
		_, opt := captureLogs()
		e, err := NewEmployee(params(age), opt)
		require.NoError(t, err, "age %d", age)
		assert.Equal(t, age, e.Age())
	}
}

func TestNewEmployee_ZeroSalaryAccepted(t *testing.T) {
	_, opt := captureLogs()
	e, err := NewEmployee(withSalary(params(30), 0), opt)
	require.NoError(t, err)
	assert.True(t, e.Salary().IsZero())
}

func TestNewEmployee_StandardsWarningIsAdvisory(t *testing.T) {
	buf, opt := captureLogs()

	e, err := NewEmployee(params(80), opt)
	require.NoError(t, err)
	assert.Equal(t, 80, e.Age())
	assert.Contains(t, buf.String(), "does not meet corporate standards")

	assert.True(t, e.MeetsStandards(70))
	assert.False(t, e.MeetsStandards(80))
	assert.False(t, e.MeetsStandards(EmployeeAgeLimit))
}

func TestNewEmployee_NoWarningWithinStandards(t *testing.T) {
	buf, opt := captureLogs()

	_, err := NewEmployee(params(70), opt)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestEmployee_SetAge(t *testing.T) {
	buf, opt := captureLogs()
	e, err := NewEmployee(params(30), opt)
	require.NoError(t, err)

	assert.ErrorIs(t, e.SetAge(120), ErrInvalidAge)
	assert.Equal(t, 30, e.Age())
	assert.Contains(t, buf.String(), "incorrect age")

	assert.ErrorIs(t, e.SetAge(17), ErrInvalidAge)
	assert.Equal(t, 30, e.Age())

	require.NoError(t, e.SetAge(40))
	assert.Equal(t, 40, e.Age())

	buf.Reset()
	require.NoError(t, e.SetAge(80))
	assert.Equal(t, 80, e.Age())
	assert.Contains(t, buf.String(), "age does not meet corporate standards")
}

func TestEmployee_SetSalary(t *testing.T) {
	_, opt := captureLogs()
	e, err := NewEmployee(params(30), opt)
	require.NoError(t, err)

	assert.ErrorIs(t, e.SetSalary(decimal.NewFromInt(-1)), ErrInvalidSalary)
	assertDecimal(t, "50000", e.Salary())

	require.NoError(t, e.SetSalary(decimal.RequireFromString("1234.5")))
	assertDecimal(t, "1234.5", e.Salary())
}

func TestEmployee_ChangeCurrency(t *testing.T) {
	buf, opt := captureLogs()
	e, err := NewEmployee(withSalary(params(testAge), 90000), opt)
	require.NoError(t, err)

	require.NoError(t, e.ChangeCurrency(CurrencyUSD))
	want, err := ConvertCurrency(decimal.NewFromInt(90000), CurrencyRUB, CurrencyUSD)
	require.NoError(t, err)
	assert.True(t, want.Equal(e.Salary()))
	assertDecimal(t, "1000", e.Salary())
	assert.Equal(t, CurrencyUSD, e.Currency())

	err = e.ChangeCurrency("usddd")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
	assert.True(t, want.Equal(e.Salary()))
	assert.Equal(t, CurrencyUSD, e.Currency())
	assert.Contains(t, buf.String(), "invalid currency name")
}

func TestEmployee_ChangeCurrencySameIsNoop(t *testing.T) {
	_, opt := captureLogs()
	e, err := NewEmployee(withSalary(params(testAge), 777), opt)
	require.NoError(t, err)

	require.NoError(t, e.ChangeCurrency(CurrencyRUB))
	assertDecimal(t, "777", e.Salary())
	assert.Equal(t, CurrencyRUB, e.Currency())
}

func TestEmployee_Equal(t *testing.T) {
	_, opt := captureLogs()

	e1, err := NewEmployee(withSalary(params(30), 100), opt)
	require.NoError(t, err)
	e2, err := NewEmployee(withSalary(params(30), 90), opt)
	require.NoError(t, err)
	assert.True(t, e1.Equal(e2))

	require.NoError(t, e2.ChangeCurrency(CurrencyEUR))
	assert.True(t, e1.Equal(e2), "currency must not affect equality")

	e3, err := NewEmployee(withSalary(params(31), 90), opt)
	require.NoError(t, err)
	assert.False(t, e1.Equal(e3))

	assert.False(t, e1.Equal(10))
	assert.False(t, e1.Equal("Ivan Ivanov"))
	assert.False(t, e1.Equal(nil))
	assert.False(t, e1.Equal((*Engineer)(nil)))
	assert.False(t, e1.Equal((*Manager)(nil)))

	var missing *Employee
	assert.False(t, missing.Equal(e1))
}

func TestEmployee_EqualAcrossKinds(t *testing.T) {
	_, opt := captureLogs()

	e, err := NewEmployee(params(30), opt)
	require.NoError(t, err)
	eng, err := NewEngineer(params(30), opt)
	require.NoError(t, err)
	mgr, err := NewManager(params(30), opt)
	require.NoError(t, err)

	assert.True(t, e.Equal(eng))
	assert.True(t, eng.Equal(e))
	assert.True(t, mgr.Equal(eng))
}

func TestEmployee_String(t *testing.T) {
	_, opt := captureLogs()
	e, err := NewEmployee(params(testAge), opt)
	require.NoError(t, err)

	assert.Equal(t, "Ivan Ivanov", e.String())
}

func TestEmployee_Summon(t *testing.T) {
	buf, opt := captureLogs()
	e, err := NewEmployee(params(testAge), opt)
	require.NoError(t, err)

	e.Summon()
	assert.Contains(t, buf.String(), "employee Ivan is on the way")
}
