package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Kind identifies which flavour of staff member an Employee value belongs to.
type Kind string

const (
	KindEmployee Kind = "employee"
	KindEngineer Kind = "engineer"
	KindManager  Kind = "manager"
)

const (
	// MinAge and MaxAge bound the accepted age range: [MinAge, MaxAge).
	MinAge = 18
	MaxAge = 120

	// EmployeeAgeLimit is the corporate standards threshold for employees and managers.
	EmployeeAgeLimit = 75
)

var (
	ErrInvalidAge    = errors.New("employee: invalid age")
	ErrInvalidSalary = errors.New("employee: invalid salary")
)

// DefaultEmployeeSalary is used when the caller does not supply a salary.
var DefaultEmployeeSalary = decimal.NewFromInt(50000)

// Params carries the construction inputs shared by every staff kind.
type Params struct {
	Name     string
	Surname  string
	Position string
	Age      int
	// Salary is optional; an invalid NullDecimal selects the kind's default.
	Salary decimal.NullDecimal
	// Currency defaults to rub when empty.
	Currency Currency
}

// Option tweaks how a staff member is constructed.
type Option func(*options)

type options struct {
	log zerolog.Logger
}

// WithLogger routes the diagnostics of the constructed object to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// Staff is implemented by *Employee, *Engineer and *Manager.
type Staff interface {
	Profile() *Employee
	String() string
}

// Employee is the base staff member. Fields are only reachable through
// accessors and validating setters.
type Employee struct {
	name     string
	surname  string
	position string
	age      int
	salary   decimal.Decimal
	currency Currency
	ageLimit int
	kind     Kind
	log      zerolog.Logger
}

// NewEmployee builds a plain employee. It returns a nil employee and an error
// when the salary is negative, the age is outside [18, 120) or the currency is unknown.
func NewEmployee(p Params, opts ...Option) (*Employee, error) {
	e, err := build(KindEmployee, EmployeeAgeLimit, DefaultEmployeeSalary, p, opts)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func build(kind Kind, ageLimit int, defaultSalary decimal.Decimal, p Params, opts []Option) (Employee, error) {
	o := options{log: log.Logger}
	for _, opt := range opts {
		opt(&o)
	}

	salary := defaultSalary
	if p.Salary.Valid {
		salary = p.Salary.Decimal
	}
	if salary.IsNegative() {
		o.log.Warn().Str("salary", salary.String()).Msg("incorrect salary, object not created")
		return Employee{}, ErrInvalidSalary
	}

	if !validAge(p.Age) {
		o.log.Warn().Int("age", p.Age).Msg("incorrect age, object not created")
		return Employee{}, ErrInvalidAge
	}

	currency := p.Currency
	if currency == "" {
		currency = CurrencyRUB
	}
	if !currency.Valid() {
		o.log.Warn().Str("currency", string(currency)).Msg("invalid currency name, object not created")
		return Employee{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, currency)
	}

	e := Employee{
		name:     p.Name,
		surname:  p.Surname,
		position: p.Position,
		age:      p.Age,
		salary:   salary,
		currency: currency,
		ageLimit: ageLimit,
		kind:     kind,
		log:      o.log,
	}

	if !e.MeetsStandards(p.Age) {
		e.log.Warn().Str("staff", e.String()).Int("age", p.Age).Msg("employee age does not meet corporate standards")
	}

	return e, nil
}

func validAge(age int) bool {
	return age >= MinAge && age < MaxAge
}

func (e *Employee) Profile() *Employee { return e }

func (e *Employee) Name() string            { return e.name }
func (e *Employee) Surname() string         { return e.surname }
func (e *Employee) Position() string        { return e.position }
func (e *Employee) Age() int                { return e.age }
func (e *Employee) Salary() decimal.Decimal { return e.salary }
func (e *Employee) Currency() Currency      { return e.currency }
func (e *Employee) Kind() Kind              { return e.kind }

// AgeLimit is the standards threshold of this employee's kind.
func (e *Employee) AgeLimit() int           { return e.ageLimit }

// MeetsStandards reports whether age is strictly below the kind's threshold.
func (e *Employee) MeetsStandards(age int) bool {
	return age < e.ageLimit
}

// SetAge replaces the age. Values outside [18, 120) leave the age untouched.
func (e *Employee) SetAge(age int) error {
	if !e.MeetsStandards(age) {
		e.log.Warn().Str("staff", e.String()).Int("age", age).Msg("age does not meet corporate standards")
	}
	if !validAge(age) {
		e.log.Warn().Str("staff", e.String()).Int("age", age).Msg("incorrect age")
		return ErrInvalidAge
	}
	e.age = age
	return nil
}

// SetSalary replaces the salary. Negative values leave the salary untouched.
func (e *Employee) SetSalary(salary decimal.Decimal) error {
	if salary.IsNegative() {
		e.log.Warn().Str("staff", e.String()).Str("salary", salary.String()).Msg("incorrect salary")
		return ErrInvalidSalary
	}
	e.salary = salary
	return nil
}

// ChangeCurrency converts the salary into next and switches the currency.
// Either both change or neither does.
func (e *Employee) ChangeCurrency(next Currency) error {
	if next == e.currency {
		return nil
	}

	converted, err := ConvertCurrency(e.salary, e.currency, next)
	if err != nil {
		e.log.Warn().Err(err).Str("staff", e.String()).Str("currency", string(next)).Msg("invalid currency name")
		return fmt.Errorf("change currency: %w", err)
	}

	e.salary = converted
	e.currency = next
	return nil
}

// Equal reports whether other is a staff member with the same name, surname,
// age and position. Salary and currency are ignored.
func (e *Employee) Equal(other any) bool {
	o := profileOf(other)
	if e == nil || o == nil {
		return false
	}
	return e.name == o.name &&
		e.surname == o.surname &&
		e.age == o.age &&
		e.position == o.position
}

func profileOf(v any) *Employee {
	switch m := v.(type) {
	case *Employee:
		return m
	case *Engineer:
		if m != nil {
			return &m.Employee
		}
	case *Manager:
		if m != nil {
			return &m.Employee
		}
	}
	return nil
}

func (e *Employee) String() string {
	return e.name + " " + e.surname
}

// Summon notifies that the employee has been called for.
func (e *Employee) Summon() {
	e.log.Info().Str("staff", e.String()).Msgf("employee %s is on the way", e.name)
}

// ParseKind normalises raw and checks it is one of the known kinds. Empty
// selects KindEmployee.
func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	switch k {
	case "":
		return KindEmployee, nil
	case KindEmployee, KindEngineer, KindManager:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, raw)
	}
}
