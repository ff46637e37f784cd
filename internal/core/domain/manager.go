package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultManagerSalary is used when the caller does not supply a salary.
var DefaultManagerSalary = decimal.NewFromInt(70000)

var (
	// managerReportedRate is the share of the team payroll announced as the premium.
	managerReportedRate = decimal.New(8, -2)
	// managerGrantedRate is the share of the team payroll actually returned.
	managerGrantedRate = decimal.New(15, -2)
	// fraudRaiseThreshold is the relative salary increase above which a change looks suspicious.
	fraudRaiseThreshold = decimal.New(5, -1)
)

// Manager is an employee leading a team of engineers.
type Manager struct {
	Employee
	engineers []*Engineer
}

// NewManager builds a manager. The default salary is 70000; a caller supplied
// salary overrides it and goes through the usual validation.
func NewManager(p Params, opts ...Option) (*Manager, error) {
	e, err := build(KindManager, EmployeeAgeLimit, DefaultManagerSalary, p, opts)
	if err != nil {
		return nil, err
	}
	return &Manager{Employee: e}, nil
}

// AddEngineer appends engineer to the team and points its back-reference at m.
// Engineers equal to an existing member are ignored. Reports whether it was added.
func (m *Manager) AddEngineer(engineer *Engineer) bool {
	if engineer == nil || m.HasEngineer(engineer) {
		return false
	}
	m.engineers = append(m.engineers, engineer)
	engineer.manager = m
	return true
}

// HasEngineer reports whether an engineer equal to engineer is on the team.
func (m *Manager) HasEngineer(engineer *Engineer) bool {
	for _, member := range m.engineers {
		if member.Equal(engineer) {
			return true
		}
	}
	return false
}

// Engineers returns the team in insertion order.
func (m *Manager) Engineers() []*Engineer {
	out := make([]*Engineer, len(m.engineers))
	copy(out, m.engineers)
	return out
}

func (m *Manager) teamPayroll() decimal.Decimal {
	total := decimal.Zero
	for _, e := range m.engineers {
		total = total.Add(e.salary)
	}
	return total
}

// ReportedPremium is the amount GivePremium announces: 8% of the team payroll.
func (m *Manager) ReportedPremium() decimal.Decimal {
	return m.teamPayroll().Mul(managerReportedRate)
}

// GivePremium announces 8% of the team payroll but returns 15% of it.
// Salaries are summed as raw figures whatever currency each engineer is paid in.
func (m *Manager) GivePremium() decimal.Decimal {
	reported := m.ReportedPremium()
	m.log.Info().
		Str("staff", m.String()).
		Str("premium", reported.String()).
		Str("currency", string(m.currency)).
		Msgf("%s %s %s received premium %s %s", m.position, m.name, m.surname, reported, m.currency)
	return m.teamPayroll().Mul(managerGrantedRate)
}

// ChangeSalary sets a new salary, optionally switching the currency (empty keeps
// the current one). The old salary is converted into the new currency and a raise
// above 50% is flagged as suspicious. The change itself is never blocked.
func (m *Manager) ChangeSalary(newSalary decimal.Decimal, currency Currency) (bool, error) {
	target := m.currency
	if currency != "" {
		if !currency.Valid() {
			m.log.Warn().Str("staff", m.String()).Str("currency", string(currency)).Msg("invalid currency name")
			return false, fmt.Errorf("change salary: %w: %q", ErrUnknownCurrency, currency)
		}
		target = currency
	}

	old := m.salary
	if err := m.SetSalary(newSalary); err != nil {
		return false, fmt.Errorf("change salary: %w", err)
	}

	if target != m.currency {
		// both codes are known, conversion cannot fail
		old, _ = ConvertCurrency(old, m.currency, target)
		m.currency = target
	}

	suspicious := raiseExceeds(old, newSalary, fraudRaiseThreshold)
	if suspicious {
		m.log.Warn().
			Str("staff", m.String()).
			Str("old_salary", old.String()).
			Str("new_salary", newSalary.String()).
			Str("currency", string(m.currency)).
			Msg("suspected corruption scheme")
	}
	return suspicious, nil
}

// raiseExceeds reports whether (next-prev)/prev > threshold. A zero prev is
// treated as an unbounded raise when next is positive.
func raiseExceeds(prev, next, threshold decimal.Decimal) bool {
	if prev.IsZero() {
		return next.IsPositive()
	}
	return next.Sub(prev).Div(prev).GreaterThan(threshold)
}
