package domain

import "github.com/shopspring/decimal"

// EngineerAgeLimit is the corporate standards threshold for engineers.
const EngineerAgeLimit = 65

// engineerPremiumRate is the share of own salary paid as a premium.
var engineerPremiumRate = decimal.New(10, -2)

// Engineer is an employee that can be attached to at most one manager.
type Engineer struct {
	Employee
	manager *Manager
}

// NewEngineer builds an engineer with the same validation as NewEmployee.
// The manager back-reference starts unset.
func NewEngineer(p Params, opts ...Option) (*Engineer, error) {
	e, err := build(KindEngineer, EngineerAgeLimit, DefaultEmployeeSalary, p, opts)
	if err != nil {
		return nil, err
	}
	return &Engineer{Employee: e}, nil
}

// Manager returns the manager this engineer was added to, or nil.
func (e *Engineer) Manager() *Manager {
	return e.manager
}

// GivePremium reports and returns 10% of the engineer's salary.
func (e *Engineer) GivePremium() decimal.Decimal {
	premium := e.salary.Mul(engineerPremiumRate)
	e.log.Info().
		Str("staff", e.String()).
		Str("premium", premium.String()).
		Str("currency", string(e.currency)).
		Msgf("%s %s %s received premium %s %s", e.position, e.name, e.surname, premium, e.currency)
	return premium
}
