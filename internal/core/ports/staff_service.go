package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/practicum/employee-model/internal/core/domain"
)

// HireInput carries everything needed to add a staff member to the roster.
type HireInput struct {
	Kind     domain.Kind
	Name     string
	Surname  string
	Position string
	Age      int
	Salary   decimal.NullDecimal // optional: the kind's default applies when invalid
	Currency string              // optional: rub when empty
}

// StaffView is a read-only snapshot of a roster entry.
type StaffView struct {
	ID             string
	Kind           domain.Kind
	Name           string
	Surname        string
	Position       string
	Age            int
	Salary         decimal.Decimal
	Currency       domain.Currency
	AgeLimit       int
	MeetsStandards bool
	// ManagerID is set for engineers attached to a manager.
	ManagerID string
	// EngineerIDs lists a manager's team in insertion order.
	EngineerIDs []string
	HiredAt     time.Time
}

// ListStaffInput carries all parameters for the list use case.
type ListStaffInput struct {
	Kind  string
	Page  int
	Limit int
}

// ListStaffResult is returned by List.
type ListStaffResult struct {
	Items      []StaffView
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// PremiumResult describes a premium payout. Reported is what was announced,
// Granted what the call returned; for managers they differ.
type PremiumResult struct {
	ID       string
	Kind     domain.Kind
	Reported decimal.Decimal
	Granted  decimal.Decimal
	Currency domain.Currency
}

// SalaryChangeResult is returned by ChangeManagerSalary.
type SalaryChangeResult struct {
	Staff          StaffView
	FraudSuspected bool
}

// ConversionResult is returned by Convert.
type ConversionResult struct {
	Value  decimal.Decimal
	From   domain.Currency
	To     domain.Currency
	Result decimal.Decimal
}

// StaffService defines the roster use cases.
type StaffService interface {
	Hire(ctx context.Context, in HireInput) (*StaffView, error)
	Get(ctx context.Context, id string) (*StaffView, error)
	List(ctx context.Context, in ListStaffInput) (*ListStaffResult, error)
	UpdateAge(ctx context.Context, id string, age int) (*StaffView, error)
	UpdateSalary(ctx context.Context, id string, salary decimal.Decimal) (*StaffView, error)
	ChangeCurrency(ctx context.Context, id, currency string) (*StaffView, error)
	AssignEngineer(ctx context.Context, managerID, engineerID string) (bool, error)
	GrantPremium(ctx context.Context, id string) (*PremiumResult, error)
	ChangeManagerSalary(ctx context.Context, id string, salary decimal.Decimal, currency string) (*SalaryChangeResult, error)
	Summon(ctx context.Context, id string) error
	Convert(value decimal.Decimal, from, to string) (*ConversionResult, error)
}

// SummonJob asks for a staff member to be called over asynchronously.
type SummonJob struct {
	StaffID     string
	RequestedBy string
}

// SummonQueue accepts summon jobs for background processing. Enqueue fails
// once the queue is shutting down.
type SummonQueue interface {
	Enqueue(job SummonJob) error
}
