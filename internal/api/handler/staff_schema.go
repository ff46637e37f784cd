package handler

import (
	"time"

	"github.com/shopspring/decimal"
)

type hireRequest struct {
	Kind     string           `json:"kind"     validate:"omitempty,oneof=employee engineer manager"`
	Name     string           `json:"name"     validate:"required"`
	Surname  string           `json:"surname"  validate:"required"`
	Position string           `json:"position" validate:"required"`
	Age      int              `json:"age"`
	Salary   *decimal.Decimal `json:"salary"   swaggertype:"string"`
	Currency string           `json:"currency"`
}

type ageRequest struct {
	Age int `json:"age"`
}

type salaryRequest struct {
	Salary *decimal.Decimal `json:"salary" validate:"required" swaggertype:"string"`
}

type currencyRequest struct {
	Currency string `json:"currency" validate:"required"`
}

type assignEngineerRequest struct {
	EngineerID string `json:"engineer_id" validate:"required"`
}

type managerSalaryRequest struct {
	Salary   *decimal.Decimal `json:"salary"   validate:"required" swaggertype:"string"`
	Currency string           `json:"currency"`
}

type staffLinks struct {
	Self    string `json:"self"`
	Manager string `json:"manager,omitempty"`
}

type staffResponse struct {
	ID             string          `json:"id"`
	Kind           string          `json:"kind"`
	Name           string          `json:"name"`
	Surname        string          `json:"surname"`
	Position       string          `json:"position"`
	Age            int             `json:"age"`
	Salary         decimal.Decimal `json:"salary"      swaggertype:"string"`
	Currency       string          `json:"currency"`
	AgeLimit       int             `json:"age_limit"`
	MeetsStandards bool            `json:"meets_standards"`
	ManagerID      string          `json:"manager_id,omitempty"`
	EngineerIDs    []string        `json:"engineer_ids,omitempty"`
	HiredAt        time.Time       `json:"hired_at"`
	Links          staffLinks      `json:"_links"`
}

type listStaffResponse struct {
	Items      []staffResponse `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

type assignEngineerResponse struct {
	ManagerID  string `json:"manager_id"`
	EngineerID string `json:"engineer_id"`
	Added      bool   `json:"added"`
}

type premiumResponse struct {
	ID       string          `json:"id"`
	Kind     string          `json:"kind"`
	Reported decimal.Decimal `json:"reported" swaggertype:"string"`
	Granted  decimal.Decimal `json:"granted"  swaggertype:"string"`
	Currency string          `json:"currency"`
}

type managerSalaryResponse struct {
	Staff          staffResponse `json:"staff"`
	FraudSuspected bool          `json:"fraud_suspected"`
}

type summonResponse struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	SummonedBy string `json:"summoned_by"`
}

type conversionResponse struct {
	Value  decimal.Decimal `json:"value"  swaggertype:"string"`
	From   string          `json:"from"`
	To     string          `json:"to"`
	Result decimal.Decimal `json:"result" swaggertype:"string"`
}
