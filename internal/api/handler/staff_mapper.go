package handler

import (
	"github.com/shopspring/decimal"

	"github.com/practicum/employee-model/internal/core/domain"
	"github.com/practicum/employee-model/internal/core/ports"
)

// --- Request → Service input ---

func toHireInput(req hireRequest) ports.HireInput {
	in := ports.HireInput{
		Kind:     domain.Kind(req.Kind),
		Name:     req.Name,
		Surname:  req.Surname,
		Position: req.Position,
		Age:      req.Age,
		Currency: req.Currency,
	}
	if req.Salary != nil {
		in.Salary = decimal.NewNullDecimal(*req.Salary)
	}
	return in
}

// --- Service result → HTTP response ---

func toStaffResponse(v *ports.StaffView) staffResponse {
	resp := staffResponse{
		ID:             v.ID,
		Kind:           string(v.Kind),
		Name:           v.Name,
		Surname:        v.Surname,
		Position:       v.Position,
		Age:            v.Age,
		Salary:         v.Salary,
		Currency:       string(v.Currency),
		AgeLimit:       v.AgeLimit,
		MeetsStandards: v.MeetsStandards,
		ManagerID:      v.ManagerID,
		EngineerIDs:    v.EngineerIDs,
		HiredAt:        v.HiredAt.UTC(),
		Links:          staffLinks{Self: "/v1/staff/" + v.ID},
	}
	if v.ManagerID != "" {
		resp.Links.Manager = "/v1/staff/" + v.ManagerID
	}
	return resp
}

func toListResponse(r *ports.ListStaffResult) listStaffResponse {
	items := make([]staffResponse, 0, len(r.Items))
	for i := range r.Items {
		items = append(items, toStaffResponse(&r.Items[i]))
	}
	return listStaffResponse{
		Items:      items,
		Total:      r.Total,
		Page:       r.Page,
		Limit:      r.Limit,
		TotalPages: r.TotalPages,
	}
}

func toPremiumResponse(r *ports.PremiumResult) premiumResponse {
	return premiumResponse{
		ID:       r.ID,
		Kind:     string(r.Kind),
		Reported: r.Reported,
		Granted:  r.Granted,
		Currency: string(r.Currency),
	}
}

func toConversionResponse(r *ports.ConversionResult) conversionResponse {
	return conversionResponse{
		Value:  r.Value,
		From:   string(r.From),
		To:     string(r.To),
		Result: r.Result,
	}
}
