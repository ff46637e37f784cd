package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/practicum/employee-model/internal/core/ports"
)

// StaffHandler exposes the roster use cases over HTTP. Errors are returned
// to Echo and rendered by the central error handler.
type StaffHandler struct {
	service ports.StaffService
	summons ports.SummonQueue
}

// NewStaffHandler builds the handler. A nil summons queue makes Summon run
// synchronously.
func NewStaffHandler(svc ports.StaffService, summons ports.SummonQueue) *StaffHandler {
	return &StaffHandler{service: svc, summons: summons}
}

// bindAndValidate binds the request body into req and runs the validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Hire handles POST /v1/staff.
//
// @Summary      Hire a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      hireRequest  true  "Staff member"
// @Success      201   {object}  staffResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/staff [post]
func (h *StaffHandler) Hire(c echo.Context) error {
	var req hireRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.service.Hire(c.Request().Context(), toHireInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toStaffResponse(view))
}

// Get handles GET /v1/staff/:id.
//
// @Summary      Get a staff member
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Staff id"
// @Success      200  {object}  staffResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/staff/{id} [get]
func (h *StaffHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStaffResponse(view))
}

// List handles GET /v1/staff.
//
// @Summary      List the roster
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        kind   query     string  false  "employee, engineer or manager"
// @Param        page   query     int     false  "Page number (1-based)"
// @Param        limit  query     int     false  "Page size (max 100)"
// @Success      200    {object}  listStaffResponse
// @Failure      400    {object}  map[string]string
// @Router       /v1/staff [get]
func (h *StaffHandler) List(c echo.Context) error {
	page, err := queryInt(c, "page")
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), ports.ListStaffInput{
		Kind:  c.QueryParam("kind"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// UpdateAge handles PATCH /v1/staff/:id/age.
//
// @Summary      Change the age of a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string      true  "Staff id"
// @Param        body  body      ageRequest  true  "New age"
// @Success      200   {object}  staffResponse
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/staff/{id}/age [patch]
func (h *StaffHandler) UpdateAge(c echo.Context) error {
	var req ageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.service.UpdateAge(c.Request().Context(), c.Param("id"), req.Age)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStaffResponse(view))
}

// UpdateSalary handles PATCH /v1/staff/:id/salary.
//
// @Summary      Change the salary of a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Staff id"
// @Param        body  body      salaryRequest  true  "New salary"
// @Success      200   {object}  staffResponse
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/staff/{id}/salary [patch]
func (h *StaffHandler) UpdateSalary(c echo.Context) error {
	var req salaryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.service.UpdateSalary(c.Request().Context(), c.Param("id"), *req.Salary)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStaffResponse(view))
}

// ChangeCurrency handles POST /v1/staff/:id/currency.
//
// @Summary      Convert a salary into another currency
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Staff id"
// @Param        body  body      currencyRequest  true  "Target currency"
// @Success      200   {object}  staffResponse
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/staff/{id}/currency [post]
func (h *StaffHandler) ChangeCurrency(c echo.Context) error {
	var req currencyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.service.ChangeCurrency(c.Request().Context(), c.Param("id"), req.Currency)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStaffResponse(view))
}

// GrantPremium handles POST /v1/staff/:id/premium.
//
// @Summary      Pay the premium of an engineer or a manager
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Staff id"
// @Success      200  {object}  premiumResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/staff/{id}/premium [post]
func (h *StaffHandler) GrantPremium(c echo.Context) error {
	result, err := h.service.GrantPremium(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPremiumResponse(result))
}

// Summon handles POST /v1/staff/:id/summon.
//
// @Summary      Call a staff member over
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Staff id"
// @Success      202  {object}  summonResponse
// @Failure      404  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /v1/staff/{id}/summon [post]
func (h *StaffHandler) Summon(c echo.Context) error {
	id := c.Param("id")
	resp := summonResponse{ID: id, Status: "on the way", SummonedBy: actor(c)}

	if h.summons == nil {
		if err := h.service.Summon(c.Request().Context(), id); err != nil {
			return err
		}
		return c.JSON(http.StatusAccepted, resp)
	}

	if _, err := h.service.Get(c.Request().Context(), id); err != nil {
		return err
	}
	if err := h.summons.Enqueue(ports.SummonJob{StaffID: id, RequestedBy: resp.SummonedBy}); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "summons are not accepted right now")
	}
	resp.Status = "queued"
	return c.JSON(http.StatusAccepted, resp)
}

// AssignEngineer handles POST /v1/managers/:id/engineers.
//
// @Summary      Add an engineer to a manager's team
// @Tags         managers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Manager id"
// @Param        body  body      assignEngineerRequest  true  "Engineer"
// @Success      200   {object}  assignEngineerResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/managers/{id}/engineers [post]
func (h *StaffHandler) AssignEngineer(c echo.Context) error {
	var req assignEngineerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	managerID := c.Param("id")
	added, err := h.service.AssignEngineer(c.Request().Context(), managerID, req.EngineerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assignEngineerResponse{
		ManagerID:  managerID,
		EngineerID: req.EngineerID,
		Added:      added,
	})
}

// ChangeManagerSalary handles POST /v1/managers/:id/salary.
//
// @Summary      Change a manager's salary with fraud screening
// @Tags         managers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Manager id"
// @Param        body  body      managerSalaryRequest  true  "New salary and optional currency"
// @Success      200   {object}  managerSalaryResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/managers/{id}/salary [post]
func (h *StaffHandler) ChangeManagerSalary(c echo.Context) error {
	var req managerSalaryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.service.ChangeManagerSalary(c.Request().Context(), c.Param("id"), *req.Salary, req.Currency)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, managerSalaryResponse{
		Staff:          toStaffResponse(&result.Staff),
		FraudSuspected: result.FraudSuspected,
	})
}

// Convert handles GET /v1/currency/convert.
//
// @Summary      Convert an amount between currencies
// @Tags         currency
// @Produce      json
// @Security     BearerAuth
// @Param        value  query     string  true  "Amount"
// @Param        from   query     string  true  "Source currency (rub, usd, eur)"
// @Param        to     query     string  true  "Target currency (rub, usd, eur)"
// @Success      200    {object}  conversionResponse
// @Failure      400    {object}  map[string]string
// @Failure      422    {object}  map[string]string
// @Router       /v1/currency/convert [get]
func (h *StaffHandler) Convert(c echo.Context) error {
	value, err := decimal.NewFromString(c.QueryParam("value"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "value must be a number")
	}

	result, err := h.service.Convert(value, c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toConversionResponse(result))
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return n, nil
}
