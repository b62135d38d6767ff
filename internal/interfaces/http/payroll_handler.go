package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jalveda/ops-api/internal/application/dto"
	"github.com/jalveda/ops-api/internal/application/payroll"
	"github.com/jalveda/ops-api/internal/domain"
)

// PayrollHandler handles employees and monthly payroll runs (hr only).
type PayrollHandler struct {
	uc *payroll.PayrollUseCase
}

// NewPayrollHandler builds the handler.
func NewPayrollHandler(uc *payroll.PayrollUseCase) *PayrollHandler {
	return &PayrollHandler{uc: uc}
}

// CreateEmployee godoc
// @Summary      Register an employee
// @Tags         payroll
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Employee data"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *PayrollHandler) CreateEmployee(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Code == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code and name are required"})
	}
	out, err := h.uc.CreateEmployee(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "employee code already exists"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "daily_wage must be positive"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateEmployee godoc
// @Summary      Update an employee
// @Tags         payroll
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Employee ID"
// @Param        body  body  dto.UpdateEmployeeRequest  true  "Fields to update"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *PayrollHandler) UpdateEmployee(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.UpdateEmployee(c.UserContext(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "daily_wage must be positive"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "employee not found"})
	}
	return c.JSON(out)
}

// ListEmployees godoc
// @Summary      List employees
// @Tags         payroll
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.EmployeeResponse
// @Router       /api/employees [get]
func (h *PayrollHandler) ListEmployees(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.ListEmployees(c.UserContext(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RunMonth godoc
// @Summary      Finalize a payroll month
// @Description  The whole run is one transaction: a duplicate month for any
// @Description  employee aborts everything.
// @Tags         payroll
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RunPayrollRequest  true  "year, month, lines"
// @Success      201   {object}  dto.RunPayrollResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/payroll/runs [post]
func (h *PayrollHandler) RunMonth(c *fiber.Ctx) error {
	var in dto.RunPayrollRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Year == 0 || in.Month < 1 || in.Month > 12 || len(in.Lines) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year, month and at least one line are required"})
	}
	out, err := h.uc.RunMonth(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "employee in run not found"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_FINALIZED", Message: "month already finalized for an employee in the run"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMonth godoc
// @Summary      List finalized pay lines of a month
// @Tags         payroll
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  true  "Year"
// @Param        month  query  int  true  "Month (1-12)"
// @Success      200    {array}  dto.PayrollEntryResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/payroll/runs [get]
func (h *PayrollHandler) ListMonth(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)
	if year == 0 || month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year and month query params are required"})
	}
	out, err := h.uc.ListMonth(c.UserContext(), year, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
