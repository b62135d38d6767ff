package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jalveda/ops-api/internal/application/dto"
	"github.com/jalveda/ops-api/internal/application/rules"
	"github.com/jalveda/ops-api/internal/domain"
)

// RulesHandler handles pricing gates and delivery fee slabs (admin only).
type RulesHandler struct {
	uc *rules.RulesUseCase
}

// NewRulesHandler builds the handler.
func NewRulesHandler(uc *rules.RulesUseCase) *RulesHandler {
	return &RulesHandler{uc: uc}
}

// UpsertRule godoc
// @Summary      Set a business rule for (volume, channel, kind)
// @Description  Value zero disables the gate.
// @Tags         rules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertRuleRequest  true  "Rule to set"
// @Success      200   {object}  dto.RuleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/rules [put]
func (h *RulesHandler) UpsertRule(c *fiber.Ctx) error {
	var in dto.UpsertRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.UpsertRule(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind and channel must be valid, value must not be negative"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListRules godoc
// @Summary      List business rules
// @Tags         rules
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.RuleResponse
// @Router       /api/rules [get]
func (h *RulesHandler) ListRules(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.ListRules(c.UserContext(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeleteRule godoc
// @Summary      Delete a business rule
// @Tags         rules
// @Security     Bearer
// @Param        id  path  string  true  "Rule ID"
// @Success      204
// @Router       /api/rules/{id} [delete]
func (h *RulesHandler) DeleteRule(c *fiber.Ctx) error {
	if err := h.uc.DeleteRule(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateSlab godoc
// @Summary      Add a delivery fee slab
// @Description  Slabs are scanned in creation order; the last matching slab
// @Description  wins, so newer overlapping slabs override older ones.
// @Tags         rules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSlabRequest  true  "Slab to add"
// @Success      201   {object}  dto.SlabResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/delivery-slabs [post]
func (h *RulesHandler) CreateSlab(c *fiber.Ctx) error {
	var in dto.CreateSlabRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.CreateSlab(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "distance range must be valid and fees not negative"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListSlabs godoc
// @Summary      List delivery fee slabs
// @Tags         rules
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.SlabResponse
// @Router       /api/delivery-slabs [get]
func (h *RulesHandler) ListSlabs(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.ListSlabs(c.UserContext(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeleteSlab godoc
// @Summary      Delete a delivery fee slab
// @Tags         rules
// @Security     Bearer
// @Param        id  path  string  true  "Slab ID"
// @Success      204
// @Router       /api/delivery-slabs/{id} [delete]
func (h *RulesHandler) DeleteSlab(c *fiber.Ctx) error {
	if err := h.uc.DeleteSlab(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
