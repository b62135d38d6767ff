package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jalveda/ops-api/internal/application/catalog"
	"github.com/jalveda/ops-api/internal/application/dto"
	"github.com/jalveda/ops-api/internal/domain"
)

// ProductHandler handles HTTP requests for the catalog: products, their cost
// components and their price lists (protected).
type ProductHandler struct {
	uc *catalog.CatalogUseCase
}

// NewProductHandler builds the handler.
func NewProductHandler(uc *catalog.CatalogUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Create product
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Product data"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.SKU == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku and name are required"})
	}
	if in.VolumeML <= 0 || in.UnitsPerBox <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "volume_ml and units_per_box must be positive"})
	}
	out, err := h.uc.CreateProduct(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "SKU already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get product by ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Product ID"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.GetProduct(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List products
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	if page.Limit > 100 {
		page.Limit = 100
	}
	out, err := h.uc.ListProducts(c.UserContext(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update product
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Product ID"
// @Param        body  body  dto.UpdateProductRequest  true  "Fields to update"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.UpdateProduct(c.UserContext(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "volume_ml and units_per_box must be positive"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete product
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "Product ID"
// @Success      204
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	if err := h.uc.DeleteProduct(c.UserContext(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddComponent godoc
// @Summary      Add cost component to a product
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Product ID"
// @Param        body  body  dto.CreateCostComponentRequest  true  "Cost line"
// @Success      201   {object}  dto.CostComponentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/components [post]
func (h *ProductHandler) AddComponent(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.CreateCostComponentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name is required"})
	}
	out, err := h.uc.AddCostComponent(c.UserContext(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cost_per_unit must not be negative"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListComponents godoc
// @Summary      List cost components of a product
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Product ID"
// @Success      200 {array}  dto.CostComponentResponse
// @Router       /api/products/{id}/components [get]
func (h *ProductHandler) ListComponents(c *fiber.Ctx) error {
	out, err := h.uc.ListCostComponents(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateComponent godoc
// @Summary      Update a cost component
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        componentId  path  string  true  "Component ID"
// @Param        body  body  dto.UpdateCostComponentRequest  true  "Fields to update"
// @Success      200   {object}  dto.CostComponentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/components/{componentId} [put]
func (h *ProductHandler) UpdateComponent(c *fiber.Ctx) error {
	id := c.Params("componentId")
	var in dto.UpdateCostComponentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.UpdateCostComponent(c.UserContext(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cost_per_unit must not be negative"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "component not found"})
	}
	return c.JSON(out)
}

// DeleteComponent godoc
// @Summary      Delete a cost component
// @Tags         products
// @Security     Bearer
// @Param        componentId  path  string  true  "Component ID"
// @Success      204
// @Router       /api/components/{componentId} [delete]
func (h *ProductHandler) DeleteComponent(c *fiber.Ctx) error {
	if err := h.uc.DeleteCostComponent(c.UserContext(), c.Params("componentId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetPrice godoc
// @Summary      Set the active price for a product and channel key
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Product ID"
// @Param        body  body  dto.SetPriceRequest  true  "channel_key, price_per_box"
// @Success      201   {object}  dto.PriceConfigResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/prices [post]
func (h *ProductHandler) SetPrice(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.SetPriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.SetPrice(c.UserContext(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "channel_key must be valid and price_per_box positive"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPrices godoc
// @Summary      List price rows of a product
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Product ID"
// @Success      200 {array}  dto.PriceConfigResponse
// @Router       /api/products/{id}/prices [get]
func (h *ProductHandler) ListPrices(c *fiber.Ctx) error {
	out, err := h.uc.ListPrices(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
