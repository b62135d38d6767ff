package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jalveda/ops-api/internal/application/dto"
	"github.com/jalveda/ops-api/internal/application/logistics"
	"github.com/jalveda/ops-api/internal/domain"
)

// LogisticsHandler handles distributors, pincode mappings and geo data
// (protected).
type LogisticsHandler struct {
	uc *logistics.LogisticsUseCase
}

// NewLogisticsHandler builds the handler.
func NewLogisticsHandler(uc *logistics.LogisticsUseCase) *LogisticsHandler {
	return &LogisticsHandler{uc: uc}
}

// CreateDistributor godoc
// @Summary      Onboard a distributor
// @Tags         logistics
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDistributorRequest  true  "Distributor data"
// @Success      201   {object}  dto.DistributorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/distributors [post]
func (h *LogisticsHandler) CreateDistributor(c *fiber.Ctx) error {
	var in dto.CreateDistributorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name is required"})
	}
	out, err := h.uc.CreateDistributor(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "service_radius_km must be positive"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateDistributor godoc
// @Summary      Update a distributor
// @Tags         logistics
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Distributor ID"
// @Param        body  body  dto.UpdateDistributorRequest  true  "Fields to update"
// @Success      200   {object}  dto.DistributorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/distributors/{id} [put]
func (h *LogisticsHandler) UpdateDistributor(c *fiber.Ctx) error {
	var in dto.UpdateDistributorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.UpdateDistributor(c.UserContext(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "service_radius_km must be positive"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "distributor not found"})
	}
	return c.JSON(out)
}

// DeleteDistributor godoc
// @Summary      Delete a distributor
// @Tags         logistics
// @Security     Bearer
// @Param        id  path  string  true  "Distributor ID"
// @Success      204
// @Router       /api/distributors/{id} [delete]
func (h *LogisticsHandler) DeleteDistributor(c *fiber.Ctx) error {
	if err := h.uc.DeleteDistributor(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListDistributors godoc
// @Summary      List distributors
// @Tags         logistics
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.DistributorResponse
// @Router       /api/distributors [get]
func (h *LogisticsHandler) ListDistributors(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.ListDistributors(c.UserContext(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MapPincode godoc
// @Summary      Map a pincode to a distributor
// @Tags         logistics
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MapPincodeRequest  true  "pincode, distributor_id"
// @Success      201   {object}  dto.PincodeMappingResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pincodes/mappings [post]
func (h *LogisticsHandler) MapPincode(c *fiber.Ctx) error {
	var in dto.MapPincodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Pincode == "" || in.DistributorID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pincode and distributor_id are required"})
	}
	out, err := h.uc.MapPincode(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "distributor not found"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "pincode is already mapped to this distributor"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UnmapPincode godoc
// @Summary      Remove a pincode mapping
// @Tags         logistics
// @Security     Bearer
// @Param        id  path  string  true  "Mapping ID"
// @Success      204
// @Router       /api/pincodes/mappings/{id} [delete]
func (h *LogisticsHandler) UnmapPincode(c *fiber.Ctx) error {
	if err := h.uc.UnmapPincode(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetPincodeGeo godoc
// @Summary      Record the centroid coordinates of a pincode
// @Tags         logistics
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.SetPincodeGeoRequest  true  "pincode, latitude, longitude"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pincodes/geo [put]
func (h *LogisticsHandler) SetPincodeGeo(c *fiber.Ctx) error {
	var in dto.SetPincodeGeoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Pincode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pincode is required"})
	}
	if err := h.uc.SetPincodeGeo(c.UserContext(), in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Serviceability godoc
// @Summary      Check whether a pincode can be delivered to
// @Tags         logistics
// @Security     Bearer
// @Produce      json
// @Param        pincode  path  string  true  "Pincode"
// @Success      200  {object}  dto.ServiceabilityResponse
// @Router       /api/pincodes/{pincode}/serviceability [get]
func (h *LogisticsHandler) Serviceability(c *fiber.Ctx) error {
	pincode := c.Params("pincode")
	if pincode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pincode is required"})
	}
	out, err := h.uc.CheckServiceability(c.UserContext(), pincode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
