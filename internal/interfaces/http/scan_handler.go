package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jalveda/ops-api/internal/application/dto"
	"github.com/jalveda/ops-api/internal/application/scan"
)

// ScanHandler handles anti-counterfeit QR codes. RecordScan is public (the
// landing page posts it unauthenticated); batch generation and stats are
// protected.
type ScanHandler struct {
	uc *scan.ScanUseCase
}

// NewScanHandler builds the handler.
func NewScanHandler(uc *scan.ScanUseCase) *ScanHandler {
	return &ScanHandler{uc: uc}
}

// RecordScan godoc
// @Summary      Record a consumer scan and return the authenticity verdict
// @Tags         scan
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordScanRequest  true  "code, pincode"
// @Success      200   {object}  dto.RecordScanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/scan [post]
func (h *ScanHandler) RecordScan(c *fiber.Ctx) error {
	var in dto.RecordScanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code is required"})
	}
	if in.UserAgent == "" {
		in.UserAgent = c.Get("User-Agent")
	}
	out, err := h.uc.RecordScan(c.UserContext(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GenerateCodes godoc
// @Summary      Generate a batch of QR codes for a production run
// @Tags         scan
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateCodesRequest  true  "product_id, batch_no, count"
// @Success      201   {object}  dto.GenerateCodesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/scan/codes [post]
func (h *ScanHandler) GenerateCodes(c *fiber.Ctx) error {
	var in dto.GenerateCodesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.ProductID == "" || in.BatchNo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id and batch_no are required"})
	}
	if in.Count <= 0 || in.Count > 100000 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "count must be between 1 and 100000"})
	}
	out, err := h.uc.GenerateCodes(c.UserContext(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Stats godoc
// @Summary      Scan dashboard aggregates
// @Tags         scan
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "RFC3339 start, default 30 days ago"
// @Param        to    query  string  false  "RFC3339 end, default now"
// @Param        top   query  int     false  "Top pincodes"  default(10)
// @Success      200   {object}  dto.ScanStatsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/scan/stats [get]
func (h *ScanHandler) Stats(c *fiber.Ctx) error {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now
	if s := c.Query("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from must be RFC3339"})
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to must be RFC3339"})
		}
		to = t
	}
	out, err := h.uc.Stats(c.UserContext(), from, to, c.QueryInt("top", 10))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
