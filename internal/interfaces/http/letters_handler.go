package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jalveda/ops-api/internal/application/dto"
	"github.com/jalveda/ops-api/internal/application/letters"
	"github.com/jalveda/ops-api/internal/domain"
)

// LettersHandler renders PDF letters (protected).
type LettersHandler struct {
	uc *letters.LettersUseCase
}

// NewLettersHandler builds the handler.
func NewLettersHandler(uc *letters.LettersUseCase) *LettersHandler {
	return &LettersHandler{uc: uc}
}

// OfferLetter godoc
// @Summary      Generate an offer letter PDF
// @Tags         letters
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.OfferLetterRequest  true  "Candidate details"
// @Success      200   {file}  file
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/letters/offer [post]
func (h *LettersHandler) OfferLetter(c *fiber.Ctx) error {
	var in dto.OfferLetterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.CandidateName == "" || in.Designation == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "candidate_name and designation are required"})
	}
	pdf, filename, err := h.uc.OfferLetter(c.UserContext(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendPDF(c, pdf, filename)
}

// QuoteLetter godoc
// @Summary      Render an order quote as a PDF
// @Tags         letters
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.QuoteLetterRequest  true  "customer_name, quote"
// @Success      200   {file}  file
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/letters/quote [post]
func (h *LettersHandler) QuoteLetter(c *fiber.Ctx) error {
	var in dto.QuoteLetterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.CustomerName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_name is required"})
	}
	pdf, filename, err := h.uc.QuoteLetter(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
		case errors.Is(err, domain.ErrPriceConfigMissing):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "PRICE_MISSING", Message: "no active price configuration for this channel"})
		case errors.Is(err, domain.ErrStoreUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "data store unavailable, retry later"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return sendPDF(c, pdf, filename)
}

func sendPDF(c *fiber.Ctx, pdf []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
