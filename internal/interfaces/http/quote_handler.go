package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jalveda/ops-api/internal/application/dto"
	apppricing "github.com/jalveda/ops-api/internal/application/pricing"
	"github.com/jalveda/ops-api/internal/domain"
	"github.com/jalveda/ops-api/internal/domain/pricing"
)

// QuoteHandler exposes the order profitability engine (protected).
type QuoteHandler struct {
	engine *apppricing.CalculateOrderPAndLUseCase
}

// NewQuoteHandler builds the handler.
func NewQuoteHandler(engine *apppricing.CalculateOrderPAndLUseCase) *QuoteHandler {
	return &QuoteHandler{engine: engine}
}

// Quote godoc
// @Summary      Evaluate profitability and delivery eligibility of an order
// @Description  Read-only calculation. Business outcomes (downgrade to pickup,
// @Description  margin shortfall) are fields of the response, never errors.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteRequest  true  "Order intent"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/orders/quote [post]
func (h *QuoteHandler) Quote(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	res, err := h.engine.Calculate(c.UserContext(), apppricing.OrderPAndLInput{
		ProductID:             in.ProductID,
		Channel:               pricing.Channel(in.Channel),
		Pincode:               in.Pincode,
		QtyBoxes:              in.QtyBoxes,
		RequestedDeliveryType: pricing.DeliveryType(in.DeliveryType),
	})
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
	return c.JSON(toQuoteResponse(res))
}

func toQuoteResponse(r *apppricing.OrderPAndLResult) *dto.QuoteResponse {
	return &dto.QuoteResponse{
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		SKU:         r.SKU,
		VolumeML:    r.VolumeML,
		UnitsPerBox: r.UnitsPerBox,
		Channel:     string(r.Channel),
		ChannelKey:  string(r.ChannelKey),
		Pincode:     r.Pincode,
		QtyBoxes:    r.QtyBoxes,

		ProductionCostPerBottle: r.ProductionCostPerBottle,
		CostPerBox:              r.CostPerBox,
		EstProductCost:          r.EstProductCost,

		MinMarginPerBottle:  r.MinMarginPerBottle,
		MinMarginPerBox:     r.MinMarginPerBox,
		MinBoxesForDelivery: r.MinBoxesForDelivery,
		MaxDeliveryRadiusKm: r.MaxDeliveryRadiusKm,

		RequestedDeliveryType: string(r.RequestedDeliveryType),
		EffectiveDeliveryType: string(r.EffectiveDeliveryType),
		DeliveryReason:        r.DeliveryReason,
		DistributorID:         r.DistributorID,
		DistributorName:       r.DistributorName,
		DistanceKm:            r.DistanceKm,
		DeliveryFee:           r.DeliveryFee,
		EstDeliveryCost:       r.EstDeliveryCost,

		PricePerBox:     r.PricePerBox,
		RevenueProducts: r.RevenueProducts,
		RevenueDelivery: r.RevenueDelivery,
		GrossRevenue:    r.GrossRevenue,
		TotalCost:       r.TotalCost,
		MarginAmount:    r.MarginAmount,
		MarginPerBox:    r.MarginPerBox,
		MarginPerBottle: r.MarginPerBottle,

		IsLoss:           r.IsLoss,
		IsBelowMinMargin: r.IsBelowMinMargin,
		OK:               r.OK,
		Warnings:         r.Warnings,
	}
}
