// Package letters renders office paperwork (offer letters, order quotes) as
// PDF documents.
package letters

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jalveda/ops-api/internal/application/dto"
	apppricing "github.com/jalveda/ops-api/internal/application/pricing"
	"github.com/jalveda/ops-api/internal/domain"
	"github.com/jalveda/ops-api/internal/domain/pricing"
)

// OfferLetterData everything the generator needs for an offer letter.
type OfferLetterData struct {
	Reference     string
	CandidateName string
	Designation   string
	MonthlyWage   decimal.Decimal
	JoiningDate   time.Time
	IssuedAt      time.Time
}

// QuoteLetterData a customer-facing order quote with the engine's figures.
type QuoteLetterData struct {
	Reference    string
	CustomerName string
	Result       *apppricing.OrderPAndLResult
	IssuedAt     time.Time
}

// LetterGenerator renders letter data to PDF bytes (Maroto in production).
type LetterGenerator interface {
	GenerateOfferLetter(ctx context.Context, data OfferLetterData) ([]byte, error)
	GenerateQuoteLetter(ctx context.Context, data QuoteLetterData) ([]byte, error)
}

// LettersUseCase generates office PDFs.
type LettersUseCase struct {
	engine    *apppricing.CalculateOrderPAndLUseCase
	generator LetterGenerator
}

// NewLettersUseCase builds the use case.
func NewLettersUseCase(engine *apppricing.CalculateOrderPAndLUseCase, generator LetterGenerator) *LettersUseCase {
	return &LettersUseCase{engine: engine, generator: generator}
}

// OfferLetter renders an offer letter PDF.
func (uc *LettersUseCase) OfferLetter(ctx context.Context, in dto.OfferLetterRequest) (pdfBytes []byte, filename string, err error) {
	if in.MonthlyWage.IsNegative() || in.MonthlyWage.IsZero() {
		return nil, "", domain.ErrInvalidInput
	}
	data := OfferLetterData{
		Reference:     newReference("OFR"),
		CandidateName: in.CandidateName,
		Designation:   in.Designation,
		MonthlyWage:   in.MonthlyWage,
		JoiningDate:   in.JoiningDate,
		IssuedAt:      time.Now(),
	}
	pdfBytes, err = uc.generator.GenerateOfferLetter(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("letters: offer letter generation: %w", err)
	}
	filename = fmt.Sprintf("offer_letter_%s.pdf", data.IssuedAt.Format("20060102"))
	return pdfBytes, filename, nil
}

// QuoteLetter runs the profitability engine on the quote input and renders
// the customer-facing figures as a PDF. Internal cost fields in the engine
// result never reach the letter; the generator only prints revenue-side
// figures.
func (uc *LettersUseCase) QuoteLetter(ctx context.Context, in dto.QuoteLetterRequest) (pdfBytes []byte, filename string, err error) {
	res, err := uc.engine.Calculate(ctx, apppricing.OrderPAndLInput{
		ProductID:             in.Quote.ProductID,
		Channel:               pricing.Channel(in.Quote.Channel),
		Pincode:               in.Quote.Pincode,
		QtyBoxes:              in.Quote.QtyBoxes,
		RequestedDeliveryType: pricing.DeliveryType(in.Quote.DeliveryType),
	})
	if err != nil {
		return nil, "", err
	}
	data := QuoteLetterData{
		Reference:    newReference("QTE"),
		CustomerName: in.CustomerName,
		Result:       res,
		IssuedAt:     time.Now(),
	}
	pdfBytes, err = uc.generator.GenerateQuoteLetter(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("letters: quote letter generation: %w", err)
	}
	filename = fmt.Sprintf("quote_%s_%s.pdf", res.SKU, data.IssuedAt.Format("20060102"))
	return pdfBytes, filename, nil
}

// newReference builds a short letter reference, printed on the letter and
// encoded in its verification QR.
func newReference(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:8])
}
