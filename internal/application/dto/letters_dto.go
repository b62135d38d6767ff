package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OfferLetterRequest input to generate an offer letter PDF.
type OfferLetterRequest struct {
	CandidateName string          `json:"candidate_name" validate:"required,min=1,max=200"`
	Designation   string          `json:"designation" validate:"required,min=1,max=100"`
	MonthlyWage   decimal.Decimal `json:"monthly_wage" validate:"required"`
	JoiningDate   time.Time       `json:"joining_date" validate:"required"`
}

// QuoteLetterRequest input to render an order quote as a PDF, computed by the
// same engine that backs the quote endpoint.
type QuoteLetterRequest struct {
	CustomerName string       `json:"customer_name" validate:"required,min=1,max=200"`
	Quote        QuoteRequest `json:"quote" validate:"required"`
}
