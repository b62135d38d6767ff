// Package pdf renders office letters with Maroto v2.
//
// A4 layout shared by both letters:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Company name + city │ Letter title + date          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ADDRESSEE                                                   │
//	│  BODY: terms (offer) or quoted figures table (quote)         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: signature line / validity note + verification QR    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jalveda/ops-api/internal/application/letters"
)

const (
	companyName = "Jalveda Beverages Pvt. Ltd."
	companyCity = "Thane, Maharashtra"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// enIN prints amounts with Indian digit grouping (1,00,000).
var enIN = message.NewPrinter(language.MustParse("en-IN"))

func formatINR(d decimal.Decimal) string {
	return enIN.Sprintf("Rs. %.2f", d.InexactFloat64())
}

var _ letters.LetterGenerator = (*MarotoLetterGenerator)(nil)

// MarotoLetterGenerator implements letters.LetterGenerator with Maroto v2.
type MarotoLetterGenerator struct{}

// NewMarotoLetterGenerator builds the generator.
func NewMarotoLetterGenerator() *MarotoLetterGenerator { return &MarotoLetterGenerator{} }

// GenerateOfferLetter renders the offer letter and returns its bytes.
func (g *MarotoLetterGenerator) GenerateOfferLetter(_ context.Context, data letters.OfferLetterData) ([]byte, error) {
	m := maroto.New(letterConfig("Offer Letter"))

	m.AddRows(headerRow("OFFER LETTER", data.IssuedAt.Format("02/01/2006")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(row.New(10).Add(col.New(12).Add(
		text.New("Dear "+data.CandidateName+",", props.Text{Size: 10, Top: 3}),
	)))
	m.AddRows(row.New(16).Add(col.New(12).Add(
		text.New(fmt.Sprintf(
			"We are pleased to offer you the position of %s at %s. Your monthly wage will be %s.",
			data.Designation, companyName, formatINR(data.MonthlyWage),
		), props.Text{Size: 10, Top: 2}),
	)))
	m.AddRows(row.New(12).Add(col.New(12).Add(
		text.New(fmt.Sprintf(
			"Your expected date of joining is %s. Please report to the plant office with your identity and address proof.",
			data.JoiningDate.Format("02 January 2006"),
		), props.Text{Size: 10, Top: 2}),
	)))

	m.AddRows(line.NewRow(8))
	m.AddRows(row.New(14).Add(col.New(12).Add(
		text.New("For "+companyName, props.Text{Size: 10, Top: 2}),
		text.New("Authorised Signatory", props.Text{Size: 9, Top: 9, Color: colorGray}),
	)))

	m.AddRows(verificationRow(data.Reference, data.IssuedAt))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate offer letter: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateQuoteLetter renders the customer-facing quote. Cost-side figures
// of the engine result are internal and never printed.
func (g *MarotoLetterGenerator) GenerateQuoteLetter(_ context.Context, data letters.QuoteLetterData) ([]byte, error) {
	res := data.Result
	m := maroto.New(letterConfig("Order Quote"))

	m.AddRows(headerRow("ORDER QUOTE", data.IssuedAt.Format("02/01/2006")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(row.New(10).Add(col.New(12).Add(
		text.New("Prepared for: "+data.CustomerName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 3}),
	)))

	m.AddRows(quoteLineRow("Product", fmt.Sprintf("%s (%dml, %d bottles/box)", res.ProductName, res.VolumeML, res.UnitsPerBox)))
	m.AddRows(quoteLineRow("Quantity", fmt.Sprintf("%d boxes", res.QtyBoxes)))
	m.AddRows(quoteLineRow("Price per box", formatINR(res.PricePerBox)))
	m.AddRows(quoteLineRow("Products total", formatINR(res.RevenueProducts)))

	if res.EffectiveDeliveryType == "delivery" {
		m.AddRows(quoteLineRow("Delivery fee", formatINR(res.DeliveryFee)))
	} else {
		note := "Pickup from plant"
		if res.DeliveryReason != "" {
			note = "Pickup from plant (" + res.DeliveryReason + ")"
		}
		m.AddRows(quoteLineRow("Fulfilment", note))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(10).Add(
		col.New(8).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(4).Add(text.New(formatINR(res.GrossRevenue), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	))

	m.AddRows(line.NewRow(6))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("This quote is valid for 7 days. Prices include delivery where stated.", props.Text{
			Size: 8, Color: colorGray, Top: 2,
		}),
	)))

	m.AddRows(verificationRow(data.Reference, data.IssuedAt))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate quote letter: %w", err)
	}
	return doc.GetBytes(), nil
}

func letterConfig(title string) *entity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(title, true).
		WithAuthor(companyName, true).
		Build()
}

// headerRow: company identity left, letter title and date right.
func headerRow(title, date string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(companyCity, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Date: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// verificationRow: QR with the letter reference, so the office can confirm a
// printed letter against its records.
func verificationRow(reference string, issued time.Time) core.Row {
	payload := fmt.Sprintf("JALVEDA|%s|%s", reference, issued.Format("2006-01-02"))
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(payload, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(9).Add(
			text.New("Scan to verify this letter with "+companyName+".", props.Text{
				Size: 8, Top: 8, Left: 2, Color: colorGray,
			}),
			text.New("Ref: "+reference, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 14, Left: 2, Color: colorGray,
			}),
		),
	)
}

// quoteLineRow: one label/value line of the quote.
func quoteLineRow(label, value string) core.Row {
	return row.New(8).Add(
		col.New(4).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 2, Color: colorGray,
		})),
		col.New(8).Add(text.New(value, props.Text{Size: 9, Top: 2})),
	)
}
