package quote

import (
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/backend-tour/internal/pricing"
)

// Record is a persisted quote: the priced ledger plus presentation metadata.
// Quotes are replaced whole on save; days and items are never addressed
// individually outside the document.
type Record struct {
	ID        uuid.UUID     `json:"id"`
	Title     string        `json:"title"`
	Currency  string        `json:"currency"`
	Document  pricing.Quote `json:"document"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Input is the editor's save payload. The whole document arrives on every
// save; there is no incremental patching.
type Input struct {
	Title                string                `json:"title" validate:"required,max=200"`
	Currency             string                `json:"currency" validate:"omitempty,len=3,uppercase"`
	Pax                  int                   `json:"pax" validate:"min=1"`
	TourType             pricing.TourType      `json:"tourType" validate:"required,oneof=SIC Private"`
	Markup               float64               `json:"markup" validate:"min=0"`
	Tax                  float64               `json:"tax" validate:"min=0"`
	TransportPricingMode pricing.TransportMode `json:"transportPricingMode" validate:"required,oneof=total vehicle"`
	Days                 []pricing.DayExpenses `json:"days"`
}

// Document assembles the pricing ledger from the payload, normalising nil
// category buckets to empty slices.
func (in Input) Document() pricing.Quote {
	doc := pricing.Quote{
		Pax:           in.Pax,
		TourType:      in.TourType,
		Markup:        in.Markup,
		Tax:           in.Tax,
		TransportMode: in.TransportPricingMode,
		Days:          in.Days,
	}
	doc.Normalize()
	return doc
}
