package itinerary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/noah-isme/backend-tour/internal/narrative"
	"github.com/noah-isme/backend-tour/internal/pricing"
	"github.com/noah-isme/backend-tour/internal/quote"
)

// QuoteSource supplies the saved quote an export renders.
type QuoteSource interface {
	Detail(ctx context.Context, id uuid.UUID) (quote.Record, pricing.GrandTotals, error)
}

// DayView is one rendered itinerary day.
type DayView struct {
	DayNumber  int       `json:"dayNumber"`
	Date       time.Time `json:"date,omitempty"`
	City       string    `json:"city,omitempty"`
	Activities []string  `json:"activities"`
}

// Document is the exported itinerary: cover text, the day-by-day program and
// the pricing block across PAX tiers.
type Document struct {
	QuoteID   uuid.UUID           `json:"quoteId"`
	Title     string              `json:"title"`
	Currency  string              `json:"currency"`
	Narrative string              `json:"narrative"`
	Days      []DayView           `json:"days"`
	PaxTiers  map[string]TierView `json:"paxTiers"`
	Totals    pricing.GrandTotals `json:"totals"`

	// Matrix is the raw pricing table the print renderer lays out; the JSON
	// export ships the reshaped PaxTiers instead.
	Matrix []pricing.PaxTier `json:"-"`
}

// Service renders saved quotes into itinerary documents.
type Service struct {
	Quotes   QuoteSource
	Narrator narrative.Generator
	PaxSlabs []int
}

// Export loads the quote and assembles its document. Narrative generation is
// best-effort: on provider failure the canned text is used and the export
// still succeeds.
func (s Service) Export(ctx context.Context, id uuid.UUID) (Document, error) {
	rec, totals, err := s.Quotes.Detail(ctx, id)
	if err != nil {
		return Document{}, err
	}

	slabs := quote.SanitizeSlabs(s.PaxSlabs, []int{2, 4, 6, 8, 10})
	available := pricing.AvailableHotelCategories(hotelCategoriesInLedger(rec.Document))
	tiers := pricing.BuildPricingTable(rec.Document, slabs, available)

	days := buildDayViews(rec.Document)

	doc := Document{
		QuoteID:   rec.ID,
		Title:     rec.Title,
		Currency:  rec.Currency,
		Narrative: s.narrate(ctx, rec.Title, days),
		Days:      days,
		PaxTiers:  PaxTiers(tiers, available),
		Totals:    totals,
		Matrix:    tiers,
	}
	return doc, nil
}

func (s Service) narrate(ctx context.Context, title string, days []DayView) string {
	lines := make([]string, 0, len(days))
	for _, d := range days {
		lines = append(lines, dayLine(d))
	}
	req := narrative.Request{Title: title, DayLines: lines}

	if s.Narrator != nil {
		if text, err := s.Narrator.Narrate(ctx, req); err == nil {
			return text
		} else {
			log.Ctx(ctx).Warn().Err(err).Msg("narrative generation failed, using canned text")
		}
	}
	text, _ := narrative.Canned{}.Narrate(ctx, req)
	return text
}

func dayLine(d DayView) string {
	if len(d.Activities) == 0 {
		if d.City != "" {
			return fmt.Sprintf("At leisure in %s", d.City)
		}
		return "Day at leisure"
	}
	line := strings.Join(d.Activities, ", ")
	if d.City != "" {
		line = d.City + ": " + line
	}
	return line
}

func buildDayViews(q pricing.Quote) []DayView {
	out := make([]DayView, 0, len(q.Days))
	for _, day := range q.Days {
		view := DayView{DayNumber: day.DayNumber, Date: day.Date}

		for _, item := range day.HotelAccommodation {
			if view.City == "" && item.Location != "" {
				view.City = item.Location
			}
		}
		for _, bucket := range [][]pricing.ExpenseItem{day.SICTourCost, day.Guide, day.EntranceFees} {
			for _, item := range bucket {
				if view.City == "" && item.Location != "" {
					view.City = item.Location
				}
				if item.Description != "" {
					view.Activities = append(view.Activities, item.Description)
				}
			}
		}
		if view.Activities == nil {
			view.Activities = []string{}
		}
		out = append(out, view)
	}
	return out
}
