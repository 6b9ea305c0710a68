package quote

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/backend-tour/internal/pricing"
)

// Locker serialises replace-on-save for a single quote. Two editors saving
// the same quote concurrently would otherwise interleave the read-then-replace
// and silently drop one of the documents.
type Locker interface {
	WithLock(ctx context.Context, key string, ttl time.Duration, fn func(context.Context) error) error
}

// Service owns quote lifecycle and is the pricing engine's call site for the
// editor, the saved-quote viewer, and the matrix endpoint.
type Service struct {
	Store           Store
	DefaultCurrency string
	// EditorSlabs seeds the matrix when the caller supplies no slab list.
	EditorSlabs []int
	// Lock, when set, guards saves per quote ID.
	Lock Locker
}

// Create persists a new quote from an editor payload.
func (s *Service) Create(ctx context.Context, in Input) (Record, error) {
	now := time.Now().UTC()
	rec := Record{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(in.Title),
		Currency:  s.currency(in.Currency),
		Document:  in.Document(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Insert(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Save replaces the stored document with the editor's current state.
func (s *Service) Save(ctx context.Context, id uuid.UUID, in Input) (Record, error) {
	var rec Record
	err := s.withSaveLock(ctx, id, func(ctx context.Context) error {
		existing, err := s.Store.Get(ctx, id)
		if err != nil {
			return err
		}
		rec = Record{
			ID:        id,
			Title:     strings.TrimSpace(in.Title),
			Currency:  s.currency(in.Currency),
			Document:  in.Document(),
			CreatedAt: existing.CreatedAt,
			UpdatedAt: time.Now().UTC(),
		}
		return s.Store.Replace(ctx, rec)
	})
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) withSaveLock(ctx context.Context, id uuid.UUID, fn func(context.Context) error) error {
	if s.Lock == nil {
		return fn(ctx)
	}
	return s.Lock.WithLock(ctx, "quote:save:"+id.String(), 10*time.Second, fn)
}

// Detail loads a quote together with its authoritative grand totals.
func (s *Service) Detail(ctx context.Context, id uuid.UUID) (Record, pricing.GrandTotals, error) {
	rec, err := s.Store.Get(ctx, id)
	if err != nil {
		return Record{}, pricing.GrandTotals{}, err
	}
	return rec, pricing.CalculateGrandTotals(rec.Document), nil
}

// List returns a page of quotes with their grand totals for the overview table.
func (s *Service) List(ctx context.Context, page, perPage int) ([]Record, int64, error) {
	offset := (page - 1) * perPage
	return s.Store.List(ctx, perPage, offset)
}

// Delete removes a quote.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.Store.Delete(ctx, id)
}

// PricingMatrix builds the PAX-slab comparison table for a stored quote.
// Slabs below 1 are floored to 1 before they reach the engine.
func (s *Service) PricingMatrix(ctx context.Context, id uuid.UUID, slabs []int) ([]pricing.PaxTier, error) {
	rec, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return pricing.BuildPricingTable(rec.Document, SanitizeSlabs(slabs, s.EditorSlabs), nil), nil
}

// Preview prices an unsaved editor document. The live summary path keeps
// full floating-point precision.
func (s *Service) Preview(in Input) pricing.GrandTotals {
	return pricing.CalculateGrandTotals(in.Document())
}

func (s *Service) currency(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = s.DefaultCurrency
	}
	if code == "" {
		code = "USD"
	}
	return code
}

// SanitizeSlabs floors PAX slabs at 1 and falls back to the default set when
// the caller supplied nothing usable. A zero slab would divide by zero in
// the engine, so it never gets that far.
func SanitizeSlabs(slabs, fallback []int) []int {
	out := make([]int, 0, len(slabs))
	for _, slab := range slabs {
		if slab < 1 {
			slab = 1
		}
		out = append(out, slab)
	}
	if len(out) == 0 {
		if len(fallback) > 0 {
			return fallback
		}
		return []int{1, 2, 4, 6, 8, 10, 15, 20}
	}
	return out
}
