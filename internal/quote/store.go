package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/noah-isme/backend-tour/internal/pricing"
)

// ErrNotFound is returned when a quote id does not exist.
var ErrNotFound = errors.New("quote not found")

// Store persists quote documents.
type Store interface {
	Insert(ctx context.Context, rec Record) error
	Get(ctx context.Context, id uuid.UUID) (Record, error)
	List(ctx context.Context, limit, offset int) ([]Record, int64, error)
	Replace(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGStore implements Store on postgres. The day-by-day ledger is stored as a
// JSONB document beside the scalar pricing parameters; saves replace the
// whole row in one statement, which is the transactional boundary the
// replace-on-save lifecycle needs.
type PGStore struct {
	Pool *pgxpool.Pool
}

const quoteColumns = `id, title, currency, pax, tour_type, markup, tax, transport_mode, days, created_at, updated_at`

// Insert stores a new quote row.
func (s PGStore) Insert(ctx context.Context, rec Record) error {
	days, err := json.Marshal(rec.Document.Days)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	_, err = s.Pool.Exec(ctx, `
		INSERT INTO quotes (id, title, currency, pax, tour_type, markup, tax, transport_mode, days, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		rec.ID, rec.Title, rec.Currency,
		rec.Document.Pax, string(rec.Document.TourType), rec.Document.Markup, rec.Document.Tax,
		string(rec.Document.TransportMode), days, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// Get loads a quote by id.
func (s PGStore) Get(ctx context.Context, id uuid.UUID) (Record, error) {
	row := s.Pool.QueryRow(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, id)
	rec, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("get quote: %w", err)
	}
	return rec, nil
}

// List returns a page of quotes ordered by most recently updated.
func (s PGStore) List(ctx context.Context, limit, offset int) ([]Record, int64, error) {
	var total int64
	if err := s.Pool.QueryRow(ctx, `SELECT count(*) FROM quotes`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count quotes: %w", err)
	}

	rows, err := s.Pool.Query(ctx, `
		SELECT `+quoteColumns+` FROM quotes
		ORDER BY updated_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanQuote(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan quote: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list quotes: %w", err)
	}
	return out, total, nil
}

// Replace overwrites the full quote document.
func (s PGStore) Replace(ctx context.Context, rec Record) error {
	days, err := json.Marshal(rec.Document.Days)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	tag, err := s.Pool.Exec(ctx, `
		UPDATE quotes
		SET title = $2, currency = $3, pax = $4, tour_type = $5, markup = $6, tax = $7,
		    transport_mode = $8, days = $9, updated_at = $10
		WHERE id = $1`,
		rec.ID, rec.Title, rec.Currency,
		rec.Document.Pax, string(rec.Document.TourType), rec.Document.Markup, rec.Document.Tax,
		string(rec.Document.TransportMode), days, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("replace quote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a quote.
func (s PGStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.Pool.Exec(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanQuote(row pgx.Row) (Record, error) {
	var (
		rec           Record
		tourType      string
		transportMode string
		days          []byte
	)
	err := row.Scan(
		&rec.ID, &rec.Title, &rec.Currency,
		&rec.Document.Pax, &tourType, &rec.Document.Markup, &rec.Document.Tax,
		&transportMode, &days, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return Record{}, err
	}
	rec.Document.TourType = pricing.TourType(tourType)
	rec.Document.TransportMode = pricing.TransportMode(transportMode)
	if len(days) > 0 {
		if err := json.Unmarshal(days, &rec.Document.Days); err != nil {
			return Record{}, fmt.Errorf("decode ledger: %w", err)
		}
	}
	rec.Document.Normalize()
	return rec, nil
}
