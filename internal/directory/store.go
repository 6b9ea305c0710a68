package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/noah-isme/backend-tour/internal/pricing"
)

// ErrNotFound is returned when a directory row does not exist.
var ErrNotFound = errors.New("directory entry not found")

// Store persists directory entities on postgres.
type Store struct {
	Pool *pgxpool.Pool
}

// CreateCity inserts a city.
func (s Store) CreateCity(ctx context.Context, c City) error {
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO cities (id, name, country) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.Country)
	if err != nil {
		return fmt.Errorf("insert city: %w", err)
	}
	return nil
}

// ListCities returns every city ordered by name.
func (s Store) ListCities(ctx context.Context) ([]City, error) {
	rows, err := s.Pool.Query(ctx, `SELECT id, name, country FROM cities ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	var out []City
	for rows.Next() {
		var c City
		if err := rows.Scan(&c.ID, &c.Name, &c.Country); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// DeleteCity removes a city.
func (s Store) DeleteCity(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "cities", id)
}

// CreateHotel inserts a hotel.
func (s Store) CreateHotel(ctx context.Context, h Hotel) error {
	_, err := s.Pool.Exec(ctx, `
		INSERT INTO hotels (id, city, name, category, price_per_night, single_supplement, child_6_11_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		h.ID, h.City, h.Name, string(h.Category), h.PricePerNight, h.SingleSupplement, h.Child6to11Rate)
	if err != nil {
		return fmt.Errorf("insert hotel: %w", err)
	}
	return nil
}

// ListHotels returns hotels, optionally restricted to a city.
func (s Store) ListHotels(ctx context.Context, city string) ([]Hotel, error) {
	query := `SELECT id, city, name, category, price_per_night, single_supplement, child_6_11_rate FROM hotels`
	args := []any{}
	if strings.TrimSpace(city) != "" {
		query += ` WHERE city = $1`
		args = append(args, city)
	}
	query += ` ORDER BY city, category, name`

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer rows.Close()

	var out []Hotel
	for rows.Next() {
		var (
			h        Hotel
			category string
		)
		if err := rows.Scan(&h.ID, &h.City, &h.Name, &category, &h.PricePerNight, &h.SingleSupplement, &h.Child6to11Rate); err != nil {
			return nil, fmt.Errorf("scan hotel: %w", err)
		}
		h.Category = pricing.HotelCategory(category)
		out = append(out, h)
	}
	return out, rows.Err()
}

// DeleteHotel removes a hotel.
func (s Store) DeleteHotel(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "hotels", id)
}

// HotelCategoriesByCity groups the star categories on offer per city,
// restricted to the given cities when any are named.
func (s Store) HotelCategoriesByCity(ctx context.Context, cities []string) (map[string][]pricing.HotelCategory, error) {
	query := `SELECT DISTINCT city, category FROM hotels`
	args := []any{}
	if len(cities) > 0 {
		query += ` WHERE city = ANY($1)`
		args = append(args, cities)
	}

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("hotel categories by city: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]pricing.HotelCategory)
	for rows.Next() {
		var city, category string
		if err := rows.Scan(&city, &category); err != nil {
			return nil, fmt.Errorf("scan hotel category: %w", err)
		}
		out[city] = append(out[city], pricing.HotelCategory(category))
	}
	return out, rows.Err()
}

// CreateRestaurant inserts a restaurant.
func (s Store) CreateRestaurant(ctx context.Context, r Restaurant) error {
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO restaurants (id, city, name, meal_price) VALUES ($1, $2, $3, $4)`,
		r.ID, r.City, r.Name, r.MealPrice)
	if err != nil {
		return fmt.Errorf("insert restaurant: %w", err)
	}
	return nil
}

// ListRestaurants returns restaurants, optionally restricted to a city.
func (s Store) ListRestaurants(ctx context.Context, city string) ([]Restaurant, error) {
	query := `SELECT id, city, name, meal_price FROM restaurants`
	args := []any{}
	if strings.TrimSpace(city) != "" {
		query += ` WHERE city = $1`
		args = append(args, city)
	}
	query += ` ORDER BY city, name`

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	var out []Restaurant
	for rows.Next() {
		var r Restaurant
		if err := rows.Scan(&r.ID, &r.City, &r.Name, &r.MealPrice); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// DeleteRestaurant removes a restaurant.
func (s Store) DeleteRestaurant(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "restaurants", id)
}

// CreateTour inserts a tour.
func (s Store) CreateTour(ctx context.Context, t Tour) error {
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO tours (id, city, name, type, price, entrance_fee) VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.City, t.Name, string(t.Type), t.Price, t.EntranceFee)
	if err != nil {
		return fmt.Errorf("insert tour: %w", err)
	}
	return nil
}

// ListTours returns tours, optionally restricted to a city.
func (s Store) ListTours(ctx context.Context, city string) ([]Tour, error) {
	query := `SELECT id, city, name, type, price, entrance_fee FROM tours`
	args := []any{}
	if strings.TrimSpace(city) != "" {
		query += ` WHERE city = $1`
		args = append(args, city)
	}
	query += ` ORDER BY city, name`

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}
	defer rows.Close()

	var out []Tour
	for rows.Next() {
		var (
			t        Tour
			tourType string
		)
		if err := rows.Scan(&t.ID, &t.City, &t.Name, &tourType, &t.Price, &t.EntranceFee); err != nil {
			return nil, fmt.Errorf("scan tour: %w", err)
		}
		t.Type = pricing.TourType(tourType)
		out = append(out, t)
	}
	return out, rows.Err()
}

// DeleteTour removes a tour.
func (s Store) DeleteTour(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "tours", id)
}

// CreateTransfer inserts a transfer.
func (s Store) CreateTransfer(ctx context.Context, t Transfer) error {
	_, err := s.Pool.Exec(ctx, `
		INSERT INTO transfers (id, city, name, price, price_per_vehicle, vehicle_seats)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.City, t.Name, t.Price, t.PricePerVehicle, t.VehicleSeats)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// ListTransfers returns transfers, optionally restricted to a city.
func (s Store) ListTransfers(ctx context.Context, city string) ([]Transfer, error) {
	query := `SELECT id, city, name, price, price_per_vehicle, vehicle_seats FROM transfers`
	args := []any{}
	if strings.TrimSpace(city) != "" {
		query += ` WHERE city = $1`
		args = append(args, city)
	}
	query += ` ORDER BY city, name`

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var out []Transfer
	for rows.Next() {
		var t Transfer
		if err := rows.Scan(&t.ID, &t.City, &t.Name, &t.Price, &t.PricePerVehicle, &t.VehicleSeats); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// DeleteTransfer removes a transfer.
func (s Store) DeleteTransfer(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "transfers", id)
}

func (s Store) deleteByID(ctx context.Context, table string, id uuid.UUID) error {
	tag, err := s.Pool.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
