package directory

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/noah-isme/backend-tour/internal/pricing"
)

// Repository is the persistence surface the service needs.
type Repository interface {
	CreateCity(ctx context.Context, c City) error
	ListCities(ctx context.Context) ([]City, error)
	DeleteCity(ctx context.Context, id uuid.UUID) error

	CreateHotel(ctx context.Context, h Hotel) error
	ListHotels(ctx context.Context, city string) ([]Hotel, error)
	DeleteHotel(ctx context.Context, id uuid.UUID) error
	HotelCategoriesByCity(ctx context.Context, cities []string) (map[string][]pricing.HotelCategory, error)

	CreateRestaurant(ctx context.Context, r Restaurant) error
	ListRestaurants(ctx context.Context, city string) ([]Restaurant, error)
	DeleteRestaurant(ctx context.Context, id uuid.UUID) error

	CreateTour(ctx context.Context, t Tour) error
	ListTours(ctx context.Context, city string) ([]Tour, error)
	DeleteTour(ctx context.Context, id uuid.UUID) error

	CreateTransfer(ctx context.Context, t Transfer) error
	ListTransfers(ctx context.Context, city string) ([]Transfer, error)
	DeleteTransfer(ctx context.Context, id uuid.UUID) error
}

// Service serves directory reads through the cache and writes through
// the repository. Only the unfiltered listings are cached; writes drop
// the affected entity's key. City-filtered reads always hit postgres.
type Service struct {
	Repo  Repository
	Cache *Cache
}

func entityKey(entity string) string {
	return "directory:" + entity
}

// Cities lists every city.
func (s Service) Cities(ctx context.Context) ([]City, error) {
	var cached []City
	if s.cacheGet(ctx, "cities", &cached) {
		return cached, nil
	}
	out, err := s.Repo.ListCities(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, "cities", out)
	return out, nil
}

// AddCity creates a city.
func (s Service) AddCity(ctx context.Context, c City) (City, error) {
	c.ID = uuid.New()
	if err := s.Repo.CreateCity(ctx, c); err != nil {
		return City{}, err
	}
	s.Cache.Invalidate(ctx, entityKey("cities"))
	return c, nil
}

// RemoveCity deletes a city.
func (s Service) RemoveCity(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteCity(ctx, id); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, entityKey("cities"))
	return nil
}

// Hotels lists hotels, optionally for one city.
func (s Service) Hotels(ctx context.Context, city string) ([]Hotel, error) {
	if city != "" {
		return s.Repo.ListHotels(ctx, city)
	}
	var cached []Hotel
	if s.cacheGet(ctx, "hotels", &cached) {
		return cached, nil
	}
	out, err := s.Repo.ListHotels(ctx, "")
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, "hotels", out)
	return out, nil
}

// AddHotel creates a hotel.
func (s Service) AddHotel(ctx context.Context, h Hotel) (Hotel, error) {
	h.ID = uuid.New()
	if err := s.Repo.CreateHotel(ctx, h); err != nil {
		return Hotel{}, err
	}
	s.Cache.Invalidate(ctx, entityKey("hotels"))
	return h, nil
}

// RemoveHotel deletes a hotel.
func (s Service) RemoveHotel(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteHotel(ctx, id); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, entityKey("hotels"))
	return nil
}

// HotelCategories reports which star categories are on offer, keeping
// the fixed 3-4-5 star order and omitting categories no listed city
// can serve.
func (s Service) HotelCategories(ctx context.Context, cities []string) ([]pricing.HotelCategory, error) {
	byCity, err := s.Repo.HotelCategoriesByCity(ctx, cities)
	if err != nil {
		return nil, err
	}
	return pricing.AvailableHotelCategories(byCity), nil
}

// Restaurants lists restaurants, optionally for one city.
func (s Service) Restaurants(ctx context.Context, city string) ([]Restaurant, error) {
	if city != "" {
		return s.Repo.ListRestaurants(ctx, city)
	}
	var cached []Restaurant
	if s.cacheGet(ctx, "restaurants", &cached) {
		return cached, nil
	}
	out, err := s.Repo.ListRestaurants(ctx, "")
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, "restaurants", out)
	return out, nil
}

// AddRestaurant creates a restaurant.
func (s Service) AddRestaurant(ctx context.Context, r Restaurant) (Restaurant, error) {
	r.ID = uuid.New()
	if err := s.Repo.CreateRestaurant(ctx, r); err != nil {
		return Restaurant{}, err
	}
	s.Cache.Invalidate(ctx, entityKey("restaurants"))
	return r, nil
}

// RemoveRestaurant deletes a restaurant.
func (s Service) RemoveRestaurant(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteRestaurant(ctx, id); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, entityKey("restaurants"))
	return nil
}

// Tours lists tours, optionally for one city.
func (s Service) Tours(ctx context.Context, city string) ([]Tour, error) {
	if city != "" {
		return s.Repo.ListTours(ctx, city)
	}
	var cached []Tour
	if s.cacheGet(ctx, "tours", &cached) {
		return cached, nil
	}
	out, err := s.Repo.ListTours(ctx, "")
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, "tours", out)
	return out, nil
}

// AddTour creates a tour.
func (s Service) AddTour(ctx context.Context, t Tour) (Tour, error) {
	t.ID = uuid.New()
	if err := s.Repo.CreateTour(ctx, t); err != nil {
		return Tour{}, err
	}
	s.Cache.Invalidate(ctx, entityKey("tours"))
	return t, nil
}

// RemoveTour deletes a tour.
func (s Service) RemoveTour(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteTour(ctx, id); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, entityKey("tours"))
	return nil
}

// Transfers lists transfers, optionally for one city.
func (s Service) Transfers(ctx context.Context, city string) ([]Transfer, error) {
	if city != "" {
		return s.Repo.ListTransfers(ctx, city)
	}
	var cached []Transfer
	if s.cacheGet(ctx, "transfers", &cached) {
		return cached, nil
	}
	out, err := s.Repo.ListTransfers(ctx, "")
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, "transfers", out)
	return out, nil
}

// AddTransfer creates a transfer.
func (s Service) AddTransfer(ctx context.Context, t Transfer) (Transfer, error) {
	t.ID = uuid.New()
	if err := s.Repo.CreateTransfer(ctx, t); err != nil {
		return Transfer{}, err
	}
	s.Cache.Invalidate(ctx, entityKey("transfers"))
	return t, nil
}

// RemoveTransfer deletes a transfer.
func (s Service) RemoveTransfer(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteTransfer(ctx, id); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, entityKey("transfers"))
	return nil
}

func (s Service) cacheGet(ctx context.Context, entity string, dst any) bool {
	ok, err := s.Cache.GetJSON(ctx, entity, entityKey(entity), dst)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("entity", entity).Msg("directory cache read failed")
		return false
	}
	return ok
}

func (s Service) cacheSet(ctx context.Context, entity string, val any) {
	if err := s.Cache.SetJSON(ctx, entityKey(entity), val); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("entity", entity).Msg("directory cache write failed")
	}
}
