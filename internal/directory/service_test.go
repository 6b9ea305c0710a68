package directory

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-tour/internal/pricing"
)

type memRepo struct {
	cities      []City
	hotels      []Hotel
	restaurants []Restaurant
	tours       []Tour
	transfers   []Transfer

	listCityCalls int
}

func (m *memRepo) CreateCity(_ context.Context, c City) error {
	m.cities = append(m.cities, c)
	return nil
}

func (m *memRepo) ListCities(context.Context) ([]City, error) {
	m.listCityCalls++
	return m.cities, nil
}

func (m *memRepo) DeleteCity(_ context.Context, id uuid.UUID) error {
	for i, c := range m.cities {
		if c.ID == id {
			m.cities = append(m.cities[:i], m.cities[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *memRepo) CreateHotel(_ context.Context, h Hotel) error {
	m.hotels = append(m.hotels, h)
	return nil
}

func (m *memRepo) ListHotels(_ context.Context, city string) ([]Hotel, error) {
	if city == "" {
		return m.hotels, nil
	}
	var out []Hotel
	for _, h := range m.hotels {
		if h.City == city {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memRepo) DeleteHotel(_ context.Context, id uuid.UUID) error {
	for i, h := range m.hotels {
		if h.ID == id {
			m.hotels = append(m.hotels[:i], m.hotels[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *memRepo) HotelCategoriesByCity(_ context.Context, cities []string) (map[string][]pricing.HotelCategory, error) {
	want := make(map[string]bool, len(cities))
	for _, c := range cities {
		want[c] = true
	}
	out := make(map[string][]pricing.HotelCategory)
	for _, h := range m.hotels {
		if len(cities) > 0 && !want[h.City] {
			continue
		}
		out[h.City] = append(out[h.City], h.Category)
	}
	return out, nil
}

func (m *memRepo) CreateRestaurant(_ context.Context, r Restaurant) error {
	m.restaurants = append(m.restaurants, r)
	return nil
}

func (m *memRepo) ListRestaurants(_ context.Context, city string) ([]Restaurant, error) {
	if city == "" {
		return m.restaurants, nil
	}
	var out []Restaurant
	for _, r := range m.restaurants {
		if r.City == city {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRepo) DeleteRestaurant(_ context.Context, id uuid.UUID) error {
	for i, r := range m.restaurants {
		if r.ID == id {
			m.restaurants = append(m.restaurants[:i], m.restaurants[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *memRepo) CreateTour(_ context.Context, t Tour) error {
	m.tours = append(m.tours, t)
	return nil
}

func (m *memRepo) ListTours(_ context.Context, city string) ([]Tour, error) {
	if city == "" {
		return m.tours, nil
	}
	var out []Tour
	for _, t := range m.tours {
		if t.City == city {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memRepo) DeleteTour(_ context.Context, id uuid.UUID) error {
	for i, t := range m.tours {
		if t.ID == id {
			m.tours = append(m.tours[:i], m.tours[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *memRepo) CreateTransfer(_ context.Context, t Transfer) error {
	m.transfers = append(m.transfers, t)
	return nil
}

func (m *memRepo) ListTransfers(_ context.Context, city string) ([]Transfer, error) {
	if city == "" {
		return m.transfers, nil
	}
	var out []Transfer
	for _, t := range m.transfers {
		if t.City == city {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memRepo) DeleteTransfer(_ context.Context, id uuid.UUID) error {
	for i, t := range m.transfers {
		if t.ID == id {
			m.transfers = append(m.transfers[:i], m.transfers[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, time.Minute)
}

func TestCitiesServedFromCacheOnSecondRead(t *testing.T) {
	repo := &memRepo{cities: []City{{ID: uuid.New(), Name: "Cusco", Country: "Peru"}}}
	svc := Service{Repo: repo, Cache: newTestCache(t)}

	first, err := svc.Cities(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.Cities(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.Equal(t, "Cusco", second[0].Name)
	require.Equal(t, 1, repo.listCityCalls)
}

func TestAddCityInvalidatesCache(t *testing.T) {
	repo := &memRepo{}
	svc := Service{Repo: repo, Cache: newTestCache(t)}

	_, err := svc.Cities(context.Background())
	require.NoError(t, err)

	created, err := svc.AddCity(context.Background(), City{Name: "Lima", Country: "Peru"})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	out, err := svc.Cities(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, 2, repo.listCityCalls)
}

func TestServiceWorksWithoutCache(t *testing.T) {
	repo := &memRepo{}
	svc := Service{Repo: repo}

	_, err := svc.AddHotel(context.Background(), Hotel{City: "Cusco", Name: "Plaza", Category: pricing.FourStars, PricePerNight: 90})
	require.NoError(t, err)

	hotels, err := svc.Hotels(context.Background(), "Cusco")
	require.NoError(t, err)
	require.Len(t, hotels, 1)
}

func TestHotelCategoriesKeepsFixedOrder(t *testing.T) {
	repo := &memRepo{hotels: []Hotel{
		{ID: uuid.New(), City: "Lima", Name: "D", Category: pricing.FiveStars},
		{ID: uuid.New(), City: "Cusco", Name: "B", Category: pricing.FourStars},
	}}
	svc := Service{Repo: repo}

	got, err := svc.HotelCategories(context.Background(), []string{"Cusco", "Lima"})
	require.NoError(t, err)
	require.Equal(t, []pricing.HotelCategory{pricing.FourStars, pricing.FiveStars}, got)
}

func TestRemoveUnknownTourReturnsNotFound(t *testing.T) {
	svc := Service{Repo: &memRepo{}}
	err := svc.RemoveTour(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}
