package quickquote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-tour/internal/directory"
	"github.com/noah-isme/backend-tour/internal/pricing"
)

type stubDir struct {
	hotels      map[string][]directory.Hotel
	restaurants map[string][]directory.Restaurant
	tours       map[string][]directory.Tour
	transfers   map[string][]directory.Transfer
}

func (s stubDir) Hotels(_ context.Context, city string) ([]directory.Hotel, error) {
	return s.hotels[city], nil
}

func (s stubDir) Restaurants(_ context.Context, city string) ([]directory.Restaurant, error) {
	return s.restaurants[city], nil
}

func (s stubDir) Tours(_ context.Context, city string) ([]directory.Tour, error) {
	return s.tours[city], nil
}

func (s stubDir) Transfers(_ context.Context, city string) ([]directory.Transfer, error) {
	return s.transfers[city], nil
}

func fixtureDir() stubDir {
	return stubDir{
		hotels: map[string][]directory.Hotel{
			"Cusco": {
				{City: "Cusco", Name: "Colonial", Category: pricing.FourStars, PricePerNight: 120, SingleSupplement: 40},
				{City: "Cusco", Name: "Plaza", Category: pricing.FourStars, PricePerNight: 90, SingleSupplement: 30},
				{City: "Cusco", Name: "Hostal", Category: pricing.ThreeStars, PricePerNight: 50},
			},
		},
		restaurants: map[string][]directory.Restaurant{
			"Cusco": {
				{City: "Cusco", Name: "Inka Grill", MealPrice: 25},
				{City: "Cusco", Name: "Mercado", MealPrice: 12},
			},
		},
		tours: map[string][]directory.Tour{
			"Cusco": {
				{City: "Cusco", Name: "City Tour", Type: pricing.TourSIC, Price: 35, EntranceFee: 10},
				{City: "Cusco", Name: "Sacred Valley", Type: pricing.TourPrivate, Price: 200},
			},
		},
		transfers: map[string][]directory.Transfer{
			"Cusco": {
				{City: "Cusco", Name: "Airport pickup", Price: 60, PricePerVehicle: 45, VehicleSeats: 3},
			},
		},
	}
}

func TestBuildAssemblesLedgerFromDirectory(t *testing.T) {
	b := Builder{Dir: fixtureDir()}

	doc, err := b.Build(context.Background(), Request{
		Pax:           4,
		TourType:      pricing.TourSIC,
		TransportMode: pricing.TransportTotal,
		Markup:        10,
		Tax:           8,
		Stays:         []CityStay{{City: "Cusco", Nights: 2}},
	})
	require.NoError(t, err)
	require.Len(t, doc.Days, 2)

	day1 := doc.Days[0]
	require.Equal(t, 1, day1.DayNumber)

	// Cheapest hotel per category, in fixed category order.
	require.Len(t, day1.HotelAccommodation, 2)
	require.Equal(t, "Hostal", day1.HotelAccommodation[0].Description)
	require.Equal(t, pricing.ThreeStars, day1.HotelAccommodation[0].HotelCategory)
	require.Equal(t, "Plaza", day1.HotelAccommodation[1].Description)
	require.InDelta(t, 90, day1.HotelAccommodation[1].Price, 1e-9)

	// Two meals a day from the cheapest restaurant.
	require.Len(t, day1.Meals, 2)
	require.InDelta(t, 12, day1.Meals[0].Price, 1e-9)

	// SIC tour price lands in the SIC bucket, its fee in entrance fees.
	require.Len(t, day1.SICTourCost, 1)
	require.InDelta(t, 35, day1.SICTourCost[0].Price, 1e-9)
	require.Len(t, day1.EntranceFees, 1)
	require.Empty(t, day1.Guide)

	// Arrival transfer on the first night only, 4 pax over 3 seats takes 2 vehicles.
	require.Len(t, day1.Transportation, 1)
	require.Equal(t, 2, day1.Transportation[0].VehicleCount)
	require.Empty(t, doc.Days[1].Transportation)
}

func TestBuildRoutesPrivateTourToGuideBucket(t *testing.T) {
	b := Builder{Dir: fixtureDir()}

	doc, err := b.Build(context.Background(), Request{
		Pax:           2,
		TourType:      pricing.TourPrivate,
		TransportMode: pricing.TransportTotal,
		Stays:         []CityStay{{City: "Cusco", Nights: 1}},
	})
	require.NoError(t, err)
	require.Len(t, doc.Days, 1)
	require.Empty(t, doc.Days[0].SICTourCost)
	require.Len(t, doc.Days[0].Guide, 1)
	require.InDelta(t, 200, doc.Days[0].Guide[0].Price, 1e-9)
}

func TestBuildWithUnknownCityYieldsEmptyBuckets(t *testing.T) {
	b := Builder{Dir: fixtureDir()}

	doc, err := b.Build(context.Background(), Request{
		Pax:           2,
		TourType:      pricing.TourSIC,
		TransportMode: pricing.TransportTotal,
		Stays:         []CityStay{{City: "Atlantis", Nights: 1}},
	})
	require.NoError(t, err)
	require.Len(t, doc.Days, 1)
	require.Empty(t, doc.Days[0].HotelAccommodation)
	require.Empty(t, doc.Days[0].Meals)

	totals := pricing.CalculateGrandTotals(doc)
	require.Zero(t, totals.FinalPerPerson)
}
