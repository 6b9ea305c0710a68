package itinerary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-tour/internal/pricing"
)

func TestPaxTiersReshapesMatrixByPaxKey(t *testing.T) {
	tiers := []pricing.PaxTier{
		{
			Pax: 2,
			Categories: map[pricing.HotelCategory]pricing.CategoryTotals{
				pricing.ThreeStars: {AdultPerPerson: 150, SingleSupplement: 40},
				pricing.FourStars:  {AdultPerPerson: 200, SingleSupplement: 60},
			},
		},
		{
			Pax: 4,
			Categories: map[pricing.HotelCategory]pricing.CategoryTotals{
				pricing.ThreeStars: {AdultPerPerson: 120},
				pricing.FourStars:  {AdultPerPerson: 170},
			},
		},
	}
	available := []pricing.HotelCategory{pricing.ThreeStars, pricing.FourStars}

	out := PaxTiers(tiers, available)
	require.Len(t, out, 2)

	two := out["2"]
	require.NotNil(t, two.ThreeStar)
	require.InDelta(t, 150, two.ThreeStar.Double, 1e-9)
	require.InDelta(t, 150, two.ThreeStar.Triple, 1e-9)
	require.InDelta(t, 40, two.ThreeStar.SingleSupplement, 1e-9)
	require.NotNil(t, two.FourStar)
	require.Nil(t, two.FiveStar)

	four := out["4"]
	require.InDelta(t, 120, four.ThreeStar.Double, 1e-9)
}

func TestPaxTiersOmitsUnavailableCategories(t *testing.T) {
	tiers := []pricing.PaxTier{
		{
			Pax: 2,
			Categories: map[pricing.HotelCategory]pricing.CategoryTotals{
				pricing.ThreeStars: {AdultPerPerson: 100},
				pricing.FourStars:  {AdultPerPerson: 0},
				pricing.FiveStars:  {AdultPerPerson: 0},
			},
		},
	}

	out := PaxTiers(tiers, []pricing.HotelCategory{pricing.ThreeStars})
	require.NotNil(t, out["2"].ThreeStar)
	require.Nil(t, out["2"].FourStar)
	require.Nil(t, out["2"].FiveStar)
}

func TestHotelCategoriesInLedgerGroupsByCity(t *testing.T) {
	q := pricing.Quote{Days: []pricing.DayExpenses{
		{HotelAccommodation: []pricing.ExpenseItem{
			{Location: "Cusco", HotelCategory: pricing.ThreeStars},
			{Location: "Cusco", HotelCategory: pricing.FourStars},
		}},
		{HotelAccommodation: []pricing.ExpenseItem{
			{Location: "Lima", HotelCategory: pricing.FourStars},
			{Location: "Lima"}, // untagged items never register a category
		}},
	}}

	byCity := hotelCategoriesInLedger(q)
	require.Len(t, byCity["Cusco"], 2)
	require.Len(t, byCity["Lima"], 1)

	available := pricing.AvailableHotelCategories(byCity)
	require.Equal(t, []pricing.HotelCategory{pricing.ThreeStars, pricing.FourStars}, available)
}
