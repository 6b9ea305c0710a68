package pricing

import (
	"math"
	"testing"
)

func day(mutate func(*DayExpenses)) DayExpenses {
	d := DayExpenses{DayNumber: 1}
	d.Normalize()
	if mutate != nil {
		mutate(&d)
	}
	return d
}

func TestEmptyLedgerYieldsZeroEverywhere(t *testing.T) {
	q := Quote{Pax: 6, Markup: 25, Tax: 18, TransportMode: TransportTotal, Days: []DayExpenses{day(nil), day(nil)}}
	got := CalculateGrandTotals(q)
	if got.TotalPerPerson != 0 || got.TotalGeneral != 0 || got.GrandTotal != 0 {
		t.Fatalf("expected all-zero totals, got %+v", got)
	}
	tiers := BuildPricingTable(q, []int{2, 4}, nil)
	for _, tier := range tiers {
		for cat, totals := range tier.Categories {
			if totals.AdultPerPerson != 0 {
				t.Fatalf("pax %d %s: expected zero adult price, got %v", tier.Pax, cat, totals.AdultPerPerson)
			}
		}
	}
}

func TestMarkupThenTaxComposition(t *testing.T) {
	q := Quote{
		Pax: 1, Markup: 10, Tax: 8, TransportMode: TransportTotal,
		Days: []DayExpenses{day(func(d *DayExpenses) {
			d.Meals = append(d.Meals, ExpenseItem{Description: "full board", Price: 100})
		})},
	}
	got := CalculateGrandTotals(q)
	if got.Subtotal != 100 {
		t.Fatalf("subtotal: want 100, got %v", got.Subtotal)
	}
	if math.Abs(got.AfterMarkup-110) > 1e-9 {
		t.Fatalf("after markup: want 110, got %v", got.AfterMarkup)
	}
	if math.Abs(got.GrandTotal-118.8) > 1e-9 {
		t.Fatalf("grand total: want 118.8 (tax on marked-up amount), got %v", got.GrandTotal)
	}
}

func TestGeneralCostDividesBySlabPax(t *testing.T) {
	q := Quote{
		Pax: 4, TransportMode: TransportTotal,
		Days: []DayExpenses{day(func(d *DayExpenses) {
			d.Transportation = append(d.Transportation, ExpenseItem{Description: "airport transfer", Price: 200})
		})},
	}
	got := CalculateGrandTotals(q)
	if got.GeneralPerPerson != 50 {
		t.Fatalf("general per person: want 50, got %v", got.GeneralPerPerson)
	}
	if got.CostPerPerson != 50 {
		t.Fatalf("cost per person: want 50, got %v", got.CostPerPerson)
	}
	if got.Subtotal != 200 {
		t.Fatalf("subtotal should round-trip the division, got %v", got.Subtotal)
	}
}

func TestPerVehicleMode(t *testing.T) {
	d := day(func(d *DayExpenses) {
		d.Transportation = append(d.Transportation, ExpenseItem{
			Description: "minibus", Price: 0, VehicleCount: 2, PricePerVehicle: 75,
		})
	})

	vehicle := CalculateDayTotals(d, TransportPerVehicle, "")
	if vehicle.General != 150 {
		t.Fatalf("vehicle mode: want 150, got %v", vehicle.General)
	}

	// Total mode falls back to the stale price field, not the vehicle fields.
	total := CalculateDayTotals(d, TransportTotal, "")
	if total.General != 0 {
		t.Fatalf("total mode: want 0, got %v", total.General)
	}
}

func TestChildSurchargeFOCSentinel(t *testing.T) {
	base := Quote{
		Pax: 2, Markup: 10, Tax: 8, TransportMode: TransportTotal,
		Days: []DayExpenses{day(func(d *DayExpenses) {
			d.Meals = append(d.Meals, ExpenseItem{Price: 40, Child3to5: 5})
		})},
	}
	tiers := BuildPricingTable(base, []int{2}, []HotelCategory{ThreeStars})
	totals := tiers[0].Categories[ThreeStars]
	if totals.Child0to2.IsFree() != true {
		t.Fatal("child 0-2 sums to zero and must be free of charge")
	}
	if totals.Child3to5.IsFree() {
		t.Fatal("child 3-5 has a nonzero raw total and must never be free of charge")
	}
	// 5 * 1.10 * 1.08 = 5.94 -> 6
	if got := totals.Child3to5.Amount(); got != 6 {
		t.Fatalf("child 3-5: want 6, got %v", got)
	}
}

func TestMatrixRoundsWhereGrandTotalsDoNot(t *testing.T) {
	// Per person raw price of exactly 49.5: the matrix shows 50, the live
	// summary keeps 49.5. Both behaviours are load-bearing for output parity.
	q := Quote{
		Pax: 2, TransportMode: TransportTotal,
		Days: []DayExpenses{day(func(d *DayExpenses) {
			d.Transportation = append(d.Transportation, ExpenseItem{Price: 99})
		})},
	}

	grand := CalculateGrandTotals(q)
	if grand.FinalPerPerson != 49.5 {
		t.Fatalf("unrounded path: want 49.5, got %v", grand.FinalPerPerson)
	}

	tiers := BuildPricingTable(q, []int{2}, []HotelCategory{ThreeStars})
	if got := tiers[0].Categories[ThreeStars].AdultPerPerson; got != 50 {
		t.Fatalf("rounded path: want 50, got %v", got)
	}
}

func TestHotelCategoryFilter(t *testing.T) {
	d := day(func(d *DayExpenses) {
		d.HotelAccommodation = append(d.HotelAccommodation,
			ExpenseItem{Description: "city hotel", Price: 80, HotelCategory: FourStars},
			ExpenseItem{Description: "grand hotel", Price: 140, HotelCategory: FiveStars},
		)
	})

	if got := CalculateDayTotals(d, TransportTotal, FourStars).PerPerson; got != 80 {
		t.Fatalf("4-star filter: want 80, got %v", got)
	}
	if got := CalculateDayTotals(d, TransportTotal, FiveStars).PerPerson; got != 140 {
		t.Fatalf("5-star filter: want 140, got %v", got)
	}
	if got := CalculateDayTotals(d, TransportTotal, "").PerPerson; got != 220 {
		t.Fatalf("no filter: want 220, got %v", got)
	}
}

func TestAvailableHotelCategoriesOrderAndOmission(t *testing.T) {
	byCity := map[string][]HotelCategory{
		"Istanbul":   {FiveStars, FourStars},
		"Cappadocia": {FourStars},
	}
	got := AvailableHotelCategories(byCity)
	if len(got) != 2 || got[0] != FourStars || got[1] != FiveStars {
		t.Fatalf("want [4 stars, 5 stars], got %v", got)
	}

	if got := AvailableHotelCategories(nil); len(got) != 0 {
		t.Fatalf("no hotels anywhere must yield no categories, got %v", got)
	}
}

func TestSingleSupplementSkipsPaxDivision(t *testing.T) {
	q := Quote{
		Pax: 4, Markup: 10, Tax: 10, TransportMode: TransportTotal,
		Days: []DayExpenses{day(func(d *DayExpenses) {
			d.HotelAccommodation = append(d.HotelAccommodation,
				ExpenseItem{Price: 100, SingleSupplement: 30, HotelCategory: ThreeStars})
		})},
	}
	tiers := BuildPricingTable(q, []int{4, 8}, []HotelCategory{ThreeStars})
	// 30 * 1.10 * 1.10 = 36.3 -> 36 at every slab: a room add-on never divides.
	for _, tier := range tiers {
		if got := tier.Categories[ThreeStars].SingleSupplement; got != 36 {
			t.Fatalf("pax %d: want single supplement 36, got %v", tier.Pax, got)
		}
	}
}

func TestZeroSlabSkipped(t *testing.T) {
	q := Quote{Pax: 2, TransportMode: TransportTotal, Days: []DayExpenses{day(nil)}}
	tiers := BuildPricingTable(q, []int{0, 2}, nil)
	if len(tiers) != 1 || tiers[0].Pax != 2 {
		t.Fatalf("zero slab must be dropped, got %+v", tiers)
	}
}

func TestNegativeMarkupPropagates(t *testing.T) {
	q := Quote{
		Pax: 1, Markup: -50, TransportMode: TransportTotal,
		Days: []DayExpenses{day(func(d *DayExpenses) {
			d.Meals = append(d.Meals, ExpenseItem{Price: 100})
		})},
	}
	if got := CalculateGrandTotals(q).GrandTotal; got != 50 {
		t.Fatalf("negative markup is arithmetic, not an error: want 50, got %v", got)
	}
}
