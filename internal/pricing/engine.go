package pricing

import "math"

// DayTotals aggregates one day of the ledger. PerPerson scales with PAX,
// General is a shared cost divided across PAX by the caller, and the
// surcharge totals are per-person add-ons that are never divided.
type DayTotals struct {
	PerPerson        float64 `json:"perPersonTotal"`
	General          float64 `json:"generalTotal"`
	SingleSupplement float64 `json:"singleSupplementTotal"`
	Child0to2        float64 `json:"child0to2Total"`
	Child3to5        float64 `json:"child3to5Total"`
	Child6to11       float64 `json:"child6to11Total"`
}

// Add accumulates another day's totals.
func (t *DayTotals) Add(other DayTotals) {
	t.PerPerson += other.PerPerson
	t.General += other.General
	t.SingleSupplement += other.SingleSupplement
	t.Child0to2 += other.Child0to2
	t.Child3to5 += other.Child3to5
	t.Child6to11 += other.Child6to11
}

// CalculateDayTotals reduces one day of the ledger to its totals. A non-empty
// filter restricts hotel accommodation items to the given category, which is
// how the pricing matrix segments hotel pricing; the empty filter sums every
// hotel item. Transportation items derive their effective price from mode.
func CalculateDayTotals(day DayExpenses, mode TransportMode, filter HotelCategory) DayTotals {
	var t DayTotals

	for _, it := range day.HotelAccommodation {
		if filter != "" && it.HotelCategory != filter {
			continue
		}
		t.PerPerson += it.Price
		t.SingleSupplement += it.SingleSupplement
		t.Child0to2 += it.Child0to2
		t.Child3to5 += it.Child3to5
		t.Child6to11 += it.Child6to11
	}
	for _, bucket := range [][]ExpenseItem{day.Meals, day.EntranceFees} {
		for _, it := range bucket {
			t.PerPerson += it.Price
			t.SingleSupplement += it.SingleSupplement
			t.Child0to2 += it.Child0to2
			t.Child3to5 += it.Child3to5
			t.Child6to11 += it.Child6to11
		}
	}
	// SIC tour cost carries child surcharges but no single supplement.
	for _, it := range day.SICTourCost {
		t.PerPerson += it.Price
		t.Child0to2 += it.Child0to2
		t.Child3to5 += it.Child3to5
		t.Child6to11 += it.Child6to11
	}
	for _, it := range day.Tips {
		t.PerPerson += it.Price
	}

	for _, it := range day.Transportation {
		t.General += it.TransportPrice(mode)
	}
	for _, bucket := range [][]ExpenseItem{day.Guide, day.GuideDriverAccommodation, day.Parking} {
		for _, it := range bucket {
			t.General += it.Price
		}
	}
	return t
}

// CategoryTotals is the priced result for one (PAX slab, hotel category)
// cell of the matrix. Adult and single-supplement amounts are rounded to
// whole currency units; child surcharges carry the free-of-charge marker
// when their raw total is exactly zero.
type CategoryTotals struct {
	AdultPerPerson   float64 `json:"adultPerPerson"`
	SingleSupplement float64 `json:"singleSupplement"`
	Child0to2        Charge  `json:"child0to2"`
	Child3to5        Charge  `json:"child3to5"`
	Child6to11       Charge  `json:"child6to11"`
}

// PaxTier is one row of the pricing matrix: every hotel category priced at
// one PAX slab.
type PaxTier struct {
	Pax        int                              `json:"pax"`
	Categories map[HotelCategory]CategoryTotals `json:"categories"`
}

// BuildPricingTable prices the quote at every (PAX slab, hotel category)
// combination. Shared costs divide by the slab's PAX, not the quote's stored
// PAX, so a single quote yields comparable pricing across group sizes. Slabs
// below 1 would divide by zero and are skipped.
func BuildPricingTable(q Quote, paxSlabs []int, categories []HotelCategory) []PaxTier {
	if len(categories) == 0 {
		categories = HotelCategories()
	}
	tiers := make([]PaxTier, 0, len(paxSlabs))
	for _, pax := range paxSlabs {
		if pax < 1 {
			continue
		}
		tier := PaxTier{Pax: pax, Categories: make(map[HotelCategory]CategoryTotals, len(categories))}
		for _, cat := range categories {
			tier.Categories[cat] = priceCategory(q, pax, cat)
		}
		tiers = append(tiers, tier)
	}
	return tiers
}

func priceCategory(q Quote, pax int, cat HotelCategory) CategoryTotals {
	var sum DayTotals
	for _, day := range q.Days {
		sum.Add(CalculateDayTotals(day, q.TransportMode, cat))
	}

	generalPerPerson := sum.General / float64(pax)
	adultCost := sum.PerPerson + generalPerPerson
	subtotal := adultCost * float64(pax)
	final := applyMarkupTax(subtotal, q.Markup, q.Tax)

	return CategoryTotals{
		AdultPerPerson:   roundMoney(final / float64(pax)),
		SingleSupplement: roundMoney(applyMarkupTax(sum.SingleSupplement, q.Markup, q.Tax)),
		Child0to2:        childCharge(sum.Child0to2, q.Markup, q.Tax),
		Child3to5:        childCharge(sum.Child3to5, q.Markup, q.Tax),
		Child6to11:       childCharge(sum.Child6to11, q.Markup, q.Tax),
	}
}

// childCharge prices a child surcharge total: exactly zero raw totals render
// free of charge, everything else gets the markup/tax layering and rounding.
func childCharge(raw, markup, tax float64) Charge {
	if raw == 0 {
		return FreeOfCharge()
	}
	return ChargeAmount(roundMoney(applyMarkupTax(raw, markup, tax)))
}

// applyMarkupTax layers operator markup then tax on top of an amount. Tax is
// applied to the marked-up amount, never combined additively with markup.
func applyMarkupTax(amount, markup, tax float64) float64 {
	withMarkup := amount * (1 + markup/100)
	return withMarkup * (1 + tax/100)
}

// roundMoney rounds to the nearest whole currency unit, half away from zero.
func roundMoney(x float64) float64 {
	return math.Round(x)
}

// GrandTotals is the authoritative single-PAX breakdown shown beside the
// editor and on the quote detail page.
type GrandTotals struct {
	TotalPerPerson   float64 `json:"totalPerPerson"`
	TotalGeneral     float64 `json:"totalGeneral"`
	GeneralPerPerson float64 `json:"generalPerPerson"`
	CostPerPerson    float64 `json:"costPerPerson"`
	Subtotal         float64 `json:"subtotal"`
	MarkupAmount     float64 `json:"markupAmount"`
	AfterMarkup      float64 `json:"afterMarkup"`
	TaxAmount        float64 `json:"taxAmount"`
	GrandTotal       float64 `json:"grandTotal"`
	FinalPerPerson   float64 `json:"finalPerPerson"`
}

// CalculateGrandTotals prices the quote at its own stored PAX with no hotel
// category filter. The final per-person value keeps full floating-point
// precision: the whole-unit rounding belongs to the matrix display path
// only, and the two surfaces intentionally disagree at the last digit.
func CalculateGrandTotals(q Quote) GrandTotals {
	pax := q.Pax
	if pax < 1 {
		pax = 1
	}

	var sum DayTotals
	for _, day := range q.Days {
		sum.Add(CalculateDayTotals(day, q.TransportMode, ""))
	}

	generalPerPerson := sum.General / float64(pax)
	costPerPerson := sum.PerPerson + generalPerPerson
	subtotal := costPerPerson * float64(pax)
	afterMarkup := subtotal * (1 + q.Markup/100)
	grandTotal := afterMarkup * (1 + q.Tax/100)

	return GrandTotals{
		TotalPerPerson:   sum.PerPerson,
		TotalGeneral:     sum.General,
		GeneralPerPerson: generalPerPerson,
		CostPerPerson:    costPerPerson,
		Subtotal:         subtotal,
		MarkupAmount:     afterMarkup - subtotal,
		AfterMarkup:      afterMarkup,
		TaxAmount:        grandTotal - afterMarkup,
		GrandTotal:       grandTotal,
		FinalPerPerson:   grandTotal / float64(pax),
	}
}

// AvailableHotelCategories reports which categories have at least one hotel
// option in any city, always in 3/4/5-star order. Categories with no hotels
// are omitted so callers can hide empty matrix columns instead of rendering
// zero-priced ones.
func AvailableHotelCategories(hotelsByCity map[string][]HotelCategory) []HotelCategory {
	present := make(map[HotelCategory]bool, 3)
	for _, cats := range hotelsByCity {
		for _, c := range cats {
			present[c] = true
		}
	}
	out := make([]HotelCategory, 0, 3)
	for _, c := range HotelCategories() {
		if present[c] {
			out = append(out, c)
		}
	}
	return out
}
