package itinerary

import (
	"strconv"

	"github.com/noah-isme/backend-tour/internal/pricing"
)

// CategoryView is the per-category pricing block of one PAX tier. Double and
// triple occupancy carry the same per-person rate; the distinction exists only
// in the exported document layout.
type CategoryView struct {
	Double           float64 `json:"double"`
	Triple           float64 `json:"triple"`
	SingleSupplement float64 `json:"singleSupplement"`
}

// TierView is one PAX tier of the exported pricing block. Categories with no
// hotel options anywhere in the trip are omitted rather than zero-priced.
type TierView struct {
	ThreeStar *CategoryView `json:"threestar,omitempty"`
	FourStar  *CategoryView `json:"fourstar,omitempty"`
	FiveStar  *CategoryView `json:"fivestar,omitempty"`
}

// PaxTiers reshapes the pricing matrix into the export document's map, keyed
// by PAX count as a string. This is a presentation transform only; all
// numbers come from the matrix unchanged.
func PaxTiers(tiers []pricing.PaxTier, available []pricing.HotelCategory) map[string]TierView {
	avail := make(map[pricing.HotelCategory]bool, len(available))
	for _, c := range available {
		avail[c] = true
	}

	out := make(map[string]TierView, len(tiers))
	for _, tier := range tiers {
		var view TierView
		for cat, totals := range tier.Categories {
			if !avail[cat] {
				continue
			}
			cv := &CategoryView{
				Double:           totals.AdultPerPerson,
				Triple:           totals.AdultPerPerson,
				SingleSupplement: totals.SingleSupplement,
			}
			switch cat {
			case pricing.ThreeStars:
				view.ThreeStar = cv
			case pricing.FourStars:
				view.FourStar = cv
			case pricing.FiveStars:
				view.FiveStar = cv
			}
		}
		out[strconv.Itoa(tier.Pax)] = view
	}
	return out
}

// hotelCategoriesInLedger groups the hotel categories appearing in the
// quote's own ledger by city, feeding available-category detection.
func hotelCategoriesInLedger(q pricing.Quote) map[string][]pricing.HotelCategory {
	byCity := make(map[string][]pricing.HotelCategory)
	for _, day := range q.Days {
		for _, item := range day.HotelAccommodation {
			if item.HotelCategory == "" {
				continue
			}
			byCity[item.Location] = append(byCity[item.Location], item.HotelCategory)
		}
	}
	return byCity
}
