package pricing

import "time"

// HotelCategory segments hotel accommodation pricing by star rating.
type HotelCategory string

// Hotel categories in display order.
const (
	ThreeStars HotelCategory = "3 stars"
	FourStars  HotelCategory = "4 stars"
	FiveStars  HotelCategory = "5 stars"
)

// HotelCategories lists all known categories in their fixed display order.
func HotelCategories() []HotelCategory {
	return []HotelCategory{ThreeStars, FourStars, FiveStars}
}

// TourType distinguishes seat-in-coach from private tours. It affects which
// categories are meaningful to the operator, not the arithmetic.
type TourType string

const (
	TourSIC     TourType = "SIC"
	TourPrivate TourType = "Private"
)

// TransportMode selects how transportation items derive their effective price.
type TransportMode string

const (
	// TransportTotal prices transportation items by their plain price field.
	TransportTotal TransportMode = "total"
	// TransportPerVehicle prices transportation items as vehicleCount x pricePerVehicle.
	TransportPerVehicle TransportMode = "vehicle"
)

// ExpenseItem is one line item within a category bucket on a given day.
// Optional amounts left at zero contribute nothing.
type ExpenseItem struct {
	Location         string        `json:"location"`
	Description      string        `json:"description"`
	Price            float64       `json:"price"`
	SingleSupplement float64       `json:"singleSupplement,omitempty"`
	Child0to2        float64       `json:"child0to2,omitempty"`
	Child3to5        float64       `json:"child3to5,omitempty"`
	Child6to11       float64       `json:"child6to11,omitempty"`
	VehicleCount     int           `json:"vehicleCount,omitempty"`
	PricePerVehicle  float64       `json:"pricePerVehicle,omitempty"`
	HotelCategory    HotelCategory `json:"hotelCategory,omitempty"`
}

// TransportPrice returns the effective price of a transportation item under
// the given mode. Per-vehicle mode ignores the plain price field entirely.
func (it ExpenseItem) TransportPrice(mode TransportMode) float64 {
	if mode == TransportPerVehicle {
		return float64(it.VehicleCount) * it.PricePerVehicle
	}
	return it.Price
}

// DayExpenses is one calendar day of a trip. The per-person buckets scale
// linearly with PAX; the general buckets are shared costs divided across PAX.
type DayExpenses struct {
	DayNumber int       `json:"dayNumber"`
	Date      time.Time `json:"date"`

	// Per-person categories.
	HotelAccommodation []ExpenseItem `json:"hotelAccommodation"`
	Meals              []ExpenseItem `json:"meals"`
	EntranceFees       []ExpenseItem `json:"entranceFees"`
	SICTourCost        []ExpenseItem `json:"sicTourCost"`
	Tips               []ExpenseItem `json:"tips"`

	// General (shared) categories.
	Transportation           []ExpenseItem `json:"transportation"`
	Guide                    []ExpenseItem `json:"guide"`
	GuideDriverAccommodation []ExpenseItem `json:"guideDriverAccommodation"`
	Parking                  []ExpenseItem `json:"parking"`
}

// Normalize replaces nil category buckets with empty slices. Buckets are
// never nil on a well-formed day; decoding legacy documents can leave them so.
func (d *DayExpenses) Normalize() {
	for _, bucket := range []*[]ExpenseItem{
		&d.HotelAccommodation, &d.Meals, &d.EntranceFees, &d.SICTourCost, &d.Tips,
		&d.Transportation, &d.Guide, &d.GuideDriverAccommodation, &d.Parking,
	} {
		if *bucket == nil {
			*bucket = []ExpenseItem{}
		}
	}
}

// Quote is the aggregate priced by the engine: the full day-by-day ledger
// plus the parameters every computation needs. It owns its days; days own
// their items.
type Quote struct {
	Pax           int           `json:"pax"`
	TourType      TourType      `json:"tourType"`
	Markup        float64       `json:"markup"`
	Tax           float64       `json:"tax"`
	TransportMode TransportMode `json:"transportPricingMode"`
	Days          []DayExpenses `json:"days"`
}

// Normalize applies DayExpenses.Normalize to every day.
func (q *Quote) Normalize() {
	if q.Days == nil {
		q.Days = []DayExpenses{}
	}
	for i := range q.Days {
		q.Days[i].Normalize()
	}
}
