package quickquote

import (
	"context"
	"fmt"
	"time"

	"github.com/noah-isme/backend-tour/internal/directory"
	"github.com/noah-isme/backend-tour/internal/pricing"
)

// Directory is the lookup surface the builder matches records from.
type Directory interface {
	Hotels(ctx context.Context, city string) ([]directory.Hotel, error)
	Restaurants(ctx context.Context, city string) ([]directory.Restaurant, error)
	Tours(ctx context.Context, city string) ([]directory.Tour, error)
	Transfers(ctx context.Context, city string) ([]directory.Transfer, error)
}

// CityStay is one leg of a requested trip.
type CityStay struct {
	City   string `json:"city" validate:"required"`
	Nights int    `json:"nights" validate:"min=1"`
}

// Request describes the trip to assemble a draft quote for.
type Request struct {
	Pax           int                   `json:"pax" validate:"min=1"`
	TourType      pricing.TourType      `json:"tourType" validate:"required,oneof=SIC Private"`
	TransportMode pricing.TransportMode `json:"transportPricingMode" validate:"required,oneof=total vehicle"`
	Markup        float64               `json:"markup"`
	Tax           float64               `json:"tax" validate:"min=0"`
	StartDate     time.Time             `json:"startDate"`
	Stays         []CityStay            `json:"cities" validate:"min=1,dive"`
}

// Builder assembles a day-by-day expense ledger from directory records.
type Builder struct {
	Dir Directory
}

// Build matches hotels, meals, tours and transfers for every night of every
// stay and returns the assembled quote document. Cities with no records for
// a bucket simply contribute nothing there; the result is a draft the
// operator edits, not a booking.
func (b Builder) Build(ctx context.Context, req Request) (pricing.Quote, error) {
	q := pricing.Quote{
		Pax:           req.Pax,
		TourType:      req.TourType,
		Markup:        req.Markup,
		Tax:           req.Tax,
		TransportMode: req.TransportMode,
	}

	dayNumber := 0
	for _, stay := range req.Stays {
		hotels, err := b.Dir.Hotels(ctx, stay.City)
		if err != nil {
			return pricing.Quote{}, fmt.Errorf("match hotels in %s: %w", stay.City, err)
		}
		restaurants, err := b.Dir.Restaurants(ctx, stay.City)
		if err != nil {
			return pricing.Quote{}, fmt.Errorf("match restaurants in %s: %w", stay.City, err)
		}
		tours, err := b.Dir.Tours(ctx, stay.City)
		if err != nil {
			return pricing.Quote{}, fmt.Errorf("match tours in %s: %w", stay.City, err)
		}
		transfers, err := b.Dir.Transfers(ctx, stay.City)
		if err != nil {
			return pricing.Quote{}, fmt.Errorf("match transfers in %s: %w", stay.City, err)
		}

		matched := filterTours(tours, req.TourType)

		for night := 0; night < stay.Nights; night++ {
			dayNumber++
			day := pricing.DayExpenses{DayNumber: dayNumber}
			if !req.StartDate.IsZero() {
				day.Date = req.StartDate.AddDate(0, 0, dayNumber-1)
			}

			for _, h := range cheapestPerCategory(hotels) {
				day.HotelAccommodation = append(day.HotelAccommodation, pricing.ExpenseItem{
					Location:         stay.City,
					Description:      h.Name,
					Price:            h.PricePerNight,
					SingleSupplement: h.SingleSupplement,
					Child6to11:       h.Child6to11Rate,
					HotelCategory:    h.Category,
				})
			}

			if r := cheapestRestaurant(restaurants); r != nil {
				day.Meals = append(day.Meals,
					pricing.ExpenseItem{Location: stay.City, Description: "Lunch at " + r.Name, Price: r.MealPrice},
					pricing.ExpenseItem{Location: stay.City, Description: "Dinner at " + r.Name, Price: r.MealPrice},
				)
			}

			if len(matched) > 0 {
				tour := matched[night%len(matched)]
				if tour.EntranceFee > 0 {
					day.EntranceFees = append(day.EntranceFees, pricing.ExpenseItem{
						Location: stay.City, Description: tour.Name + " entrance", Price: tour.EntranceFee,
					})
				}
				item := pricing.ExpenseItem{Location: stay.City, Description: tour.Name, Price: tour.Price}
				if req.TourType == pricing.TourSIC {
					day.SICTourCost = append(day.SICTourCost, item)
				} else {
					day.Guide = append(day.Guide, item)
				}
			}

			// Arrival transfer on the first night in each city only.
			if night == 0 {
				if tr := firstTransfer(transfers); tr != nil {
					day.Transportation = append(day.Transportation, pricing.ExpenseItem{
						Location:        stay.City,
						Description:     tr.Name,
						Price:           tr.Price,
						PricePerVehicle: tr.PricePerVehicle,
						VehicleCount:    vehiclesFor(req.Pax, tr.VehicleSeats),
					})
				}
			}

			q.Days = append(q.Days, day)
		}
	}

	q.Normalize()
	return q, nil
}

// cheapestPerCategory keeps the lowest-priced hotel for each star category,
// returned in the fixed category display order.
func cheapestPerCategory(hotels []directory.Hotel) []directory.Hotel {
	best := make(map[pricing.HotelCategory]directory.Hotel, 3)
	for _, h := range hotels {
		cur, ok := best[h.Category]
		if !ok || h.PricePerNight < cur.PricePerNight {
			best[h.Category] = h
		}
	}
	out := make([]directory.Hotel, 0, len(best))
	for _, cat := range pricing.HotelCategories() {
		if h, ok := best[cat]; ok {
			out = append(out, h)
		}
	}
	return out
}

func cheapestRestaurant(restaurants []directory.Restaurant) *directory.Restaurant {
	var best *directory.Restaurant
	for i := range restaurants {
		if best == nil || restaurants[i].MealPrice < best.MealPrice {
			best = &restaurants[i]
		}
	}
	return best
}

func filterTours(tours []directory.Tour, tt pricing.TourType) []directory.Tour {
	var out []directory.Tour
	for _, t := range tours {
		if t.Type == tt {
			out = append(out, t)
		}
	}
	return out
}

func firstTransfer(transfers []directory.Transfer) *directory.Transfer {
	if len(transfers) == 0 {
		return nil
	}
	return &transfers[0]
}

func vehiclesFor(pax, seats int) int {
	if seats <= 0 {
		return 1
	}
	n := pax / seats
	if pax%seats != 0 {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}
