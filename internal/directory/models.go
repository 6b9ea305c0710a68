package directory

import (
	"github.com/google/uuid"

	"github.com/noah-isme/backend-tour/internal/pricing"
)

// City is a destination the operator sells.
type City struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name" validate:"required,max=120"`
	Country string    `json:"country,omitempty"`
}

// Hotel is a bookable property in a city, tagged with the star category the
// pricing matrix segments on.
type Hotel struct {
	ID               uuid.UUID             `json:"id"`
	City             string                `json:"city" validate:"required"`
	Name             string                `json:"name" validate:"required,max=200"`
	Category         pricing.HotelCategory `json:"category" validate:"required,oneof='3 stars' '4 stars' '5 stars'"`
	PricePerNight    float64               `json:"pricePerNight" validate:"min=0"`
	SingleSupplement float64               `json:"singleSupplement" validate:"min=0"`
	Child6to11Rate   float64               `json:"child6to11Rate" validate:"min=0"`
}

// Restaurant supplies per-person meal pricing for the quick-quote builder.
type Restaurant struct {
	ID        uuid.UUID `json:"id"`
	City      string    `json:"city" validate:"required"`
	Name      string    `json:"name" validate:"required,max=200"`
	MealPrice float64   `json:"mealPrice" validate:"min=0"`
}

// Tour is a sightseeing product with per-person pricing.
type Tour struct {
	ID          uuid.UUID        `json:"id"`
	City        string           `json:"city" validate:"required"`
	Name        string           `json:"name" validate:"required,max=200"`
	Type        pricing.TourType `json:"type" validate:"required,oneof=SIC Private"`
	Price       float64          `json:"price" validate:"min=0"`
	EntranceFee float64          `json:"entranceFee" validate:"min=0"`
}

// Transfer is a vehicle-based movement cost: priced either as a flat total
// or per vehicle depending on the quote's transport mode.
type Transfer struct {
	ID              uuid.UUID `json:"id"`
	City            string    `json:"city" validate:"required"`
	Name            string    `json:"name" validate:"required,max=200"`
	Price           float64   `json:"price" validate:"min=0"`
	PricePerVehicle float64   `json:"pricePerVehicle" validate:"min=0"`
	VehicleSeats    int       `json:"vehicleSeats" validate:"min=0"`
}
