package main

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-tour/internal/directory"
	"github.com/noah-isme/backend-tour/internal/pricing"
)

// Seeds the directory tables with a small Peru dataset so the quick-quote
// builder has something to price against on a fresh database.
func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("no .env file found, relying on environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal().Msg("DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("open database pool")
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal().Err(err).Msg("ping database")
	}

	store := directory.Store{Pool: pool}
	svc := directory.Service{Repo: store}

	seedCities(ctx, logger, svc)
	seedHotels(ctx, logger, svc)
	seedRestaurants(ctx, logger, svc)
	seedTours(ctx, logger, svc)
	seedTransfers(ctx, logger, svc)

	logger.Info().Msg("seeding completed")
}

func seedCities(ctx context.Context, logger zerolog.Logger, svc directory.Service) {
	cities := []directory.City{
		{Name: "Lima", Country: "Peru"},
		{Name: "Cusco", Country: "Peru"},
		{Name: "Arequipa", Country: "Peru"},
		{Name: "Puno", Country: "Peru"},
	}
	for _, c := range cities {
		if _, err := svc.AddCity(ctx, c); err != nil {
			logger.Fatal().Err(err).Str("city", c.Name).Msg("seed city")
		}
	}
	logger.Info().Int("count", len(cities)).Msg("seeded cities")
}

func seedHotels(ctx context.Context, logger zerolog.Logger, svc directory.Service) {
	hotels := []directory.Hotel{
		{City: "Lima", Name: "Hostal del Centro", Category: pricing.ThreeStars, PricePerNight: 55, SingleSupplement: 25, Child6to11Rate: 28},
		{City: "Lima", Name: "Casa Miraflores", Category: pricing.FourStars, PricePerNight: 95, SingleSupplement: 45, Child6to11Rate: 48},
		{City: "Lima", Name: "Gran Costanera", Category: pricing.FiveStars, PricePerNight: 180, SingleSupplement: 90, Child6to11Rate: 90},
		{City: "Cusco", Name: "Hostal Qorikancha", Category: pricing.ThreeStars, PricePerNight: 48, SingleSupplement: 22, Child6to11Rate: 24},
		{City: "Cusco", Name: "Plaza de Armas Inn", Category: pricing.FourStars, PricePerNight: 88, SingleSupplement: 40, Child6to11Rate: 44},
		{City: "Cusco", Name: "Palacio Inka", Category: pricing.FiveStars, PricePerNight: 210, SingleSupplement: 105, Child6to11Rate: 0},
		{City: "Arequipa", Name: "Casona del Misti", Category: pricing.ThreeStars, PricePerNight: 42, SingleSupplement: 20, Child6to11Rate: 21},
		{City: "Arequipa", Name: "Monasterio Suites", Category: pricing.FourStars, PricePerNight: 80, SingleSupplement: 38, Child6to11Rate: 40},
		{City: "Puno", Name: "Titicaca Lodge", Category: pricing.ThreeStars, PricePerNight: 50, SingleSupplement: 24, Child6to11Rate: 25},
	}
	for _, h := range hotels {
		if _, err := svc.AddHotel(ctx, h); err != nil {
			logger.Fatal().Err(err).Str("hotel", h.Name).Msg("seed hotel")
		}
	}
	logger.Info().Int("count", len(hotels)).Msg("seeded hotels")
}

func seedRestaurants(ctx context.Context, logger zerolog.Logger, svc directory.Service) {
	restaurants := []directory.Restaurant{
		{City: "Lima", Name: "El Mercado Criollo", MealPrice: 18},
		{City: "Lima", Name: "Cevicheria del Puerto", MealPrice: 24},
		{City: "Cusco", Name: "Pachamama Grill", MealPrice: 15},
		{City: "Cusco", Name: "Sabores Andinos", MealPrice: 20},
		{City: "Arequipa", Name: "Picanteria La Nueva", MealPrice: 14},
		{City: "Puno", Name: "Balcones del Lago", MealPrice: 16},
	}
	for _, r := range restaurants {
		if _, err := svc.AddRestaurant(ctx, r); err != nil {
			logger.Fatal().Err(err).Str("restaurant", r.Name).Msg("seed restaurant")
		}
	}
	logger.Info().Int("count", len(restaurants)).Msg("seeded restaurants")
}

func seedTours(ctx context.Context, logger zerolog.Logger, svc directory.Service) {
	tours := []directory.Tour{
		{City: "Lima", Name: "Colonial City Walk", Type: pricing.TourSIC, Price: 28, EntranceFee: 10},
		{City: "Lima", Name: "Private Gastronomy Tour", Type: pricing.TourPrivate, Price: 120, EntranceFee: 0},
		{City: "Cusco", Name: "Sacred Valley Day Trip", Type: pricing.TourSIC, Price: 45, EntranceFee: 25},
		{City: "Cusco", Name: "Machu Picchu by Rail", Type: pricing.TourSIC, Price: 190, EntranceFee: 55},
		{City: "Cusco", Name: "Private Moray and Salt Mines", Type: pricing.TourPrivate, Price: 160, EntranceFee: 18},
		{City: "Arequipa", Name: "Colca Canyon Overlook", Type: pricing.TourSIC, Price: 38, EntranceFee: 12},
		{City: "Puno", Name: "Uros Floating Islands", Type: pricing.TourSIC, Price: 30, EntranceFee: 8},
	}
	for _, t := range tours {
		if _, err := svc.AddTour(ctx, t); err != nil {
			logger.Fatal().Err(err).Str("tour", t.Name).Msg("seed tour")
		}
	}
	logger.Info().Int("count", len(tours)).Msg("seeded tours")
}

func seedTransfers(ctx context.Context, logger zerolog.Logger, svc directory.Service) {
	transfers := []directory.Transfer{
		{City: "Lima", Name: "Airport to Miraflores", Price: 35, PricePerVehicle: 30, VehicleSeats: 3},
		{City: "Cusco", Name: "Airport to Historic Centre", Price: 20, PricePerVehicle: 18, VehicleSeats: 3},
		{City: "Arequipa", Name: "Airport to Plaza", Price: 18, PricePerVehicle: 15, VehicleSeats: 3},
		{City: "Puno", Name: "Juliaca Airport to Puno", Price: 40, PricePerVehicle: 35, VehicleSeats: 4},
	}
	for _, t := range transfers {
		if _, err := svc.AddTransfer(ctx, t); err != nil {
			logger.Fatal().Err(err).Str("transfer", t.Name).Msg("seed transfer")
		}
	}
	logger.Info().Int("count", len(transfers)).Msg("seeded transfers")
}
