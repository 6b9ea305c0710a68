package directory

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/noah-isme/backend-tour/internal/common"
)

// Handler exposes the directory over HTTP.
type Handler struct {
	Svc      Service
	Validate *validator.Validate
}

// Routes mounts the directory endpoints on r.
func (h Handler) Routes(r chi.Router) {
	r.Get("/cities", h.ListCities)
	r.Post("/cities", h.CreateCity)
	r.Delete("/cities/{id}", h.DeleteCity)

	r.Get("/hotels", h.ListHotels)
	r.Post("/hotels", h.CreateHotel)
	r.Delete("/hotels/{id}", h.DeleteHotel)
	r.Get("/hotels/categories", h.HotelCategories)

	r.Get("/restaurants", h.ListRestaurants)
	r.Post("/restaurants", h.CreateRestaurant)
	r.Delete("/restaurants/{id}", h.DeleteRestaurant)

	r.Get("/tours", h.ListTours)
	r.Post("/tours", h.CreateTour)
	r.Delete("/tours/{id}", h.DeleteTour)

	r.Get("/transfers", h.ListTransfers)
	r.Post("/transfers", h.CreateTransfer)
	r.Delete("/transfers/{id}", h.DeleteTransfer)
}

func (h Handler) ListCities(w http.ResponseWriter, r *http.Request) {
	out, err := h.Svc.Cities(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, out)
}

func (h Handler) CreateCity(w http.ResponseWriter, r *http.Request) {
	var in City
	if !h.decode(w, r, &in) {
		return
	}
	out, err := h.Svc.AddCity(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	common.JSON(w, http.StatusCreated, out)
}

func (h Handler) DeleteCity(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.Svc.RemoveCity)
}

func (h Handler) ListHotels(w http.ResponseWriter, r *http.Request) {
	out, err := h.Svc.Hotels(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, out)
}

func (h Handler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	var in Hotel
	if !h.decode(w, r, &in) {
		return
	}
	out, err := h.Svc.AddHotel(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	common.JSON(w, http.StatusCreated, out)
}

func (h Handler) DeleteHotel(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.Svc.RemoveHotel)
}

// HotelCategories answers which star categories the named cities can all
// serve. Cities come as a comma-separated "cities" query parameter; with
// none given the whole directory is considered.
func (h Handler) HotelCategories(w http.ResponseWriter, r *http.Request) {
	var cities []string
	if raw := r.URL.Query().Get("cities"); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cities = append(cities, c)
			}
		}
	}
	out, err := h.Svc.HotelCategories(r.Context(), cities)
	if err != nil {
		writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"categories": out})
}

func (h Handler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	out, err := h.Svc.Restaurants(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, out)
}

func (h Handler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	var in Restaurant
	if !h.decode(w, r, &in) {
		return
	}
	out, err := h.Svc.AddRestaurant(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	common.JSON(w, http.StatusCreated, out)
}

func (h Handler) DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.Svc.RemoveRestaurant)
}

func (h Handler) ListTours(w http.ResponseWriter, r *http.Request) {
	out, err := h.Svc.Tours(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, out)
}

func (h Handler) CreateTour(w http.ResponseWriter, r *http.Request) {
	var in Tour
	if !h.decode(w, r, &in) {
		return
	}
	out, err := h.Svc.AddTour(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	common.JSON(w, http.StatusCreated, out)
}

func (h Handler) DeleteTour(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.Svc.RemoveTour)
}

func (h Handler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	out, err := h.Svc.Transfers(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, out)
}

func (h Handler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	var in Transfer
	if !h.decode(w, r, &in) {
		return
	}
	out, err := h.Svc.AddTransfer(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	common.JSON(w, http.StatusCreated, out)
}

func (h Handler) DeleteTransfer(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.Svc.RemoveTransfer)
}

func (h Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := common.DecodeJSON(r, dst); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", err.Error())
		return false
	}
	if err := h.Validate.Struct(dst); err != nil {
		common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", "directory payload failed validation", err.Error())
		return false
	}
	return true
}

func (h Handler) remove(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid id", nil)
		return
	}
	if err := fn(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "directory entry not found", nil)
		return
	}
	if appErr, ok := common.AsAppError(err); ok {
		common.JSONError(w, appErr.HTTPStatus, appErr.Code, appErr.Message, appErr.Details)
		return
	}
	common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal server error", nil)
}
