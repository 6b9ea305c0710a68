package quote

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/noah-isme/backend-tour/internal/common"
	"github.com/noah-isme/backend-tour/internal/obs"
)

// Handler exposes the quote editing and viewing endpoints.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
	PageSize int
}

// Create handles POST /api/v1/quotes.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeInput(w, r)
	if !ok {
		return
	}
	rec, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{"data": rec})
}

// List handles GET /api/v1/quotes.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := common.ParsePagination(r, h.pageSize())
	records, total, err := h.Svc.List(r.Context(), page, perPage)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if records == nil {
		records = []Record{}
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"data":       records,
		"pagination": common.Pagination{Page: page, PerPage: perPage, TotalItems: int(total)},
	})
}

// Get handles GET /api/v1/quotes/{id}: the saved-quote viewer. The response
// carries the authoritative unrounded totals beside the document.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	rec, totals, err := h.Svc.Detail(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	countPricing("quote_view")
	common.JSON(w, http.StatusOK, map[string]any{"data": rec, "totals": totals})
}

// Update handles PUT /api/v1/quotes/{id}: full-document replace on save.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	in, ok := h.decodeInput(w, r)
	if !ok {
		return
	}
	rec, err := h.Svc.Save(r.Context(), id, in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": rec})
}

// Delete handles DELETE /api/v1/quotes/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Preview handles POST /api/v1/quotes/preview: the editor's live total
// display. Nothing is persisted.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeInput(w, r)
	if !ok {
		return
	}
	countPricing("editor_preview")
	common.JSON(w, http.StatusOK, map[string]any{"data": h.Svc.Preview(in)})
}

// Pricing handles GET /api/v1/quotes/{id}/pricing: the PAX-slab comparison
// table. The slab set comes from the ?pax= query, defaulting to the editor's
// slab list.
func (h *Handler) Pricing(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	slabs := common.ParseIntList(r.URL.Query().Get("pax"))
	tiers, err := h.Svc.PricingMatrix(r.Context(), id, slabs)
	if err != nil {
		h.writeError(w, err)
		return
	}
	countPricing("pricing_matrix")
	common.JSON(w, http.StatusOK, map[string]any{"data": tiers})
}

func (h *Handler) decodeInput(w http.ResponseWriter, r *http.Request) (Input, bool) {
	var in Input
	if err := common.DecodeJSON(r, &in); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid quote payload", err.Error())
		return Input{}, false
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(in); err != nil {
			common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", "quote payload failed validation", err.Error())
			return Input{}, false
		}
	}
	return in, true
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid quote id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "quote not found", nil)
		return
	}
	if appErr, ok := common.AsAppError(err); ok {
		common.JSONError(w, appErr.HTTPStatus, appErr.Code, appErr.Message, appErr.Details)
		return
	}
	common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal server error", nil)
}

func (h *Handler) pageSize() int {
	if h.PageSize > 0 {
		return h.PageSize
	}
	return 20
}

func countPricing(surface string) {
	if obs.PricingComputeTotal != nil {
		obs.PricingComputeTotal.WithLabelValues(surface).Inc()
	}
}
