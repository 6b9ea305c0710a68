package itinerary

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/noah-isme/backend-tour/internal/common"
	"github.com/noah-isme/backend-tour/internal/obs"
	"github.com/noah-isme/backend-tour/internal/quote"
)

// Handler serves itinerary exports for saved quotes.
type Handler struct {
	Svc Service
}

// Export returns the itinerary document as JSON.
func (h Handler) Export(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	started := time.Now()
	doc, err := h.Svc.Export(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	observeRender("json", started)

	common.JSON(w, http.StatusOK, doc)
}

// ExportPDF renders the itinerary document as a downloadable PDF.
func (h Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	started := time.Now()
	doc, err := h.Svc.Export(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	data, filename, err := RenderPDF(doc)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("quote_id", id.String()).Msg("itinerary pdf render failed")
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal server error", nil)
		return
	}
	observeRender("pdf", started)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid quote id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, quote.ErrNotFound) {
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "quote not found", nil)
		return
	}
	if appErr, ok := common.AsAppError(err); ok {
		common.JSONError(w, appErr.HTTPStatus, appErr.Code, appErr.Message, appErr.Details)
		return
	}
	common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal server error", nil)
}

func observeRender(format string, started time.Time) {
	if obs.ExportRenderDuration != nil {
		obs.ExportRenderDuration.WithLabelValues(format).Observe(obs.DurationMillis(time.Since(started)))
	}
}
