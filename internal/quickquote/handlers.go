package quickquote

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/backend-tour/internal/common"
	"github.com/noah-isme/backend-tour/internal/obs"
	"github.com/noah-isme/backend-tour/internal/pricing"
	"github.com/noah-isme/backend-tour/internal/quote"
)

// Handler serves the quick-quote generator: one POST that matches directory
// records and returns a draft document with its pricing matrix and totals.
type Handler struct {
	Builder  Builder
	Validate *validator.Validate
	Slabs    []int
}

// Response bundles what the editor needs to seed itself from a draft.
type Response struct {
	Quote   pricing.Quote       `json:"quote"`
	Pricing []pricing.PaxTier   `json:"pricing"`
	Totals  pricing.GrandTotals `json:"totals"`
}

func (h Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := common.DecodeJSON(r, &req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid quick-quote payload", err.Error())
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", "quick-quote payload failed validation", err.Error())
		return
	}

	doc, err := h.Builder.Build(r.Context(), req)
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal server error", nil)
		return
	}

	slabs := quote.SanitizeSlabs(h.Slabs, nil)
	if obs.PricingComputeTotal != nil {
		obs.PricingComputeTotal.WithLabelValues("quick_quote").Inc()
	}
	common.JSON(w, http.StatusOK, Response{
		Quote:   doc,
		Pricing: pricing.BuildPricingTable(doc, slabs, nil),
		Totals:  pricing.CalculateGrandTotals(doc),
	})
}
