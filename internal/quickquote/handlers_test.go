package quickquote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-tour/internal/directory"
	"github.com/noah-isme/backend-tour/internal/pricing"
	"github.com/noah-isme/backend-tour/internal/quickquote"
)

type emptyDir struct{}

func (emptyDir) Hotels(ctx context.Context, city string) ([]directory.Hotel, error) {
	return []directory.Hotel{{City: city, Name: "Plaza", Category: pricing.FourStars, PricePerNight: 100}}, nil
}
func (emptyDir) Restaurants(context.Context, string) ([]directory.Restaurant, error) {
	return nil, nil
}
func (emptyDir) Tours(context.Context, string) ([]directory.Tour, error)         { return nil, nil }
func (emptyDir) Transfers(context.Context, string) ([]directory.Transfer, error) { return nil, nil }

func newRouter() http.Handler {
	h := quickquote.Handler{
		Builder:  quickquote.Builder{Dir: emptyDir{}},
		Validate: validator.New(),
		Slabs:    []int{2, 4},
	}
	r := chi.NewRouter()
	r.Post("/api/v1/quickquote", h.Generate)
	return r
}

func TestGenerateReturnsDraftWithPricing(t *testing.T) {
	body := `{"pax":4,"tourType":"SIC","transportPricingMode":"total","markup":10,"tax":8,"cities":[{"city":"Cusco","nights":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quickquote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var out quickquote.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Quote.Days, 2)
	require.Len(t, out.Pricing, 2)
	// 100 a night, two nights, x1.10 markup x1.08 tax = 237.6 -> rounded in the matrix.
	require.InDelta(t, 238, out.Pricing[0].Categories[pricing.FourStars].AdultPerPerson, 1e-9)
	require.InDelta(t, 237.6, out.Totals.FinalPerPerson, 1e-9)
}

func TestGenerateRejectsEmptyCities(t *testing.T) {
	body := `{"pax":2,"tourType":"SIC","transportPricingMode":"total","cities":[]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quickquote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
