package narrative

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCannedMentionsTitleAndDayCount(t *testing.T) {
	out, err := Canned{}.Narrate(context.Background(), Request{
		Title:    "Andes Explorer",
		DayLines: []string{"Cusco city tour", "Sacred Valley", "Machu Picchu"},
	})
	require.NoError(t, err)
	require.Contains(t, out, "Andes Explorer")
	require.Contains(t, out, "3-day")
	require.Contains(t, out, "Machu Picchu")
}

func TestNewFallsBackToCannedWithoutKey(t *testing.T) {
	g := New("", "whatever")
	_, ok := g.(Canned)
	require.True(t, ok)
}

func TestGeminiParsesProviderResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  A wonderful journey awaits.  "}]}}]}`))
	}))
	defer srv.Close()

	g := NewGemini("test-key", "test-model")
	g.BaseURL = srv.URL

	out, err := g.Narrate(context.Background(), Request{Title: "Test", DayLines: []string{"Cusco"}})
	require.NoError(t, err)
	require.Equal(t, "A wonderful journey awaits.", out)
}

func TestGeminiSurfacesProviderErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewGemini("test-key", "test-model")
	g.BaseURL = srv.URL

	_, err := g.Narrate(context.Background(), Request{Title: "Test"})
	require.Error(t, err)
}
