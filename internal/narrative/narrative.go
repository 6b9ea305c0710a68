// Package narrative turns a day-by-day trip outline into the human-readable
// text placed at the top of exported itineraries. Generation is best-effort:
// exports must never fail because a text provider is down, so callers fall
// back to the canned generator on any error.
package narrative

import (
	"context"
	"fmt"
	"strings"

	"github.com/noah-isme/backend-tour/internal/obs"
)

// Request is the outline a generator writes from.
type Request struct {
	Title    string
	DayLines []string
}

// Generator produces itinerary prose from an outline.
type Generator interface {
	Narrate(ctx context.Context, req Request) (string, error)
}

// New returns the Gemini-backed generator when an API key is configured,
// otherwise the canned one.
func New(apiKey, model string) Generator {
	if strings.TrimSpace(apiKey) == "" {
		return Canned{}
	}
	return NewGemini(apiKey, model)
}

// Canned produces deterministic template prose. It is the fallback for
// every provider failure and the default when no API key is set.
type Canned struct{}

func (Canned) Narrate(_ context.Context, req Request) (string, error) {
	countResult("canned")
	var b strings.Builder
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "your trip"
	}
	fmt.Fprintf(&b, "Welcome to %s, a %d-day journey crafted for you.", title, len(req.DayLines))
	if len(req.DayLines) > 0 {
		b.WriteString(" Highlights include ")
		b.WriteString(strings.Join(firstN(req.DayLines, 3), "; "))
		b.WriteString(".")
	}
	return b.String(), nil
}

func firstN(lines []string, n int) []string {
	if len(lines) < n {
		n = len(lines)
	}
	return lines[:n]
}

func countResult(result string) {
	if obs.NarrativeRequestTotal != nil {
		obs.NarrativeRequestTotal.WithLabelValues(result).Inc()
	}
}
