package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/noah-isme/backend-tour/internal/resilience"
)

const defaultModel = "gemini-2.0-flash"

// Gemini calls the Google Generative Language API to write itinerary prose.
// Calls go through a circuit breaker so a flapping provider degrades exports
// to canned prose instead of piling up 30s timeouts.
type Gemini struct {
	APIKey  string
	Model   string
	BaseURL string
	Client  resilience.HTTPClient
}

// NewGemini constructs a Gemini generator with sane defaults.
func NewGemini(apiKey, model string) *Gemini {
	if model == "" {
		model = defaultModel
	}
	return &Gemini{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: "https://generativelanguage.googleapis.com",
		Client: resilience.HTTPClient{
			Client:      &http.Client{Timeout: 30 * time.Second},
			Breaker:     resilience.NewBreaker(5, 0.6, 30*time.Second).WithTarget("gemini"),
			MaxAttempts: 2,
			BaseBackoff: 250 * time.Millisecond,
			Jitter:      0.2,
		},
	}
}

func (g *Gemini) Narrate(ctx context.Context, req Request) (string, error) {
	if g.APIKey == "" {
		countResult("error")
		return "", errors.New("narrative: missing API key")
	}

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": buildPrompt(req)}}},
		},
		"generationConfig": map[string]any{
			"temperature":     0.7,
			"maxOutputTokens": 1024,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		countResult("error")
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.BaseURL, g.Model, g.APIKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		countResult("error")
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(ctx, httpReq)
	if err != nil {
		countResult("error")
		return "", fmt.Errorf("narrative: call provider: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		countResult("error")
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		countResult("error")
		return "", fmt.Errorf("narrative: provider status %d", resp.StatusCode)
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		countResult("error")
		return "", err
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		countResult("error")
		return "", errors.New("narrative: empty provider response")
	}

	countResult("ok")
	return strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text), nil
}

func buildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("Write a short, warm introduction (one paragraph, plain text, no markup) for a travel itinerary titled ")
	fmt.Fprintf(&b, "%q. The day-by-day outline is:\n", req.Title)
	for i, line := range req.DayLines {
		fmt.Fprintf(&b, "Day %d: %s\n", i+1, line)
	}
	b.WriteString("Do not invent places that are not in the outline.")
	return b.String()
}
