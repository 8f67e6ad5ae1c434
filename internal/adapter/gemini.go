package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/levelup/internal/config"
	"github.com/MKhiriev/levelup/internal/logger"
	"github.com/MKhiriev/levelup/internal/metrics"
	"github.com/MKhiriev/levelup/internal/utils"
	"github.com/MKhiriev/levelup/models"
)

type geminiGenerator struct {
	client *utils.HTTPClient

	model  string
	apiKey string

	logger *logger.Logger
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// text returns the first text part of the first candidate.
func (r generateContentResponse) text() (string, bool) {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return "", false
	}

	text := r.Candidates[0].Content.Parts[0].Text
	return text, text != ""
}

// NewGeminiGenerator constructs a [TextGenerator] calling the
// generateContent endpoint of cfg.Model at cfg.BaseURL.
//
// No retries are made. cfg.RequestTimeout bounds a single call when positive;
// otherwise only ctx and the transport defaults apply.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewGeminiGenerator(cfg config.AI, log *logger.Logger) (TextGenerator, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid text-generation base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &geminiGenerator{
		client: client,
		model:  cfg.Model,
		apiKey: cfg.APIKey,
		logger: log.WithComponent("gemini"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetAIResponse implements [TextGenerator].
func (g *geminiGenerator) GetAIResponse(ctx context.Context, prompt string) string {
	return g.Generate(ctx, prompt).Text
}

// Generate implements [TextGenerator]. It POSTs
// {"contents":[{"parts":[{"text":prompt}]}]} to
// /v1/models/{model}:generateContent and extracts
// candidates[0].content.parts[0].text.
//
// A 2xx body that is not JSON yields [FallbackSummary]; every other failure
// yields [FallbackGeneral].
func (g *geminiGenerator) Generate(ctx context.Context, prompt string) models.Generation {
	if strings.TrimSpace(prompt) == "" {
		g.logger.Error().Msg("AI API error: empty prompt")
		return g.fallback(FallbackGeneral, models.ReasonEmptyPrompt)
	}

	body := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", g.apiKey).
		SetBody(body).
		Post("/v1/models/" + g.model + ":generateContent")
	if err != nil {
		g.logger.Err(err).Msg("AI API error: request failed")
		return g.fallback(FallbackGeneral, models.ReasonTransport)
	}

	if err = mapHTTPError(resp); err != nil {
		var errorData any
		_ = json.Unmarshal(resp.Body(), &errorData)

		g.logger.Error().
			Err(err).
			Int("status", resp.StatusCode()).
			Str("status_text", resp.Status()).
			Any("error", errorData).
			Msg("AI API error: unexpected status")
		return g.fallback(FallbackGeneral, models.ReasonBadStatus)
	}

	var raw any
	if err = json.Unmarshal(resp.Body(), &raw); err != nil {
		g.logger.Err(err).Msg("AI API error: failed to parse response")
		return g.fallback(FallbackSummary, models.ReasonUnparseableBody)
	}

	var envelope generateContentResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		g.logger.Error().Err(err).Any("data", raw).Msg("AI API error: invalid response structure")
		return g.fallback(FallbackGeneral, models.ReasonMissingText)
	}

	text, ok := envelope.text()
	if !ok {
		g.logger.Error().Any("data", raw).Msg("AI API error: invalid response structure")
		return g.fallback(FallbackGeneral, models.ReasonMissingText)
	}

	metrics.AIRequests.WithLabelValues("ok").Inc()
	return models.Generated(text)
}

func (g *geminiGenerator) fallback(text string, reason models.FallbackReason) models.Generation {
	metrics.AIRequests.WithLabelValues("fallback").Inc()
	metrics.AIFallbacks.WithLabelValues(string(reason)).Inc()
	return models.FallbackGeneration(text, reason)
}
