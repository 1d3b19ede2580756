package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-nutri-keeper/internal/config"
	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/recommend"
	"github.com/MKhiriev/go-nutri-keeper/internal/utils"
	"github.com/tidwall/gjson"
)

const defaultTemperature = 0.2

// rankingPaths are tried in order when looking for the ranking array inside
// a response object. Values found there may be the array itself or a string
// holding it.
var rankingPaths = []string{
	"candidates.0.content.parts.0.text",
	"choices.0.message.content",
	"structured",
	"parsed",
	"output",
	"text",
	"content",
	"items",
	"rankings",
	"recommendations",
}

// LLMRanker implements [recommend.Ranker] on top of a Gemini-compatible
// generateContent endpoint.
type LLMRanker struct {
	client      *utils.HTTPClient
	apiKey      string
	model       string
	temperature float64
}

var _ recommend.Ranker = (*LLMRanker)(nil)

// NewLLMRanker configures a ranker from cfg. It fails with [ErrMissingAPIKey]
// when no key is configured; callers then run without a ranker.
func NewLLMRanker(cfg config.LLM) (*LLMRanker, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid llm base url: %w", err)
	}

	temperature := defaultTemperature
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}

	client := utils.NewJSONClient(baseURL, cfg.Timeout)

	return &LLMRanker{client: client, apiKey: apiKey, model: cfg.Model, temperature: temperature}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
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

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig generationConfig  `json:"generationConfig"`
}

type generateContent struct {
	Role  string         `json:"role"`
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType"`
}

// Rank implements [recommend.Ranker]. The returned entries are not
// validated against the candidate set.
func (l *LLMRanker) Rank(ctx context.Context, prompt string) ([]recommend.RankedEntry, error) {
	log := logger.FromContext(ctx)

	body := generateRequest{
		Contents: []generateContent{{Role: "user", Parts: []generatePart{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:      l.temperature,
			ResponseMimeType: "application/json",
		},
	}

	resp, err := l.client.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", l.apiKey).
		SetPathParam("model", l.model).
		SetBody(body).
		Post("/models/{model}:generateContent")
	if err != nil {
		return nil, fmt.Errorf("llm request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Str("func", "*LLMRanker.Rank").Int("status", resp.StatusCode()).Msg("llm request rejected")
		return nil, err
	}

	entries, err := parseRankings(resp.Body())
	if err != nil {
		log.Warn().Err(err).Str("func", "*LLMRanker.Rank").Int("body_size", len(resp.Body())).Msg("unparsable llm response")
		return nil, err
	}

	log.Debug().Str("func", "*LLMRanker.Rank").Int("entries", len(entries)).Msg("llm ranking received")
	return entries, nil
}

// parseRankings extracts the ranking array from body wherever the provider
// put it.
func parseRankings(body []byte) ([]recommend.RankedEntry, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: response is not JSON", ErrMalformedResponse)
	}

	arr, ok := findRankingArray(gjson.ParseBytes(body), 0)
	if !ok {
		return nil, fmt.Errorf("%w: no ranking array", ErrMalformedResponse)
	}

	entries := make([]recommend.RankedEntry, 0)
	arr.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			return true
		}
		entries = append(entries, recommend.RankedEntry{
			ItemID:      v.Get("item_id").String(),
			Score:       scoreValue(v.Get("score")),
			Explanation: v.Get("explanation").String(),
		})
		return true
	})

	return entries, nil
}

// maxSearchDepth bounds the recursion through nested envelopes.
const maxSearchDepth = 8

func findRankingArray(v gjson.Result, depth int) (gjson.Result, bool) {
	if depth > maxSearchDepth {
		return gjson.Result{}, false
	}

	switch {
	case v.IsArray():
		elements := v.Array()
		if len(elements) == 0 || elements[0].Get("item_id").Exists() {
			return v, true
		}
		for _, el := range elements {
			if arr, ok := findRankingArray(el, depth+1); ok {
				return arr, true
			}
		}
	case v.Type == gjson.String:
		inner := stripCodeFence(v.Str)
		if gjson.Valid(inner) {
			return findRankingArray(gjson.Parse(inner), depth+1)
		}
	case v.IsObject():
		for _, path := range rankingPaths {
			if r := v.Get(path); r.Exists() {
				if arr, ok := findRankingArray(r, depth+1); ok {
					return arr, true
				}
			}
		}
	}

	return gjson.Result{}, false
}

// stripCodeFence removes a surrounding markdown code fence, if any.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}

func scoreValue(r gjson.Result) any {
	switch r.Type {
	case gjson.Number:
		return r.Num
	case gjson.String:
		return r.Str
	case gjson.Null:
		return nil
	default:
		return r.Value()
	}
}
