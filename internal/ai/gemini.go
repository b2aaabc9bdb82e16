package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"carmarket/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrEmptyResponse is returned when the model answers with no text.
var ErrEmptyResponse = errors.New("empty response from model")

// Gemini generates content with the Gemini API.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGemini creates a Gemini-backed generator for the named model.
func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.4)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	return &Gemini{client: client, model: model}, nil
}

// Close releases the underlying client.
func (g *Gemini) Close() error {
	return g.client.Close()
}

func (g *Gemini) ListingDetails(ctx context.Context, req *models.ListingDetailsRequest, photos []Image) (*models.ListingDetails, error) {
	var out models.ListingDetails
	if err := g.generate(ctx, listingDetailsPrompt(req, len(photos)), photos, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *Gemini) AssessCondition(ctx context.Context, photos []Image, notes string) (*models.ConditionReport, error) {
	var out models.ConditionReport
	if err := g.generate(ctx, conditionPrompt(notes, len(photos)), photos, &out); err != nil {
		return nil, err
	}
	if out.Issues == nil {
		out.Issues = []string{}
	}
	return &out, nil
}

func (g *Gemini) SuggestPrice(ctx context.Context, req *models.PriceSuggestionRequest) (*models.PriceSuggestion, error) {
	var out models.PriceSuggestion
	if err := g.generate(ctx, pricePrompt(req), nil, &out); err != nil {
		return nil, err
	}
	if out.Currency == "" {
		out.Currency = DefaultCurrency
	}
	return &out, nil
}

func (g *Gemini) SearchFilters(ctx context.Context, query string) (*models.SearchFilters, error) {
	var out models.SearchFilters
	if err := g.generate(ctx, searchPrompt(query), nil, &out); err != nil {
		return nil, err
	}
	if out.Keywords == nil {
		out.Keywords = []string{}
	}
	return &out, nil
}

func (g *Gemini) generate(ctx context.Context, prompt string, photos []Image, out interface{}) error {
	parts := make([]genai.Part, 0, len(photos)+1)
	parts = append(parts, genai.Text(prompt))
	for _, p := range photos {
		parts = append(parts, genai.ImageData(p.Format(), p.Data))
	}

	resp, err := g.model.GenerateContent(ctx, parts...)
	if err != nil {
		return err
	}

	text := responseText(resp)
	if text == "" {
		return ErrEmptyResponse
	}

	if err := json.Unmarshal([]byte(stripCodeFence(text)), out); err != nil {
		return fmt.Errorf("failed to parse model output: %w", err)
	}
	return nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return strings.TrimSpace(b.String())
}

// stripCodeFence removes a ```json fence some models wrap around JSON output.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
