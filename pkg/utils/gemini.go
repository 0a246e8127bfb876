package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
	"swoon/internal/models/request_models"
)

// ExtractionClientInterface turns a crawled venue's raw markdown into the
// structured attributes the catalog stores.
type ExtractionClientInterface interface {
	ExtractVenue(ctx context.Context, rawMarkdown string) (*request_models.VenueExtraction, error)
}

type GeminiExtractionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiExtractionClient(apiKey, model string) (ExtractionClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiExtractionClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiExtractionClient) ExtractVenue(ctx context.Context, rawMarkdown string) (*request_models.VenueExtraction, error) {
	if strings.TrimSpace(rawMarkdown) == "" {
		return nil, fmt.Errorf("empty markdown")
	}

	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)

	schema := `
{
  "name": "string",
  "description": "string (2-3 sentences)",
  "pricing_tier": "low|medium|high|luxury",
  "is_wedding_venue": true,
  "is_estate": false,
  "is_historic": false,
  "has_lodging": false,
  "has_garden": false,
  "is_waterfront": false
}`

	prompt := fmt.Sprintf(`
You are extracting wedding venue attributes from a scraped web page.
Return **JSON only** that exactly matches the schema below. Set
"is_wedding_venue" to false if the page is not about a venue that hosts
weddings. Infer "pricing_tier" from any price signals; default "medium".

Schema (match keys exactly):
%s

Page markdown:
%s`, schema, rawMarkdown)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	raw, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("unexpected gemini response part")
	}

	var out request_models.VenueExtraction
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("parse gemini JSON: %w", err)
	}

	switch out.PricingTier {
	case "low", "medium", "high", "luxury":
	default:
		out.PricingTier = "medium"
	}

	return &out, nil
}
