// Package jobanalyzer extracts structured job fields from scraped posting
// text via the OpenAI chat completion API.
package jobanalyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-jobtracker-backend/internal/domain"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared/constant"
)

// maxInputChars bounds the text sent to the model; longer postings are
// truncated, never rejected.
const maxInputChars = 15000

const systemPrompt = `You are a job analyzer. Extract the following fields from the job description in JSON format:
- description (summary, max 200 words)
- company
- country
- industry (guess from list: iGaming, SaaS, FinTech, E-commerce, HealthTech, EdTech, Other)
- format (remote, hybrid, office)
- position

Response must be a valid JSON object.`

// Analyzer implements domain.JobAnalyzer on top of OpenAI.
type Analyzer struct {
	client      *openai.Client
	model       string
	temperature float64
}

// NewAnalyzer creates a job posting analyzer
func NewAnalyzer(apiKey, model string, temperature float64) *Analyzer {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &Analyzer{
		client:      &client,
		model:       model,
		temperature: temperature,
	}
}

// Analyze sends the posting text to the model and returns the validated
// extraction. The model's output is schema-checked before it is exposed.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*domain.JobAnalysis, error) {
	if len(text) > maxInputChars {
		text = text[:maxInputChars]
	}

	completion, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(text),
		},
		Model: openai.ChatModel(a.model),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{
				Type: constant.JSONObject("json_object"),
			},
		},
		Temperature: openai.Float(a.temperature),
	})

	if err != nil {
		return nil, fmt.Errorf("openai api error: %w", err)
	}

	if len(completion.Choices) == 0 {
		return nil, errors.New("no response from openai")
	}

	return parseAnalysis([]byte(completion.Choices[0].Message.Content))
}

// rawAnalysis uses pointers to tell "field absent" apart from "empty string".
type rawAnalysis struct {
	Description *string `json:"description"`
	Company     *string `json:"company"`
	Country     *string `json:"country"`
	Industry    *string `json:"industry"`
	Format      *string `json:"format"`
	Position    *string `json:"position"`
}

// parseAnalysis validates the model output against the expected shape:
// all six fields present as strings.
func parseAnalysis(content []byte) (*domain.JobAnalysis, error) {
	var raw rawAnalysis
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("model returned invalid JSON: %w", err)
	}

	missing := ""
	switch {
	case raw.Description == nil:
		missing = "description"
	case raw.Company == nil:
		missing = "company"
	case raw.Country == nil:
		missing = "country"
	case raw.Industry == nil:
		missing = "industry"
	case raw.Format == nil:
		missing = "format"
	case raw.Position == nil:
		missing = "position"
	}
	if missing != "" {
		return nil, fmt.Errorf("model output missing field %q", missing)
	}

	return &domain.JobAnalysis{
		Description: *raw.Description,
		Company:     *raw.Company,
		Country:     *raw.Country,
		Industry:    *raw.Industry,
		Format:      *raw.Format,
		Position:    *raw.Position,
	}, nil
}
