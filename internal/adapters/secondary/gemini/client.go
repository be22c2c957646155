package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"asset-management-service/internal/config"
	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"
)

const defaultModel = "gemini-2.5-flash"

const extractionInstruction = `You are a mortgage document analyst. Extract loan and
collateral data from the document you are given. Report values exactly as they
appear in the document. Leave a field empty when the document does not state it;
never guess or invent a value.`

// responseSchema constrains the model to the flat loan-field payload. Every
// property is a string; numeric and date normalization happens downstream.
var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"borrower_name":    {Type: genai.TypeString, Description: "Primary borrower's full name."},
		"loan_number":      {Type: genai.TypeString, Description: "Servicer or originator loan number."},
		"original_balance": {Type: genai.TypeString, Description: "Original principal balance of the note."},
		"current_balance":  {Type: genai.TypeString, Description: "Current unpaid principal balance."},
		"interest_rate":    {Type: genai.TypeString, Description: "Note interest rate as stated."},
		"origination_date": {Type: genai.TypeString, Description: "Date the note was originated."},
		"maturity_date":    {Type: genai.TypeString, Description: "Maturity date of the note."},
		"property_street":  {Type: genai.TypeString, Description: "Collateral property street address."},
		"property_city":    {Type: genai.TypeString, Description: "Collateral property city."},
		"property_state":   {Type: genai.TypeString, Description: "Collateral property state."},
		"property_zip":     {Type: genai.TypeString, Description: "Collateral property ZIP code."},
	},
}

type geminiExtractor struct {
	client *genai.Client
	model  string
}

// NewDocumentExtractor creates a Gemini-backed document extractor.
func NewDocumentExtractor(ctx context.Context, cfg *config.GeminiConfig) (ports.DocumentExtractor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &geminiExtractor{client: client, model: model}, nil
}

func (e *geminiExtractor) ExtractLoanFields(ctx context.Context, documentText string) (*domain.ExtractedLoanFields, error) {
	resp, err := e.client.Models.GenerateContent(ctx, e.model,
		genai.Text(documentText),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: extractionInstruction}}},
			ResponseMIMEType:  "application/json",
			ResponseSchema:    responseSchema,
		})
	if err != nil {
		return nil, fmt.Errorf("generate extraction: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty extraction response")
	}

	var fields domain.ExtractedLoanFields
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return nil, fmt.Errorf("decode extraction response: %w", err)
	}

	return &fields, nil
}

// Ensure interface compliance
var _ ports.DocumentExtractor = (*geminiExtractor)(nil)
