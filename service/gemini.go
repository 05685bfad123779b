package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/KaveeshaKaru/investiAI/config"
	"github.com/KaveeshaKaru/investiAI/model"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"google.golang.org/genai"
)

// FieldExtractor extracts structured case records from a raw document.
// The returned objects are schema-shaped but unnormalized: field values are
// whatever the model produced.
type FieldExtractor interface {
	Extract(ctx context.Context, docType, fileName string, data []byte) ([]map[string]any, error)
}

// ExtractionService calls the Gemini API with the document bytes inline and
// a response schema derived from the document type, so the model replies
// with JSON matching the declared fields.
type ExtractionService struct {
	client *genai.Client
	cfg    config.GeminiConfig
}

// NewExtractionService creates a Gemini-backed extractor.
func NewExtractionService(ctx context.Context, cfg config.GeminiConfig) (*ExtractionService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &ExtractionService{client: client, cfg: cfg}, nil
}

// Extract sends the document to Gemini and returns the raw extracted case
// objects, validated against the document type's field schema.
func (e *ExtractionService) Extract(ctx context.Context, docType, fileName string, data []byte) ([]map[string]any, error) {
	schema, err := model.SchemaFor(docType)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(e.cfg.TimeoutSeconds)*time.Second)
	defer cancel()

	slog.Info("llm.extract.start",
		"model", e.cfg.Model,
		"doc_type", docType,
		"file_name", fileName,
		"file_size", len(data),
	)

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, DetectMIMEType(fileName)),
			genai.NewPartFromText("Extract all records from the attached document."),
		}, genai.RoleUser),
	}

	resp, err := e.client.Models.GenerateContent(ctx, e.cfg.Model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(schema.Instructions, genai.RoleUser),
		Temperature:       e.cfg.Temperature,
		TopP:              e.cfg.TopP,
		TopK:              e.cfg.TopK,
		MaxOutputTokens:   e.cfg.MaxOutputTokens,
		ResponseMIMEType:  "application/json",
		ResponseSchema:    responseSchema(schema),
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	records, err := parseExtraction(resp.Text(), schema)
	if err != nil {
		return nil, err
	}

	slog.Info("llm.extract.ok", "doc_type", docType, "records", len(records))
	return records, nil
}

// responseSchema converts the extraction field set into the Gemini response
// schema: an array of objects with every field a string.
func responseSchema(s *model.ExtractionSchema) *genai.Schema {
	props := make(map[string]*genai.Schema, len(s.Fields))
	for _, f := range s.Fields {
		props[f.Name] = &genai.Schema{Type: genai.TypeString}
	}
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: props,
			Required:   s.RequiredFields(),
		},
	}
}

// parseExtraction decodes the model's JSON reply. A single object is
// accepted and wrapped as a one-element batch; markdown fences are stripped
// in case the model ignores the response MIME type. Records are checked
// for shape only: missing fields are filled downstream, never rejected
// here.
func parseExtraction(raw string, schema *model.ExtractionSchema) ([]map[string]any, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty extraction response")
	}

	var records []map[string]any
	if strings.HasPrefix(text, "{") {
		var one map[string]any
		if err := json.Unmarshal([]byte(text), &one); err != nil {
			return nil, fmt.Errorf("decode extraction response: %w", err)
		}
		records = []map[string]any{one}
	} else {
		if err := json.Unmarshal([]byte(text), &records); err != nil {
			return nil, fmt.Errorf("decode extraction response: %w", err)
		}
	}

	validator, err := compileValidator(schema)
	if err != nil {
		return nil, err
	}
	for i, rec := range records {
		if err := validator.Validate(map[string]any(rec)); err != nil {
			return nil, fmt.Errorf("extraction record %d failed validation: %w", i, err)
		}
	}
	return records, nil
}

// compileValidator builds a JSON Schema validator for one extracted object:
// declared fields must be scalar when present. Missing fields are not an
// error here; the normalizer substitutes "Unknown" for required ones, so a
// partial reply still yields records.
func compileValidator(s *model.ExtractionSchema) (*jsonschema.Schema, error) {
	props := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		props[f.Name] = map[string]any{
			"type": []string{"string", "number", "boolean", "null"},
		}
	}
	doc := map[string]any{
		"type":       "object",
		"properties": props,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("build validation schema: %w", err)
	}
	compiled, err := jsonschema.CompileString(s.DocType+".schema.json", string(data))
	if err != nil {
		return nil, fmt.Errorf("compile validation schema: %w", err)
	}
	return compiled, nil
}

// DetectMIMEType maps a file name to the MIME type sent alongside the
// inline document bytes. Unknown extensions fall back to a generic type;
// Gemini sniffs the payload anyway.
func DetectMIMEType(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".doc":
		return "application/msword"
	case ".csv":
		return "text/csv"
	case ".txt":
		return "text/plain"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
