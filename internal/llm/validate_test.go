package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func bossSchema() *Schema {
	return &Schema{
		Name:        "boss-pick",
		Description: "One task to tackle next",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":    map[string]any{"type": "string"},
				"reason":   map[string]any{"type": "string"},
				"priority": map[string]any{"type": "string", "enum": []any{"Low", "Medium", "High"}},
			},
			"required": []any{"title", "reason"},
		},
	}
}

func TestValidateResponseValid(t *testing.T) {
	raw := json.RawMessage(`{"title":"Calculus Quiz Prep","reason":"due soonest","priority":"High"}`)
	if err := validateResponse(bossSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseOptionalOmitted(t *testing.T) {
	raw := json.RawMessage(`{"title":"Code a React App","reason":"biggest reward"}`)
	if err := validateResponse(bossSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"title":"Calculus Quiz Prep"}`)
	err := validateResponse(bossSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseWrongType(t *testing.T) {
	raw := json.RawMessage(`{"title":42,"reason":"due soonest"}`)
	err := validateResponse(bossSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseBadEnum(t *testing.T) {
	raw := json.RawMessage(`{"title":"x","reason":"y","priority":"Urgent"}`)
	err := validateResponse(bossSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
}

func TestValidateResponseMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(bossSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseEmpty(t *testing.T) {
	if err := validateResponse(bossSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponseNested(t *testing.T) {
	schema := &Schema{
		Name:        "study-plan",
		Description: "Nested plan",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"quest": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{"type": "string"},
					},
					"required": []any{"title"},
				},
				"steps": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"quest", "steps"},
		},
	}

	valid := json.RawMessage(`{"quest":{"title":"Calculus Quiz Prep"},"steps":["review notes","practice set"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"quest":{"title":"Calculus Quiz Prep"},"steps":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
