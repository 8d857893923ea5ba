package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"intent-router/internal/router"
	"intent-router/pkg/ollama"
)

// modelDecision is the JSON shape requested from the classifier model.
type modelDecision struct {
	Category              string        `json:"category"`
	Priority              int           `json:"priority"`
	Complexity            string        `json:"complexity"`
	Confidence            float64       `json:"confidence"`
	RequiresClarification bool          `json:"requires_clarification"`
	MissingFields         []string      `json:"missing_fields"`
	Entities              []modelEntity `json:"entities"`
	SuggestedQuestions    []string      `json:"suggested_questions"`
}

type modelEntity struct {
	Type       string  `json:"type"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// classifyByModel runs the model-backed classification path. Any failure -
// transport error, timeout, malformed JSON, enum value outside the closed
// sets - is returned as an error so the caller can fall back to rules.
func (uc *implUseCase) classifyByModel(ctx context.Context, input router.ClassifyInput) (router.RoutingDecision, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.ClassifyTimeout)
	defer cancel()

	resp, err := uc.llm.Chat(ctx, &ollama.ChatRequest{
		Model: uc.cfg.ClassifierModel,
		Messages: []ollama.Message{
			{Role: "system", Content: PromptSystem},
			{Role: "user", Content: uc.buildUserPrompt(input)},
		},
		Format: ollama.FormatJSON,
		Options: &ollama.Options{
			Temperature: ClassifierTemperature,
			NumPredict:  ClassifierNumPredict,
			TopK:        ClassifierTopK,
			TopP:        ClassifierTopP,
		},
	})
	if err != nil {
		return router.RoutingDecision{}, fmt.Errorf("%s: completion call failed: %w", LogPrefixModel, err)
	}

	content := stripCodeFences(resp.Message.Content)
	if content == "" {
		return router.RoutingDecision{}, router.ErrEmptyResponse
	}

	var raw modelDecision
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return router.RoutingDecision{}, fmt.Errorf("%w: %v", router.ErrMalformedResponse, err)
	}

	return uc.toDecision(raw, input.Text)
}

// buildUserPrompt assembles few-shot examples, the raw input and the optional
// user-context block.
func (uc *implUseCase) buildUserPrompt(input router.ClassifyInput) string {
	contextBlock := ""
	if c := input.UserContext; c != nil {
		contextBlock = fmt.Sprintf(PromptContextTemplate,
			orDefault(c.PreferredLanguage, "unknown"),
			orDefault(c.LastCategory, "none"),
			orDefault(c.Expertise, "beginner"),
		)
	}
	return fmt.Sprintf(PromptUserTemplate, PromptFewShot, input.Text, contextBlock)
}

// toDecision coerces the raw model output into domain types. Strict: any
// value outside the closed enum sets fails the whole call.
func (uc *implUseCase) toDecision(raw modelDecision, text string) (router.RoutingDecision, error) {
	category, err := router.ParseIntentCategory(raw.Category)
	if err != nil {
		return router.RoutingDecision{}, fmt.Errorf("%w: %v", router.ErrInvalidEnumValue, err)
	}
	priority, err := router.ParsePriorityLevel(raw.Priority)
	if err != nil {
		return router.RoutingDecision{}, fmt.Errorf("%w: %v", router.ErrInvalidEnumValue, err)
	}
	complexity, err := router.ParseComplexityLevel(raw.Complexity)
	if err != nil {
		return router.RoutingDecision{}, fmt.Errorf("%w: %v", router.ErrInvalidEnumValue, err)
	}

	entities := make([]router.Entity, 0, len(raw.Entities))
	for _, e := range raw.Entities {
		confidence := e.Confidence
		if confidence == 0 {
			confidence = 0.8
		}
		entities = append(entities, router.Entity{
			Type:       e.Type,
			Value:      e.Value,
			Confidence: confidence,
		})
	}

	d := router.RoutingDecision{
		Category:              category,
		Priority:              priority,
		Complexity:            complexity,
		SpecialistModel:       uc.selectModel(category, priority, complexity, entities),
		Confidence:            raw.Confidence,
		RequiresClarification: raw.RequiresClarification,
		MissingFields:         raw.MissingFields,
		Entities:              entities,
		SuggestedQuestions:    raw.SuggestedQuestions,
		FallbackUsed:          false,
	}
	if d.MissingFields == nil {
		d.MissingFields = []string{}
	}
	if d.SuggestedQuestions == nil {
		d.SuggestedQuestions = []string{}
	}

	// Enforce the clarification invariant regardless of what the model said:
	// requires_clarification implies non-empty missing_fields and questions.
	if d.RequiresClarification {
		if len(d.MissingFields) == 0 {
			d.MissingFields = uc.missingFields(category, text, entities)
			if len(d.MissingFields) == 0 {
				d.MissingFields = fallbackMissingFields(category)
			}
		}
		if len(d.SuggestedQuestions) == 0 {
			d.SuggestedQuestions = uc.questionsFor(category, d.MissingFields)
		}
	}
	if len(d.SuggestedQuestions) > MaxSuggestedQuestions {
		d.SuggestedQuestions = d.SuggestedQuestions[:MaxSuggestedQuestions]
	}

	return d, nil
}

// stripCodeFences removes markdown code blocks some models wrap JSON in.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
