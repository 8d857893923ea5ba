package router

import "fmt"

// IntentCategory is the closed set of user intent categories.
type IntentCategory string

const (
	CategoryCode     IntentCategory = "code"
	CategoryVision   IntentCategory = "vision"
	CategoryEmail    IntentCategory = "email"
	CategorySearch   IntentCategory = "search"
	CategoryReminder IntentCategory = "reminder"
	CategoryAnalysis IntentCategory = "analysis"
	CategoryGeneral  IntentCategory = "general"
	CategoryUnknown  IntentCategory = "unknown"
)

// ParseIntentCategory validates s against the closed category set.
func ParseIntentCategory(s string) (IntentCategory, error) {
	switch c := IntentCategory(s); c {
	case CategoryCode, CategoryVision, CategoryEmail, CategorySearch,
		CategoryReminder, CategoryAnalysis, CategoryGeneral, CategoryUnknown:
		return c, nil
	}
	return "", fmt.Errorf("invalid intent category: %q", s)
}

// PriorityLevel is an ordered urgency scale. Lower is more urgent.
type PriorityLevel int

const (
	PriorityUrgent     PriorityLevel = 1
	PriorityHigh       PriorityLevel = 2
	PriorityNormal     PriorityLevel = 3
	PriorityLow        PriorityLevel = 4
	PriorityBackground PriorityLevel = 5
)

// ParsePriorityLevel validates n against the 1..5 scale.
func ParsePriorityLevel(n int) (PriorityLevel, error) {
	if n < int(PriorityUrgent) || n > int(PriorityBackground) {
		return 0, fmt.Errorf("invalid priority level: %d", n)
	}
	return PriorityLevel(n), nil
}

// ComplexityLevel is an ordered nominal task complexity scale.
type ComplexityLevel string

const (
	ComplexitySimple      ComplexityLevel = "simple"
	ComplexityMedium      ComplexityLevel = "medium"
	ComplexityComplex     ComplexityLevel = "complex"
	ComplexityVeryComplex ComplexityLevel = "very_complex"
)

// ParseComplexityLevel validates s against the closed complexity set.
func ParseComplexityLevel(s string) (ComplexityLevel, error) {
	switch c := ComplexityLevel(s); c {
	case ComplexitySimple, ComplexityMedium, ComplexityComplex, ComplexityVeryComplex:
		return c, nil
	}
	return "", fmt.Errorf("invalid complexity level: %q", s)
}

// Entity types produced by extraction.
const (
	EntityLanguage = "language"
	EntityEmail    = "email"
	EntityTime     = "time"
	EntityTask     = "task"
)

// Entity is a structured fact extracted from free text.
type Entity struct {
	Type       string  `json:"type"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// UserContext is the optional caller-supplied user profile that biases
// model-backed classification.
type UserContext struct {
	PreferredLanguage string `json:"preferred_language,omitempty"`
	LastCategory      string `json:"last_category,omitempty"`
	Expertise         string `json:"expertise,omitempty"`
}

// ClassifyInput is the input to UseCase.Classify.
type ClassifyInput struct {
	Text        string
	UserContext *UserContext
}

// RoutingDecision is the complete routing decision for one request. It is
// constructed fresh per request and never mutated after validation completes.
type RoutingDecision struct {
	Category               IntentCategory  `json:"category"`
	Priority               PriorityLevel   `json:"priority"`
	Complexity             ComplexityLevel `json:"complexity"`
	SpecialistModel        string          `json:"specialist_model"`
	Confidence             float64         `json:"confidence"`
	RequiresClarification  bool            `json:"requires_clarification"`
	MissingFields          []string        `json:"missing_fields"`
	Entities               []Entity        `json:"entities"`
	SuggestedQuestions     []string        `json:"suggested_questions"`
	ProcessingTimeMs       float64         `json:"processing_time_ms"`
	FallbackUsed           bool            `json:"fallback_used"`
}
