package usecase

import (
	"strings"

	"intent-router/internal/router"
)

// classifyByRules is the deterministic fallback path. It always succeeds and
// always marks fallback_used.
func (uc *implUseCase) classifyByRules(text string) router.RoutingDecision {
	if isGreeting(text) {
		return router.RoutingDecision{
			Category:              router.CategoryGeneral,
			Priority:              router.PriorityNormal,
			Complexity:            router.ComplexitySimple,
			SpecialistModel:       uc.registry.Default(),
			Confidence:            GreetingConfidence,
			RequiresClarification: false,
			MissingFields:         []string{},
			Entities:              []router.Entity{},
			SuggestedQuestions:    []string{},
			FallbackUsed:          true,
		}
	}

	category := detectCategory(text)
	priority := detectPriority(text)
	complexity := detectComplexity(text)
	entities := extractEntities(text)

	d := router.RoutingDecision{
		Category:           category,
		Priority:           priority,
		Complexity:         complexity,
		SpecialistModel:    uc.selectModel(category, priority, complexity, entities),
		Confidence:         RuleConfidence,
		MissingFields:      []string{},
		Entities:           entities,
		SuggestedQuestions: []string{},
		FallbackUsed:       true,
	}

	if uc.needsClarification(category, text, entities) {
		d.RequiresClarification = true
		d.MissingFields = uc.missingFields(category, text, entities)
		if len(d.MissingFields) == 0 {
			d.MissingFields = fallbackMissingFields(category)
		}
		d.SuggestedQuestions = uc.questionsFor(category, d.MissingFields)
	}

	return d
}

// detectCategory scores keyword hits per category; the strictly greatest
// count wins, ties keep the earliest-registered category. Zero matches
// default to general.
func detectCategory(text string) router.IntentCategory {
	lower := strings.ToLower(text)

	category := router.CategoryUnknown
	maxMatches := 0
	for _, set := range categoryKeywords {
		matches := 0
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				matches++
			}
		}
		if matches > maxMatches {
			maxMatches = matches
			category = set.category
		}
	}

	if category == router.CategoryUnknown {
		return router.CategoryGeneral
	}
	return category
}

// detectPriority scans trigger phrases in order; first found wins.
func detectPriority(text string) router.PriorityLevel {
	lower := strings.ToLower(text)
	for _, t := range priorityTriggers {
		if strings.Contains(lower, t.phrase) {
			return t.level
		}
	}
	return router.PriorityNormal
}

// detectComplexity derives complexity from length and indicator phrases.
// The very-complex list is checked before the complex list.
func detectComplexity(text string) router.ComplexityLevel {
	words := len(strings.Fields(text))
	if words < SimpleWordThreshold {
		return router.ComplexitySimple
	}

	lower := strings.ToLower(text)
	for _, indicator := range veryComplexIndicators {
		if strings.Contains(lower, indicator) {
			return router.ComplexityVeryComplex
		}
	}
	for _, indicator := range complexIndicators {
		if strings.Contains(lower, indicator) {
			return router.ComplexityComplex
		}
	}

	if words > MediumWordThreshold {
		return router.ComplexityMedium
	}
	return router.ComplexitySimple
}

// isGreeting matches single-word greetings as whole words and multi-word
// greetings as substrings.
func isGreeting(text string) bool {
	lower := strings.ToLower(text)
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})

	for _, g := range greetings {
		if strings.Contains(g, " ") {
			if strings.Contains(lower, g) {
				return true
			}
			continue
		}
		for _, w := range words {
			if w == g {
				return true
			}
		}
	}
	return false
}
