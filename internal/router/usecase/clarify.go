package usecase

import (
	"strings"

	"intent-router/internal/router"
)

// needsClarification gates clarification output. True when the raw text is
// too short to carry intent, or when a required field for the category is
// absent from the extracted entities / residual text.
func (uc *implUseCase) needsClarification(category router.IntentCategory, text string, entities []router.Entity) bool {
	if len(strings.Fields(text)) < MinWordsForClarity {
		return true
	}
	return len(uc.missingFields(category, text, entities)) > 0
}

// missingFields returns the category's required fields that could not be
// satisfied, in required-field table order.
func (uc *implUseCase) missingFields(category router.IntentCategory, text string, entities []router.Entity) []string {
	missing := []string{}

	for _, field := range requiredFields[category] {
		switch {
		case category == router.CategoryCode && field == "programming language":
			if !hasEntity(entities, router.EntityLanguage) {
				missing = append(missing, field)
			}
		case category == router.CategoryCode && field == "task description":
			if len(strings.Fields(text)) < MinCodeDescWords {
				missing = append(missing, field)
			}
		case category == router.CategoryReminder && field == "time":
			if !hasEntity(entities, router.EntityTime) {
				missing = append(missing, field)
			}
		case category == router.CategoryReminder && field == "message":
			if reminderMessage(text, entities) == "" {
				missing = append(missing, field)
			}
		case category == router.CategorySearch && field == "search query":
			if len(searchQuery(text)) < 3 {
				missing = append(missing, field)
			}
		}
	}

	return missing
}

// fallbackMissingFields keeps the clarification invariant when no per-field
// detector fired: fall back to the category's first required field.
func fallbackMissingFields(category router.IntentCategory) []string {
	if fields := requiredFields[category]; len(fields) > 0 {
		return []string{fields[0]}
	}
	return []string{"query"}
}

// questionsFor maps missing fields to canned follow-up questions, at most
// MaxSuggestedQuestions. Fields without a template are skipped; an empty
// result degrades to one generic question.
func (uc *implUseCase) questionsFor(category router.IntentCategory, missingFields []string) []string {
	templates := questionTemplates[category]

	questions := []string{}
	for _, field := range missingFields {
		if q, ok := templates[field]; ok {
			questions = append(questions, q)
		}
	}

	if len(questions) == 0 {
		questions = append(questions, GenericQuestion)
	}
	if len(questions) > MaxSuggestedQuestions {
		questions = questions[:MaxSuggestedQuestions]
	}
	return questions
}

// searchQuery strips the search verbs and returns the residual query text.
func searchQuery(text string) string {
	lower := strings.ToLower(text)
	lower = strings.ReplaceAll(lower, "search", "")
	lower = strings.ReplaceAll(lower, "find", "")
	return strings.TrimSpace(lower)
}

// reminderMessage returns text stripped of reminder boilerplate and detected
// time expressions. Empty means the user never said what to be reminded of.
func reminderMessage(text string, entities []router.Entity) string {
	lower := strings.ToLower(text)
	for _, kw := range []string{"remind me", "remind", "reminder"} {
		lower = strings.ReplaceAll(lower, kw, "")
	}
	for _, e := range entities {
		if e.Type == router.EntityTime {
			lower = strings.ReplaceAll(lower, e.Value, "")
		}
	}

	words := strings.Fields(lower)
	if len(words) < 2 {
		return ""
	}
	return strings.Join(words, " ")
}

func hasEntity(entities []router.Entity, entityType string) bool {
	for _, e := range entities {
		if e.Type == entityType {
			return true
		}
	}
	return false
}
