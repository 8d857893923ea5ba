package usecase

import (
	"regexp"
	"strings"

	"intent-router/internal/router"
)

// Entity extraction confidences per pattern class.
const (
	languageConfidence = 0.9
	emailConfidence    = 1.0
	timeConfidence     = 0.8
)

// knownLanguages is the fixed programming-language vocabulary.
var knownLanguages = []string{
	"python", "javascript", "typescript", "java", "go", "rust",
	"c++", "c#", "php", "ruby", "swift", "kotlin",
}

var (
	languagePatterns = buildLanguagePatterns(knownLanguages)

	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Digit+am/pm time expressions: "3pm", "10:30", "10:30 am".
	timePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{1,2}:\d{2}\s*(?:am|pm)?\b`),
		regexp.MustCompile(`\b\d{1,2}\s*(?:am|pm)\b`),
	}
)

type languagePattern struct {
	name string
	re   *regexp.Regexp
}

// buildLanguagePatterns compiles whole-word patterns. Names ending in a
// symbol (c++, c#) get no trailing word boundary since \b does not assert
// after a non-word rune.
func buildLanguagePatterns(names []string) []languagePattern {
	patterns := make([]languagePattern, 0, len(names))
	for _, name := range names {
		expr := `\b` + regexp.QuoteMeta(name)
		last := name[len(name)-1]
		if (last >= 'a' && last <= 'z') || (last >= '0' && last <= '9') {
			expr += `\b`
		}
		patterns = append(patterns, languagePattern{name: name, re: regexp.MustCompile(expr)})
	}
	return patterns
}

// extractEntities pulls structured hints out of raw text. Deterministic,
// side-effect-free, never fails. Output order is insertion order: languages,
// then emails, then times.
func extractEntities(text string) []router.Entity {
	entities := []router.Entity{}
	lower := strings.ToLower(text)

	for _, lp := range languagePatterns {
		if lp.re.MatchString(lower) {
			entities = append(entities, router.Entity{
				Type:       router.EntityLanguage,
				Value:      lp.name,
				Confidence: languageConfidence,
			})
		}
	}

	for _, email := range emailPattern.FindAllString(text, -1) {
		entities = append(entities, router.Entity{
			Type:       router.EntityEmail,
			Value:      email,
			Confidence: emailConfidence,
		})
	}

	var times []string
	for _, re := range timePatterns {
		for _, match := range re.FindAllString(lower, -1) {
			match = strings.TrimSpace(match)
			if match == "" || coveredBy(times, match) {
				continue
			}
			times = append(times, match)
			entities = append(entities, router.Entity{
				Type:       router.EntityTime,
				Value:      match,
				Confidence: timeConfidence,
			})
		}
	}

	return entities
}

// coveredBy reports whether match is already contained in an earlier,
// longer time match (e.g. "30 am" inside "10:30 am").
func coveredBy(times []string, match string) bool {
	for _, t := range times {
		if strings.Contains(t, match) {
			return true
		}
	}
	return false
}
