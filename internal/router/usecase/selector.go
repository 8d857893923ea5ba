package usecase

import (
	"strings"

	"intent-router/internal/registry"
	"intent-router/internal/router"
)

// modelSelector picks a specialist model for one intent category. Selection
// is static: category, priority, complexity and entities only, never current
// model load. Revisit the strategies whenever the capability registry changes.
type modelSelector interface {
	Select(priority router.PriorityLevel, complexity router.ComplexityLevel, entities []router.Entity) string
}

// selectModel dispatches to the category's strategy. Unknown categories get
// the default strategy.
func (uc *implUseCase) selectModel(
	category router.IntentCategory,
	priority router.PriorityLevel,
	complexity router.ComplexityLevel,
	entities []router.Entity,
) string {
	var s modelSelector
	switch category {
	case router.CategoryCode:
		s = codeSelector{}
	case router.CategoryVision:
		s = visionSelector{}
	case router.CategoryEmail:
		s = emailSelector{}
	case router.CategorySearch:
		s = searchSelector{}
	case router.CategoryReminder:
		s = reminderSelector{}
	case router.CategoryAnalysis:
		s = analysisSelector{reg: uc.registry}
	default:
		s = defaultSelector{reg: uc.registry}
	}
	return s.Select(priority, complexity, entities)
}

// codeSelector: the priority gate dominates the complexity gate.
type codeSelector struct{}

func (codeSelector) Select(priority router.PriorityLevel, complexity router.ComplexityLevel, _ []router.Entity) string {
	if priority <= router.PriorityHigh ||
		complexity == router.ComplexityComplex || complexity == router.ComplexityVeryComplex {
		return ModelCodeStrong
	}
	if complexity == router.ComplexityMedium {
		return ModelCodeMid
	}
	return ModelCodeSmall
}

type visionSelector struct{}

func (visionSelector) Select(priority router.PriorityLevel, _ router.ComplexityLevel, entities []router.Entity) string {
	if priority <= router.PriorityHigh {
		return ModelVisionLarge
	}
	for _, e := range entities {
		if e.Type == router.EntityTask && strings.Contains(strings.ToLower(e.Value), "ocr") {
			return ModelVisionOCR
		}
	}
	return ModelVisionSmall
}

// emailSelector always picks the designated reliability model.
type emailSelector struct{}

func (emailSelector) Select(router.PriorityLevel, router.ComplexityLevel, []router.Entity) string {
	return ModelEmail
}

type searchSelector struct{}

func (searchSelector) Select(router.PriorityLevel, router.ComplexityLevel, []router.Entity) string {
	return ModelSearch
}

// reminderSelector: reminders are low-complexity by design.
type reminderSelector struct{}

func (reminderSelector) Select(router.PriorityLevel, router.ComplexityLevel, []router.Entity) string {
	return ModelReminder
}

type analysisSelector struct {
	reg *registry.Registry
}

func (s analysisSelector) Select(_ router.PriorityLevel, complexity router.ComplexityLevel, _ []router.Entity) string {
	if complexity == router.ComplexityVeryComplex && s.reg.Known(ModelAnalysisTop) {
		return ModelAnalysisTop
	}
	return ModelAnalysisMid
}

type defaultSelector struct {
	reg *registry.Registry
}

func (s defaultSelector) Select(router.PriorityLevel, router.ComplexityLevel, []router.Entity) string {
	return s.reg.Default()
}
