package usecase

import (
	"context"
	"time"

	"intent-router/internal/router"
)

// Classify is the routing engine entry point. The model-backed path runs
// first; a failure or low-confidence result is replaced by the rule-based
// path. A panic anywhere below terminates in the safe-fallback decision, so
// the caller always receives a well-formed RoutingDecision.
func (uc *implUseCase) Classify(ctx context.Context, input router.ClassifyInput) (decision router.RoutingDecision) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "%s: recovered: %v", LogPrefixClassify, r)
			decision = uc.safeFallback()
			decision.ProcessingTimeMs = msSince(start)
		}
	}()

	d, err := uc.classifyByModel(ctx, input)
	if err != nil {
		uc.l.Warnf(ctx, "%s: model-backed classification failed, using rules: %v", LogPrefixClassify, err)
		d = uc.classifyByRules(input.Text)
	}

	d = uc.validate(ctx, d, input.Text)
	d.ProcessingTimeMs = msSince(start)

	uc.l.Infof(ctx, "%s: %s | model=%s | confidence=%.2f | fallback=%t | %.0fms",
		LogPrefixClassify, d.Category, d.SpecialistModel, d.Confidence, d.FallbackUsed, d.ProcessingTimeMs)

	return d
}

// safeFallback is the fixed terminal decision for unexpected internal errors.
func (uc *implUseCase) safeFallback() router.RoutingDecision {
	return router.RoutingDecision{
		Category:              router.CategoryGeneral,
		Priority:              router.PriorityNormal,
		Complexity:            router.ComplexityMedium,
		SpecialistModel:       uc.registry.Default(),
		Confidence:            SafeFallbackConfidence,
		RequiresClarification: true,
		MissingFields:         []string{"query"},
		Entities:              []router.Entity{},
		SuggestedQuestions:    []string{SafeFallbackQuestion},
		FallbackUsed:          true,
	}
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
