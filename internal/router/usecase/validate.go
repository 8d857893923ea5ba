package usecase

import (
	"context"

	"intent-router/internal/router"
)

// validate normalizes a decision before it is returned. Steps in order:
// clamp confidence, discard under-confident results in favor of the
// rule-based path, and rewrite specialist models missing from the capability
// registry to the configured default.
func (uc *implUseCase) validate(ctx context.Context, d router.RoutingDecision, text string) router.RoutingDecision {
	if d.Confidence < 0 {
		d.Confidence = 0
	}
	if d.Confidence > 1 {
		d.Confidence = 1
	}

	// A low-confidence model-backed answer is never trusted over the
	// deterministic fallback.
	if d.Confidence < uc.cfg.ConfidenceThreshold && !d.FallbackUsed {
		uc.l.Warnf(ctx, "%s: low confidence (%.2f), substituting rule-based decision",
			LogPrefixValidate, d.Confidence)
		d = uc.classifyByRules(text)
	}

	if !uc.registry.Known(d.SpecialistModel) {
		uc.l.Warnf(ctx, "%s: model %q not in capability registry, using default %q",
			LogPrefixValidate, d.SpecialistModel, uc.registry.Default())
		d.SpecialistModel = uc.registry.Default()
		d.FallbackUsed = true
	}

	return d
}
