package http

import (
	"errors"

	"intent-router/internal/router"
)

// RouteRequest is the POST /api/v1/route request body.
type RouteRequest struct {
	Text        string              `json:"text" binding:"required"`
	UserContext *UserContextRequest `json:"user_context,omitempty"`
}

// UserContextRequest is the optional user profile block.
type UserContextRequest struct {
	PreferredLanguage string `json:"preferred_language"`
	LastCategory      string `json:"last_category"`
	Expertise         string `json:"expertise"`
}

var errEmptyText = errors.New("text must not be empty")

func (r RouteRequest) toInput() router.ClassifyInput {
	input := router.ClassifyInput{Text: r.Text}
	if r.UserContext != nil {
		input.UserContext = &router.UserContext{
			PreferredLanguage: r.UserContext.PreferredLanguage,
			LastCategory:      r.UserContext.LastCategory,
			Expertise:         r.UserContext.Expertise,
		}
	}
	return input
}

// RouteResponse mirrors router.RoutingDecision on the wire.
type RouteResponse struct {
	Category              string          `json:"category"`
	Priority              int             `json:"priority"`
	Complexity            string          `json:"complexity"`
	SpecialistModel       string          `json:"specialist_model"`
	Confidence            float64         `json:"confidence"`
	RequiresClarification bool            `json:"requires_clarification"`
	MissingFields         []string        `json:"missing_fields"`
	Entities              []router.Entity `json:"entities"`
	SuggestedQuestions    []string        `json:"suggested_questions"`
	ProcessingTimeMs      float64         `json:"processing_time_ms"`
	FallbackUsed          bool            `json:"fallback_used"`
}

func newRouteResponse(d router.RoutingDecision) RouteResponse {
	return RouteResponse{
		Category:              string(d.Category),
		Priority:              int(d.Priority),
		Complexity:            string(d.Complexity),
		SpecialistModel:       d.SpecialistModel,
		Confidence:            d.Confidence,
		RequiresClarification: d.RequiresClarification,
		MissingFields:         d.MissingFields,
		Entities:              d.Entities,
		SuggestedQuestions:    d.SuggestedQuestions,
		ProcessingTimeMs:      d.ProcessingTimeMs,
		FallbackUsed:          d.FallbackUsed,
	}
}
