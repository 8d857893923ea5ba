package router

import "errors"

// Internal failure modes of the model-backed path. None of these escape
// Classify; they trigger the rule-based fallback instead.
var (
	ErrEmptyResponse     = errors.New("empty completion response")
	ErrMalformedResponse = errors.New("malformed completion response")
	ErrInvalidEnumValue  = errors.New("enum value outside closed set")
)
