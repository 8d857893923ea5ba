package router

import "context"

//go:generate mockery --name UseCase

// UseCase is the routing engine entry point. Classify is total: every failure
// mode degrades to a well-formed fallback decision, it never returns an error
// and never panics.
type UseCase interface {
	Classify(ctx context.Context, input ClassifyInput) RoutingDecision
}
