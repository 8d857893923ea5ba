package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"intent-router/pkg/response"
)

// Route classifies a free-form request and returns the routing decision.
// @Summary Route a request
// @Description Classify a natural-language request into an intent category, priority, complexity and specialist model. When requires_clarification is true the caller should present suggested_questions to the user instead of dispatching.
// @Tags Router
// @Accept json
// @Produce json
// @Param request body RouteRequest true "Request to classify"
// @Success 200 {object} response.Resp{data=RouteResponse} "Routing decision"
// @Failure 400 {object} response.Resp "Invalid request body"
// @Router /api/v1/route [post]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.router.delivery.http.Route: invalid body: %v", err)
		response.Error(c, err, nil)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		response.Error(c, errEmptyText, nil)
		return
	}

	decision := h.uc.Classify(ctx, req.toInput())
	response.OK(c, newRouteResponse(decision))
}
