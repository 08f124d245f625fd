package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/feretizpina/uber-slack/internal/api/dto"
	"github.com/feretizpina/uber-slack/pkg/logger"
)

// HandleOAuthCallback handles GET /auth/callback. The provider redirects
// here with a short-lived code; the exchange runs off the request goroutine
// so the redirect lands immediately, the way the original system queued a
// background job for it.
func (h *Handlers) HandleOAuthCallback(c *gin.Context) {
	var req dto.OAuthCallbackRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "BAD_REQUEST", Message: "Missing code or state"})
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := h.Exchanger.Exchange(ctx, req.State, req.Code); err != nil {
			h.Logger.Error("oauth exchange failed",
				logger.String("user_id", req.State),
				logger.Err(err),
			)
		}
	}()

	c.String(http.StatusAccepted, "Linking your Uber account. You can close this window and return to Slack.")
}
