package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feretizpina/uber-slack/internal/api/dto"
	"github.com/feretizpina/uber-slack/internal/domain/auth"
	"github.com/feretizpina/uber-slack/internal/domain/ride"
	"github.com/feretizpina/uber-slack/internal/service/command"
	apperrors "github.com/feretizpina/uber-slack/pkg/errors"
	"github.com/feretizpina/uber-slack/pkg/logger"
)

const accountNotLinkedReply = "Your Uber account isn't linked yet. " +
	"Visit the app's sign-in page to connect it, then try again."

// HandleSlashCommand handles POST /slack/command
func (h *Handlers) HandleSlashCommand(c *gin.Context) {
	var req dto.SlashCommandRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "BAD_REQUEST", Message: "Invalid slash command payload"})
		return
	}

	if h.Config.Slack.VerificationToken != "" && req.Token != h.Config.Slack.VerificationToken {
		h.Logger.Warn("slash command with bad verification token",
			logger.String("team_id", req.TeamID),
		)
		appErr := apperrors.ErrSlackTokenMismatch
		c.JSON(appErr.Status, dto.ErrorResponse{Code: appErr.Code, Message: appErr.Message})
		return
	}

	ctx := c.Request.Context()

	authorization, err := h.Auths.GetByUser(ctx, req.UserID)
	if errors.Is(err, auth.ErrAuthorizationNotFound) {
		// Not an error path: the user just hasn't linked an account.
		c.String(http.StatusOK, accountNotLinkedReply)
		return
	}
	if err != nil {
		h.Logger.Error("authorization lookup failed", logger.Err(err))
		appErr := apperrors.Internal("Failed to load authorization", err)
		c.JSON(appErr.Status, dto.ErrorResponse{Code: appErr.Code, Message: appErr.Message})
		return
	}

	// One interpreter per invocation, scoped to the user's bearer token.
	interp := command.New(command.Deps{
		Resolver: h.Resolver,
		Provider: h.Uber.WithToken(authorization.AccessToken),
		Rides:    h.Rides,
		Notifier: h.Notifier,
		Logger:   h.Logger,
	})

	reply, err := interp.Run(ctx, command.Request{
		UserID:      req.UserID,
		Text:        req.Text,
		ResponseURL: req.ResponseURL,
	})
	if err != nil {
		h.Logger.Error("command failed",
			logger.String("user_id", req.UserID),
			logger.Err(err),
		)
		appErr := mapCommandError(err)
		c.JSON(appErr.Status, dto.ErrorResponse{Code: appErr.Code, Message: appErr.Message})
		return
	}

	h.NewRelic.RecordCommand(req.Command, reply == "")

	// Empty reply means the outcome was delivered via the response URL;
	// Slack treats an empty 200 body as "no visible reply".
	c.String(http.StatusOK, reply)
}

func mapCommandError(err error) *apperrors.AppError {
	if errors.Is(err, ride.ErrRideNotFound) {
		return apperrors.ErrNoRideToAccept
	}
	if apperrors.IsAppError(err) {
		return apperrors.GetAppError(err)
	}
	return apperrors.BadGateway("Upstream provider call failed", err)
}
