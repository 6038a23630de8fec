package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithError maps a service error onto an HTTP status and writes it as
// {"error": ...}. Unexpected errors are logged and answered with fallback.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status, msg := http.StatusInternalServerError, fallback
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
	}

	var appErr *apperrors.AppError
	if status == http.StatusInternalServerError && errors.As(err, &appErr) && appErr.Code > 0 {
		status = appErr.Code
	}

	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": msg})
		return
	}

	msg = err.Error()
	if errors.As(err, &appErr) && appErr.Message != "" {
		msg = appErr.Message
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": msg})
}

// currentUserID reads the authenticated user, answering 401 when it is missing.
func currentUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
