// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory_backend/internal/feature/auth/transport/http/dto"
	"inventory_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the token operations consumed by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// IssueToken exchanges credentials for the user's bearer token.
	IssueToken(ctx context.Context, email, password string) (string, error)
}

// TokenHandler handles HTTP requests for bearer token issuance.
type TokenHandler struct {
	auth AuthUsecase
}

// NewTokenHandler creates a new instance of TokenHandler.
func NewTokenHandler(auth AuthUsecase) *TokenHandler {
	return &TokenHandler{auth: auth}
}

// Issue handles POST /v1/token/.
//   - binds the credential pair (400 on validation failure)
//   - wrong email or password yields 401 with a generic message
//   - success returns the user's token, minting it on first exchange (200)
func (h *TokenHandler) Issue(c *gin.Context) {
	var req dto.TokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("token exchange validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := h.auth.IssueToken(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// Generic message; do not reveal whether the email is registered.
			slog.Warn("token exchange rejected", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		slog.Error("token exchange failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("token exchanged", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
