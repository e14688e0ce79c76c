// Package handler provides HTTP handlers for the users feature.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inventory_backend/internal/feature/users/domain/entity"
	"inventory_backend/internal/feature/users/transport/http/dto"
	"inventory_backend/internal/feature/users/usecase"
	"inventory_backend/internal/platform/bearer"
	"inventory_backend/internal/shared/authz"
)

// msgRestrictedFields enumerates the client-mutable fields; returned whenever
// an update carries anything else.
const msgRestrictedFields = "You can only update firstName, lastName, and password."

// allowedUpdateKeys is the exact set of JSON keys accepted on a user update.
var allowedUpdateKeys = map[string]struct{}{
	"firstName": {},
	"lastName":  {},
	"password":  {},
}

// UserUsecase defines the identity operations consumed by the handlers.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserUsecase interface {
	// Register creates a new user with a hashed password.
	Register(ctx context.Context, email, password, firstName, lastName string) (*entity.User, error)
	// Get returns a user record, policy-checked against the actor.
	Get(ctx context.Context, actor authz.Actor, id uint) (*entity.User, error)
	// Update applies a patch to a user record, policy-checked against the actor.
	Update(ctx context.Context, actor authz.Actor, id uint, patch usecase.Patch) (*entity.User, error)
}

// TokenIssuer lazily issues the bearer token returned on registration.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TokenIssuer interface {
	EnsureToken(ctx context.Context, userID uint) (string, error)
}

// UserHandler handles HTTP requests for user records.
type UserHandler struct {
	users  UserUsecase
	tokens TokenIssuer
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(users UserUsecase, tokens TokenIssuer) *UserHandler {
	return &UserHandler{users: users, tokens: tokens}
}

// Register handles POST /v1/user/.
//   - binds and validates the four required fields (400 on failure)
//   - duplicate email yields 400 with a fixed message
//   - on success the user's bearer token is issued alongside the record (201)
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("register rejected: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email already exists."})
		case errors.Is(err, usecase.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("register failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	token, err := h.tokens.EnsureToken(c.Request.Context(), user.ID)
	if err != nil {
		slog.Error("token issuance failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("user registered", "user_id", user.ID, "email", user.Email)
	c.JSON(http.StatusCreated, dto.RegisterResponse{
		UserResponse: dto.NewUserResponse(user),
		Token:        token,
	})
}

// GetSelf handles GET /v1/user/self/.
func (h *UserHandler) GetSelf(c *gin.Context) {
	actorID, ok := bearer.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}
	h.getUser(c, authz.Actor{ID: actorID}, actorID)
}

// UpdateSelf handles PUT and PATCH on /v1/user/self/.
func (h *UserHandler) UpdateSelf(c *gin.Context) {
	actorID, ok := bearer.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}
	h.updateUser(c, authz.Actor{ID: actorID}, actorID)
}

// GetByID handles GET /v1/user/:id/. A caller asking for any record other
// than their own gets 403, never a silent 404.
func (h *UserHandler) GetByID(c *gin.Context) {
	actorID, targetID, ok := h.resolveTarget(c)
	if !ok {
		return
	}
	h.getUser(c, authz.Actor{ID: actorID}, targetID)
}

// UpdateByID handles PUT and PATCH on /v1/user/:id/, with the same
// actor-must-match rule as GetByID.
func (h *UserHandler) UpdateByID(c *gin.Context) {
	actorID, targetID, ok := h.resolveTarget(c)
	if !ok {
		return
	}
	h.updateUser(c, authz.Actor{ID: actorID}, targetID)
}

// resolveTarget parses :id and enforces that it names the caller's own record.
// On any failure it writes the response and returns ok=false.
func (h *UserHandler) resolveTarget(c *gin.Context) (actorID, targetID uint, ok bool) {
	actorID, authed := bearer.UserID(c)
	if !authed {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return 0, 0, false
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, 0, false
	}
	if uint(id) != actorID {
		slog.Warn("cross-user access rejected", "actor_id", actorID, "target_id", id)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return 0, 0, false
	}
	return actorID, uint(id), true
}

func (h *UserHandler) getUser(c *gin.Context, actor authz.Actor, id uint) {
	user, err := h.users.Get(c.Request.Context(), actor, id)
	if err != nil {
		h.writeUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (h *UserHandler) updateUser(c *gin.Context, actor authz.Actor, id uint) {
	patch, err := decodeUserPatch(c.Request.Body)
	if err != nil {
		var restricted *restrictedFieldError
		if errors.As(err, &restricted) {
			slog.Warn("user update rejected: restricted field", "field", restricted.Field, "actor_id", actor.ID)
			c.JSON(http.StatusBadRequest, gin.H{"error": msgRestrictedFields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.users.Update(c.Request.Context(), actor, id, patch)
	if err != nil {
		h.writeUserError(c, err)
		return
	}
	slog.Info("user updated", "user_id", user.ID)
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// writeUserError maps usecase errors to HTTP statuses.
func (h *UserHandler) writeUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		slog.Error("user operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// restrictedFieldError marks a patch that touched a non-mutable field.
type restrictedFieldError struct {
	Field string
}

func (e *restrictedFieldError) Error() string {
	return "field is not updatable: " + e.Field
}

// decodeUserPatch parses an update body, enforcing the all-or-nothing
// restricted-field rule on the raw key set: if the body contains any key
// outside the allowed three, the entire update is refused, even if the other
// keys are legal.
func decodeUserPatch(body io.Reader) (usecase.Patch, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return usecase.Patch{}, err
	}
	if len(raw) == 0 {
		return usecase.Patch{}, nil
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return usecase.Patch{}, err
	}
	for key := range keys {
		if _, ok := allowedUpdateKeys[key]; !ok {
			return usecase.Patch{}, &restrictedFieldError{Field: key}
		}
	}

	var req dto.UpdateUserReq
	if err := json.Unmarshal(raw, &req); err != nil {
		return usecase.Patch{}, err
	}
	return usecase.Patch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	}, nil
}
