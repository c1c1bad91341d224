package handler

import (
	"context"
	"encoding/json"
	"strconv"

	"go.uber.org/zap"

	"tcp-user-service/internal/adapter/tcp/protocol"
	"tcp-user-service/internal/usecase/user"
	apperrors "tcp-user-service/pkg/errors"
)

// UserHandler converts raw requests into status-line/body pairs. Every
// failure collapses onto one of the canonical responses: not-found errors
// become 404, everything else becomes a generic 500.
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// UserResponse represents the JSON response for user data
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Create handles POST /users
func (h *UserHandler) Create(ctx context.Context, raw string) (string, string) {
	payload, err := protocol.ExtractBody(raw)
	if err != nil {
		h.log.Warn("invalid create user body", zap.Error(err))
		return h.fail(err)
	}

	_, err = h.uc.CreateUser(ctx, user.CreateUserRequest{
		Name:  payload.Name,
		Email: payload.Email,
	})
	if err != nil {
		h.log.Error("create user failed", zap.Error(err))
		return h.fail(err)
	}

	return protocol.StatusOK, protocol.BodyUserCreated
}

// GetOne handles GET /users/{id}
func (h *UserHandler) GetOne(ctx context.Context, raw string) (string, string) {
	id, err := h.parseID(raw)
	if err != nil {
		h.log.Warn("invalid user id", zap.Error(err))
		return h.fail(err)
	}

	resp, err := h.uc.GetUser(ctx, user.GetUserRequest{ID: id})
	if err != nil {
		return h.fail(err)
	}

	body, err := json.Marshal(UserResponse{
		ID:    resp.ID,
		Name:  resp.Name,
		Email: resp.Email,
	})
	if err != nil {
		h.log.Error("failed to encode user", zap.Int64("id", id), zap.Error(err))
		return protocol.StatusInternalError, protocol.BodyInternalError
	}

	return protocol.StatusOK, string(body)
}

// GetAll handles GET /users
func (h *UserHandler) GetAll(ctx context.Context, raw string) (string, string) {
	resp, err := h.uc.ListUsers(ctx)
	if err != nil {
		return h.fail(err)
	}

	// Non-nil slice keeps the empty-table encoding a JSON array.
	users := make([]UserResponse, 0, len(resp.Users))
	for _, u := range resp.Users {
		users = append(users, UserResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
		})
	}

	body, err := json.Marshal(users)
	if err != nil {
		h.log.Error("failed to encode user list", zap.Error(err))
		return protocol.StatusInternalError, protocol.BodyInternalError
	}

	return protocol.StatusOK, string(body)
}

// Update handles PUT /users/{id}
func (h *UserHandler) Update(ctx context.Context, raw string) (string, string) {
	id, err := h.parseID(raw)
	if err != nil {
		h.log.Warn("invalid user id", zap.Error(err))
		return h.fail(err)
	}

	payload, err := protocol.ExtractBody(raw)
	if err != nil {
		h.log.Warn("invalid update user body", zap.Int64("id", id), zap.Error(err))
		return h.fail(err)
	}

	_, err = h.uc.UpdateUser(ctx, user.UpdateUserRequest{
		ID:    id,
		Name:  payload.Name,
		Email: payload.Email,
	})
	if err != nil {
		h.log.Error("update user failed", zap.Int64("id", id), zap.Error(err))
		return h.fail(err)
	}

	return protocol.StatusOK, protocol.BodyUserUpdated
}

// Delete handles DELETE /users/{id}
func (h *UserHandler) Delete(ctx context.Context, raw string) (string, string) {
	id, err := h.parseID(raw)
	if err != nil {
		h.log.Warn("invalid user id", zap.Error(err))
		return h.fail(err)
	}

	_, err = h.uc.DeleteUser(ctx, user.DeleteUserRequest{ID: id})
	if err != nil {
		return h.fail(err)
	}

	return protocol.StatusOK, protocol.BodyUserDeleted
}

// parseID extracts and parses the path id segment.
func (h *UserHandler) parseID(raw string) (int64, error) {
	idStr := protocol.ExtractID(raw)
	if idStr == "" {
		return 0, apperrors.NewIDParseError("id segment missing")
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, apperrors.NewIDParseError("id is not numeric")
	}
	return id, nil
}

// fail maps an error onto the wire response pair.
func (h *UserHandler) fail(err error) (string, string) {
	if apperrors.IsNotFound(err) {
		return protocol.StatusNotFound, protocol.BodyUserNotFound
	}
	return protocol.StatusInternalError, protocol.BodyInternalError
}
