package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"tcp-user-service/internal/adapter/tcp/protocol"
	"tcp-user-service/internal/usecase/user"
	apperrors "tcp-user-service/pkg/errors"
)

// MockUsecase is a mock implementation of the user.Usecase interface
type MockUsecase struct {
	mock.Mock
}

func (m *MockUsecase) CreateUser(ctx context.Context, in user.CreateUserRequest) (*user.CreateUserResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.CreateUserResponse), args.Error(1)
}

func (m *MockUsecase) UpdateUser(ctx context.Context, in user.UpdateUserRequest) (*user.UpdateUserResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.UpdateUserResponse), args.Error(1)
}

func (m *MockUsecase) DeleteUser(ctx context.Context, in user.DeleteUserRequest) (*user.DeleteUserResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.DeleteUserResponse), args.Error(1)
}

func (m *MockUsecase) GetUser(ctx context.Context, in user.GetUserRequest) (*user.GetUserResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.GetUserResponse), args.Error(1)
}

func (m *MockUsecase) ListUsers(ctx context.Context) (*user.ListUsersResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.ListUsersResponse), args.Error(1)
}

func setupTestHandler(t *testing.T) (*UserHandler, *MockUsecase) {
	mockUC := new(MockUsecase)
	h := NewUserHandler(mockUC, zaptest.NewLogger(t))
	return h, mockUC
}

// ==================== CREATE ====================

func TestCreate_Success(t *testing.T) {
	h, mockUC := setupTestHandler(t)
	ctx := context.Background()

	mockUC.On("CreateUser", ctx, user.CreateUserRequest{Name: "John", Email: "john@example.com"}).
		Return(&user.CreateUserResponse{ID: 1}, nil)

	status, body := h.Create(ctx, "POST /users HTTP/1.1\r\n\r\n{\"name\":\"John\",\"email\":\"john@example.com\"}")

	assert.Equal(t, protocol.StatusOK, status)
	assert.Equal(t, protocol.BodyUserCreated, body)
	mockUC.AssertExpectations(t)
}

func TestCreate_MalformedBody(t *testing.T) {
	h, mockUC := setupTestHandler(t)

	status, body := h.Create(context.Background(), "POST /users HTTP/1.1\r\n\r\nnot json")

	assert.Equal(t, protocol.StatusInternalError, status)
	assert.Equal(t, protocol.BodyInternalError, body)
	mockUC.AssertNotCalled(t, "CreateUser")
}

func TestCreate_StoreFailure(t *testing.T) {
	h, mockUC := setupTestHandler(t)
	ctx := context.Background()

	mockUC.On("CreateUser", ctx, mock.Anything).
		Return(nil, apperrors.NewStoreConnectError(errors.New("connection refused")))

	status, body := h.Create(ctx, "POST /users HTTP/1.1\r\n\r\n{\"name\":\"John\",\"email\":\"john@example.com\"}")

	assert.Equal(t, protocol.StatusInternalError, status)
	assert.Equal(t, protocol.BodyInternalError, body)
}

// ==================== GET ONE ====================

func TestGetOne_Success(t *testing.T) {
	h, mockUC := setupTestHandler(t)
	ctx := context.Background()

	mockUC.On("GetUser", ctx, user.GetUserRequest{ID: 42}).
		Return(&user.GetUserResponse{ID: 42, Name: "John", Email: "john@example.com"}, nil)

	status, body := h.GetOne(ctx, "GET /users/42 HTTP/1.1\r\n\r\n")

	assert.Equal(t, protocol.StatusOK, status)
	assert.JSONEq(t, `{"id":42,"name":"John","email":"john@example.com"}`, body)
	mockUC.AssertExpectations(t)
}

func TestGetOne_NotFound(t *testing.T) {
	h, mockUC := setupTestHandler(t)
	ctx := context.Background()

	mockUC.On("GetUser", ctx, user.GetUserRequest{ID: 99}).
		Return(nil, apperrors.ErrUserNotFound)

	status, body := h.GetOne(ctx, "GET /users/99 HTTP/1.1\r\n\r\n")

	assert.Equal(t, protocol.StatusNotFound, status)
	assert.Equal(t, protocol.BodyUserNotFound, body)
}

func TestGetOne_NonNumericID(t *testing.T) {
	h, mockUC := setupTestHandler(t)

	status, body := h.GetOne(context.Background(), "GET /users/abc HTTP/1.1\r\n\r\n")

	assert.Equal(t, protocol.StatusInternalError, status)
	assert.Equal(t, protocol.BodyInternalError, body)
	mockUC.AssertNotCalled(t, "GetUser")
}

// ==================== GET ALL ====================

func TestGetAll_Success(t *testing.T) {
	h, mockUC := setupTestHandler(t)
	ctx := context.Background()

	mockUC.On("ListUsers", ctx).Return(&user.ListUsersResponse{
		Users: []user.User{
			{ID: 1, Name: "John", Email: "john@example.com"},
			{ID: 2, Name: "Jane", Email: "jane@example.com"},
		},
	}, nil)

	status, body := h.GetAll(ctx, "GET /users HTTP/1.1\r\n\r\n")

	assert.Equal(t, protocol.StatusOK, status)
	assert.JSONEq(t, `[{"id":1,"name":"John","email":"john@example.com"},{"id":2,"name":"Jane","email":"jane@example.com"}]`, body)
}

func TestGetAll_EmptyTable(t *testing.T) {
	h, mockUC := setupTestHandler(t)
	ctx := context.Background()

	mockUC.On("ListUsers", ctx).Return(&user.ListUsersResponse{Users: []user.User{}}, nil)

	status, body := h.GetAll(ctx, "GET /users HTTP/1.1\r\n\r\n")

	assert.Equal(t, protocol.StatusOK, status)
	assert.Equal(t, "[]", body)
}

func TestGetAll_StoreFailure(t *testing.T) {
	h, mockUC := setupTestHandler(t)
	ctx := context.Background()

	mockUC.On("ListUsers", ctx).
		Return(nil, apperrors.NewStoreQueryError("failed to list users", errors.New("boom")))

	status, body := h.GetAll(ctx, "GET /users HTTP/1.1\r\n\r\n")

	assert.Equal(t, protocol.StatusInternalError, status)
	assert.Equal(t, protocol.BodyInternalError, body)
}

// ==================== UPDATE ====================

func TestUpdate_Success(t *testing.T) {
	h, mockUC := setupTestHandler(t)
	ctx := context.Background()

	mockUC.On("UpdateUser", ctx, user.UpdateUserRequest{ID: 7, Name: "Jane", Email: "jane@example.com"}).
		Return(&user.UpdateUserResponse{ID: 7}, nil)

	status, body := h.Update(ctx, "PUT /users/7 HTTP/1.1\r\n\r\n{\"name\":\"Jane\",\"email\":\"jane@example.com\"}")

	assert.Equal(t, protocol.StatusOK, status)
	assert.Equal(t, protocol.BodyUserUpdated, body)
	mockUC.AssertExpectations(t)
}

func TestUpdate_MalformedBody(t *testing.T) {
	h, mockUC := setupTestHandler(t)

	status, body := h.Update(context.Background(), "PUT /users/7 HTTP/1.1\r\n\r\n{broken")

	assert.Equal(t, protocol.StatusInternalError, status)
	assert.Equal(t, protocol.BodyInternalError, body)
	mockUC.AssertNotCalled(t, "UpdateUser")
}

func TestUpdate_MissingID(t *testing.T) {
	h, mockUC := setupTestHandler(t)

	status, body := h.Update(context.Background(), "PUT /users/ HTTP/1.1\r\n\r\n{\"name\":\"Jane\",\"email\":\"jane@example.com\"}")

	assert.Equal(t, protocol.StatusInternalError, status)
	assert.Equal(t, protocol.BodyInternalError, body)
	mockUC.AssertNotCalled(t, "UpdateUser")
}

// ==================== DELETE ====================

func TestDelete_Success(t *testing.T) {
	h, mockUC := setupTestHandler(t)
	ctx := context.Background()

	mockUC.On("DeleteUser", ctx, user.DeleteUserRequest{ID: 3}).
		Return(&user.DeleteUserResponse{ID: 3}, nil)

	status, body := h.Delete(ctx, "DELETE /users/3 HTTP/1.1\r\n\r\n")

	assert.Equal(t, protocol.StatusOK, status)
	assert.Equal(t, protocol.BodyUserDeleted, body)
}

func TestDelete_NotFound(t *testing.T) {
	h, mockUC := setupTestHandler(t)
	ctx := context.Background()

	mockUC.On("DeleteUser", ctx, user.DeleteUserRequest{ID: 99}).
		Return(nil, apperrors.ErrUserNotFound)

	status, body := h.Delete(ctx, "DELETE /users/99 HTTP/1.1\r\n\r\n")

	assert.Equal(t, protocol.StatusNotFound, status)
	assert.Equal(t, protocol.BodyUserNotFound, body)
}

func TestDelete_NonNumericID(t *testing.T) {
	h, mockUC := setupTestHandler(t)

	status, body := h.Delete(context.Background(), "DELETE /users/oops HTTP/1.1\r\n\r\n")

	assert.Equal(t, protocol.StatusInternalError, status)
	assert.Equal(t, protocol.BodyInternalError, body)
	mockUC.AssertNotCalled(t, "DeleteUser")
}

func TestHandlerRequiresValidJSONShape(t *testing.T) {
	h, _ := setupTestHandler(t)

	// Shape requires both name and email as strings.
	status, _ := h.Create(context.Background(), "POST /users HTTP/1.1\r\n\r\n{\"name\":\"only a name\"}")
	require.Equal(t, protocol.StatusInternalError, status)
}
