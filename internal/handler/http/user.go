package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/user"
	"github.com/seika-clinic/attendance-backend-go/internal/handler/http/middleware"
	"github.com/seika-clinic/attendance-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateRole(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{
		userService: userService,
	}
}

// Create implements UserHandler.
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq user.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create user validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.userService.Create(r.Context(), &createReq)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created successfully", user.ToResponse(created))
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		slog.Error("List users service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, user.ToResponses(users))
}

// UpdateRole implements UserHandler.
func (h *UserHandlerImpl) UpdateRole(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.UserID(r)
	id := chi.URLParam(r, "id")

	var roleReq user.UpdateUserRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&roleReq); err != nil {
		slog.Error("Update user role decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := roleReq.Validate(); err != nil {
		slog.Error("Update user role validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.userService.UpdateRole(r.Context(), actorID, id, &roleReq); err != nil {
		slog.Error("Update user role service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User role updated successfully", nil)
}

// Delete implements UserHandler.
func (h *UserHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.UserID(r)
	id := chi.URLParam(r, "id")

	if err := h.userService.Delete(r.Context(), actorID, id); err != nil {
		slog.Error("Delete user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deleted successfully", nil)
}
