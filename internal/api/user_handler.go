package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"blogapi/internal/domain"
	"blogapi/pkg/logger"
	"blogapi/pkg/validation"
)

type userRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

var userMessages = validation.Messages{
	"Name.required":     domain.NameCannotBeBlank,
	"Username.required": domain.UsernameCannotBeBlank,
	"Email.required":    domain.EmailCannotBeBlank,
	"Email.email":       domain.EmailMustBeValid,
}

type UserHandler struct {
	service   domain.UserService
	validator *validation.Validator
	logger    logger.Logger
}

func NewUserHandler(service domain.UserService, validator *validation.Validator, logger logger.Logger) *UserHandler {
	return &UserHandler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetUsers()
	if err != nil {
		h.logger.Error("Failed to list users", map[string]interface{}{"error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.service.GetUser(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request body", map[string]interface{}{"error": err.Error()})
		writeProblem(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req, userMessages); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.service.CreateUser(domain.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/users/%d", created.ID))
	writeJSON(w, http.StatusCreated, created)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request body", map[string]interface{}{"error": err.Error()})
		writeProblem(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req, userMessages); err != nil {
		writeError(w, err)
		return
	}

	err := h.service.UpdateUser(id, domain.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteUser(id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	posts, err := h.service.GetUserPosts(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

func (h *UserHandler) GetUserPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	postID, ok := pathID(w, r, "postId")
	if !ok {
		return
	}

	post, err := h.service.GetUserPost(id, postID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *UserHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/users", h.GetUsers)
	mux.HandleFunc("GET /api/v1/users/{id}", h.GetUser)
	mux.HandleFunc("POST /api/v1/users", h.CreateUser)
	mux.HandleFunc("PUT /api/v1/users/{id}", h.UpdateUser)
	mux.HandleFunc("DELETE /api/v1/users/{id}", h.DeleteUser)
	mux.HandleFunc("GET /api/v1/users/{id}/posts", h.GetUserPosts)
	mux.HandleFunc("GET /api/v1/users/{id}/posts/{postId}", h.GetUserPost)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id < 1 {
		writeProblem(w, http.StatusBadRequest, "Invalid id: "+r.PathValue(name))
		return 0, false
	}
	return id, true
}
