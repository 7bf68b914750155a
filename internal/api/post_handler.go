package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"blogapi/internal/domain"
	"blogapi/pkg/logger"
	"blogapi/pkg/validation"
)

type postRequest struct {
	UserID int    `json:"userId" validate:"required"`
	Title  string `json:"title" validate:"required"`
	Body   string `json:"body" validate:"required"`
}

var postMessages = validation.Messages{
	"UserID.required": domain.PostUserCannotBeBlank,
	"Title.required":  domain.PostTitleCannotBeBlank,
	"Body.required":   domain.PostBodyCannotBeBlank,
}

type PostHandler struct {
	service   domain.PostService
	validator *validation.Validator
	logger    logger.Logger
}

func NewPostHandler(service domain.PostService, validator *validation.Validator, logger logger.Logger) *PostHandler {
	return &PostHandler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.GetPosts()
	if err != nil {
		h.logger.Error("Failed to list posts", map[string]interface{}{"error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	post, err := h.service.GetPost(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request body", map[string]interface{}{"error": err.Error()})
		writeProblem(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req, postMessages); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.service.CreatePost(domain.Post{
		UserID: req.UserID,
		Title:  req.Title,
		Body:   req.Body,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/posts/%d", created.ID))
	writeJSON(w, http.StatusCreated, created)
}

func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request body", map[string]interface{}{"error": err.Error()})
		writeProblem(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req, postMessages); err != nil {
		writeError(w, err)
		return
	}

	err := h.service.UpdatePost(id, domain.Post{
		UserID: req.UserID,
		Title:  req.Title,
		Body:   req.Body,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeletePost(id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PostHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/posts", h.GetPosts)
	mux.HandleFunc("GET /api/v1/posts/{id}", h.GetPost)
	mux.HandleFunc("POST /api/v1/posts", h.CreatePost)
	mux.HandleFunc("PUT /api/v1/posts/{id}", h.UpdatePost)
	mux.HandleFunc("DELETE /api/v1/posts/{id}", h.DeletePost)
}
