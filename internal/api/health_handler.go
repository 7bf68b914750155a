package api

import (
	"net/http"
	"time"

	"blogapi/internal/domain"
	"blogapi/pkg/logger"
)

type HealthHandler struct {
	userService domain.UserService
	postService domain.PostService
	logger      logger.Logger
}

type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Services  map[string]interface{} `json:"services"`
	Version   string                 `json:"version"`
}

func NewHealthHandler(userService domain.UserService, postService domain.PostService, logger logger.Logger) *HealthHandler {
	return &HealthHandler{
		userService: userService,
		postService: postService,
		logger:      logger,
	}
}

func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	services := make(map[string]interface{})

	services["users"] = h.checkUsers()
	services["posts"] = h.checkPosts()

	status := "healthy"
	for _, service := range services {
		if serviceMap, ok := service.(map[string]interface{}); ok {
			if serviceStatus, exists := serviceMap["status"]; exists {
				if serviceStatus != "healthy" {
					status = "degraded"
					break
				}
			}
		}
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Services:  services,
		Version:   "1.0.0",
	}

	if status == "healthy" {
		writeJSON(w, http.StatusOK, response)
	} else {
		writeJSON(w, http.StatusServiceUnavailable, response)
	}
}

func (h *HealthHandler) checkUsers() map[string]interface{} {
	users, err := h.userService.GetUsers()
	if err != nil {
		return map[string]interface{}{
			"status": "unhealthy",
			"error":  err.Error(),
		}
	}

	return map[string]interface{}{
		"status": "healthy",
		"count":  len(users),
	}
}

func (h *HealthHandler) checkPosts() map[string]interface{} {
	posts, err := h.postService.GetPosts()
	if err != nil {
		return map[string]interface{}{
			"status": "unhealthy",
			"error":  err.Error(),
		}
	}

	return map[string]interface{}{
		"status": "healthy",
		"count":  len(posts),
	}
}

func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.HealthCheck)
}
