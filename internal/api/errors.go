package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogapi/internal/domain"
	"blogapi/pkg/validation"
)

type problemResponse struct {
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func writeProblem(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(problemResponse{Status: status, Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps service errors onto HTTP statuses: domain not-found to
// 404, username conflict to 409, validation failures to 400, anything
// else to 500.
func writeError(w http.ResponseWriter, err error) {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		writeProblem(w, http.StatusNotFound, notFound.Error())
		return
	}

	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		writeProblem(w, http.StatusConflict, conflict.Error())
		return
	}

	var invalid *validation.Error
	if errors.As(err, &invalid) {
		writeProblem(w, http.StatusBadRequest, invalid.Error())
		return
	}

	writeProblem(w, http.StatusInternalServerError, "Internal server error")
}
