package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/leadboard/internal/usecase"
)


type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}


func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}


// writeError is the orchestration boundary: every taxonomy error is
// converted to a user-facing payload here, nothing is retried.
func writeError(w http.ResponseWriter, err error) {
	code := usecase.ErrorCode(err)

	status := http.StatusInternalServerError
	switch code {
	case usecase.CodeAuthRequired:
		status = http.StatusUnauthorized
	case usecase.CodeFormat:
		status = http.StatusBadRequest
	case usecase.CodeNotFound:
		status = http.StatusNotFound
	case usecase.CodeNetwork, usecase.CodeSync:
		status = http.StatusBadGateway
	}

	writeJSON(w, status, errorResponse{Error: err.Error(), Code: code})
}
