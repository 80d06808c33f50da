package api

import (
	"encoding/json"
	"log"
	"net/http"

	apperrors "carrental/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	httpErr := apperrors.FromError(err)
	if httpErr.Code >= http.StatusInternalServerError {
		log.Printf("[%s] %s %s failed: %v", RequestID(r.Context()), r.Method, r.URL.Path, err)
	}
	writeJSON(w, httpErr.Code, ErrorResponse{Error: httpErr.Message})
}
