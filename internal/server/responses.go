package server

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the envelope for every non-2xx reply. The lookup boundary
// never surfaces raw errors to the transport; everything becomes one of
// these.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
