package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"travel-estimate-service/internal/api/dto"
)

// NewSession mints an anonymous session identifier. Sessions are held
// client-side for the client's lifetime and exist only as a grouping key
// for the query log; nothing is stored server-side.
func NewSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.SessionResponse{SessionID: uuid.NewString()})
}
