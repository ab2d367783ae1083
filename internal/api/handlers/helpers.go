package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// writeJSON writes v as the JSON response body. Once the status header is
// out an encode failure can only be logged, not reported to the client.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("response encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

// writeError sends a {"error": msg} body with the given status. Every
// handler error path goes through here so clients see one error shape.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}
