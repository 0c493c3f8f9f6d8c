package kit

import (
	"encoding/json"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// MessageResponse is the envelope used for errors and simple acknowledgements.
type MessageResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	WriteJSON(w, status, MessageResponse{
		Message:   msg,
		RequestID: chimw.GetReqID(r.Context()),
	})
}

// WriteError reports a failure; it shares the message envelope so clients
// see one shape for every non-2xx response.
func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	WriteMessage(w, r, status, msg)
}
