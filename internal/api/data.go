package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"ShopDemo/pkg/kit"
)

// Submission is one client telemetry record.
type Submission struct {
	CorrelationID string  `json:"correlationId"`
	SessionName   string  `json:"sessionName"`
	Notes         string  `json:"notes"`
	NumericValue  float64 `json:"numericValue"`
}

// SubmissionLog is an append-only, process-lifetime record of submissions.
type SubmissionLog struct {
	mu   sync.Mutex
	subs []Submission
}

func NewSubmissionLog() *SubmissionLog {
	return &SubmissionLog{}
}

func (l *SubmissionLog) Append(s Submission) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.subs = append(l.subs, s)
	return len(l.subs)
}

func (l *SubmissionLog) All() []Submission {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Submission, len(l.subs))
	copy(out, l.subs)
	return out
}

type submitResponse struct {
	IsSuccessful  bool      `json:"isSuccessful"`
	Message       string    `json:"message"`
	CorrelationID string    `json:"correlationId"`
	Timestamp     time.Time `json:"timestamp"`
}

func (s *Server) handleSubmitData(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var sub Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	total := s.Subs.Append(sub)
	s.Log.Info("data submission",
		zap.String("correlation_id", sub.CorrelationID),
		zap.String("session_name", sub.SessionName),
		zap.Int("total", total),
	)

	kit.WriteJSON(w, http.StatusOK, submitResponse{
		IsSuccessful:  true,
		Message:       "Data received successfully",
		CorrelationID: sub.CorrelationID,
		Timestamp:     time.Now().UTC(),
	})
}

func (s *Server) handleListData(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Subs.All())
}
