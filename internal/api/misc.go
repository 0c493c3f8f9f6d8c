package api

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"ShopDemo/pkg/kit"
)

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// handleHealth is open to anonymous callers; a bearer token, if present,
// only enriches the log line.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if token := bearerToken(r); token != "" {
		if userID, ok := s.Sessions.ValidateSession(token); ok {
			s.Log.Info("health check", zap.String("user_id", userID))
		} else {
			s.Log.Info("health check", zap.String("user_id", "anonymous"))
		}
	}

	kit.WriteJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}

type configResponse struct {
	WebViewURL   string          `json:"webViewUrl"`
	FeatureFlags map[string]bool `json:"featureFlags"`
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, configResponse{
		WebViewURL: s.Cfg.Portal.WebViewURL,
		FeatureFlags: map[string]bool{
			"EnableTelemetry":        s.Cfg.Features.Telemetry,
			"EnableAdvancedFeatures": s.Cfg.Features.Advanced,
		},
	})
}
