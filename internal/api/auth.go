package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"ShopDemo/pkg/kit"
)

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req loginReq
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	res := s.Sessions.Authenticate(req.Username, req.Password)
	if !res.Success {
		s.Log.Warn("login failed", zap.String("username", req.Username))
		kit.WriteError(w, r, http.StatusUnauthorized, res.Message)
		return
	}

	kit.WriteJSON(w, http.StatusOK, res)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "No token provided")
		return
	}

	if !s.Sessions.Logout(token) {
		kit.WriteError(w, r, http.StatusBadRequest, "Logout failed")
		return
	}

	kit.WriteMessage(w, r, http.StatusOK, "Logged out successfully")
}
