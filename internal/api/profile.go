package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"ShopDemo/pkg/kit"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.Sessions.ValidateSession(bearerToken(r))
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "Invalid or missing token")
		return
	}

	profile, ok := s.Sessions.Profile(userID)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Profile not found")
		return
	}

	kit.WriteJSON(w, http.StatusOK, profile)
}

type updateProfileReq struct {
	UserID   string `json:"userId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.Sessions.ValidateSession(bearerToken(r))
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "Invalid or missing token")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req updateProfileReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	// A session only entitles the caller to its own profile.
	if req.UserID != userID {
		s.Log.Warn("profile update for another user",
			zap.String("user_id", userID),
			zap.String("target_user_id", req.UserID),
		)
		kit.WriteError(w, r, http.StatusForbidden, "You can only update your own profile")
		return
	}

	if !s.Sessions.UpdateProfile(userID, req.FullName, req.Email) {
		kit.WriteError(w, r, http.StatusBadRequest, "Profile update failed")
		return
	}

	kit.WriteMessage(w, r, http.StatusOK, "Profile updated successfully")
}
