package server

import (
	"encoding/json"
	"net/http"

	"github.com/spark-portfolio/spark/internal/types"
)

// LoginResponse represents the login response with profile data and session token.
type LoginResponse struct {
	Profile types.Profile `json:"profile"`
	Token   string        `json:"token"`
}

// handleLogin authenticates the seeded student credentials and issues a
// session token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	if !s.dataset.Authenticate(req.Username, req.Password) {
		err := &ErrInvalidCredentials{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	profile := s.dataset.Profile()
	token, err := s.jwtService.GenerateToken(profile.StudentID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create session: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, LoginResponse{Profile: profile, Token: token})
}

// handleMe returns the authenticated student's summary record.
func (s *Server) handleMe(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.dataset.Profile())
}

// handleGetProfile returns the full profile record.
func (s *Server) handleGetProfile(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.dataset.Profile())
}

// handleUpdateProfile applies the editable profile fields.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile fields: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.dataset.UpdateProfile(req))
}
