package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/o-tatsuki1029/jobtv-matching/internal/types"
)

// ExecuteMatchingResponse is the response for POST /matching/execute.
type ExecuteMatchingResponse struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}

// MatchingResultsResponse is the response for GET /matching/{id}.
type MatchingResultsResponse struct {
	Session *types.MatchingSession `json:"session"`
	Results []types.MatchingResult `json:"results"`
}

// handleLogin authenticates an operator and returns a bearer token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	operator, err := s.db.GetOperatorByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("login: failed to look up operator: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if operator == nil || !s.passwordConfig.VerifyPassword(req.Password, operator.PasswordHash) {
		credErr := &ErrInvalidCredentials{}
		s.errorResponse(w, HTTPStatus(credErr), credErr.Error())
		return
	}

	token, err := s.jwtService.GenerateToken(operator.ID)
	if err != nil {
		log.Printf("login: failed to generate token: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.LoginResponse{Token: token})
}

// handleExecuteMatching runs the matching engine for an event.
func (s *Server) handleExecuteMatching(w http.ResponseWriter, r *http.Request) {
	var req types.ExecuteMatchingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	sessionID, err := s.engine.ExecuteMatching(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, ExecuteMatchingResponse{
		SessionID: sessionID.String(),
		Status:    string(types.SessionCompleted),
	})
}

// handleGetMatching returns a session's configuration and its schedule with
// freshly recomputed match scores.
func (s *Server) handleGetMatching(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid session id")
		return
	}

	session, err := s.db.GetSession(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if session == nil {
		s.errorResponse(w, http.StatusNotFound, "Matching session not found")
		return
	}

	results, err := s.engine.GetMatchingResults(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, MatchingResultsResponse{
		Session: session,
		Results: results,
	})
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
