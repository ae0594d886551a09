package testserver

import (
	"net/http"
	"strings"

	"github.com/iudanet/matrimony-client/pkg/api"
)

// AccessTokenTTL сообщается клиенту в expiresIn
const AccessTokenTTL = 900

func (s *Backend) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if !decode(r, &req) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.emails[strings.ToLower(req.Email)]; exists {
		writeError(w, http.StatusConflict, "user already exists")
		return
	}

	id := s.addUserLocked(req.Email, req.Password, api.UserProfile{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
	})
	u := s.users[id]

	writeJSON(w, http.StatusCreated, api.OK(&api.RegisterResult{User: summary(u.profile)}))
}

func (s *Backend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if !decode(r, &req) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.emails[strings.ToLower(req.Email)]
	if !ok || s.users[id].password != req.Password {
		// Неверные данные приходят как HTTP 200 с success=false
		writeFailure(w, "Invalid credentials")
		return
	}

	access, refresh, err := s.issueTokensLocked(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeOK(w, &api.LoginResult{
		User:         summary(s.users[id].profile),
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    AccessTokenTTL,
	})
}

func (s *Backend) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	s.mu.Lock()
	delete(s.accessTokens, token)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, api.Response[api.Empty]{Success: true, Message: "Logged out"})
}

func (s *Backend) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req api.RefreshRequest
	if !decode(r, &req) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.refreshTokens[req.RefreshToken]
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	access, err := s.issueAccessTokenLocked(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeOK(w, &api.RefreshResult{AccessToken: access, ExpiresIn: AccessTokenTTL})
}

func (s *Backend) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req api.ForgotPasswordRequest
	if !decode(r, &req) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// Ответ не раскрывает, существует ли пользователь
	writeJSON(w, http.StatusOK, api.Response[api.Empty]{Success: true, Message: "OTP sent"})
}

func (s *Backend) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req api.ResetPasswordRequest
	if !decode(r, &req) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.emails[strings.ToLower(req.Email)]
	if !ok || req.OTP != ValidOTP {
		writeFailure(w, "Invalid or expired OTP")
		return
	}
	s.users[id].password = req.NewPassword

	writeJSON(w, http.StatusOK, api.Response[api.Empty]{Success: true, Message: "Password updated"})
}

func summary(p api.UserProfile) api.UserSummary {
	return api.UserSummary{ID: p.ID, Email: p.Email, FirstName: p.FirstName, LastName: p.LastName}
}
