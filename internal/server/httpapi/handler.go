package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fittrackhq/fittrack/internal/common"
	"github.com/fittrackhq/fittrack/internal/server/auth"
	"github.com/fittrackhq/fittrack/internal/server/models"
	"github.com/fittrackhq/fittrack/internal/server/services"
)

// User-facing messages. Authentication failures share one generic message
// so responses cannot be used to probe which emails are registered.
const (
	msgInvalidCredentials = "invalid email or password"
	msgMissingCredentials = "email and password are required"
	msgTryAgain           = "something went wrong, please try again"
)

type loginRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	CallbackURL string `json:"callbackUrl"`
}

type registerRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	CallbackURL     string `json:"callbackUrl"`
}

type authResponse struct {
	User        auth.Session `json:"user"`
	RedirectURL string       `json:"redirectUrl"`
}

type goalsRequest struct {
	CurrentWeight float64 `json:"currentWeight"`
	TargetWeight  float64 `json:"targetWeight"`
	CalorieGoal   int     `json:"calorieGoal"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// setSessionCookie issues the token cookie; maxAge < 0 clears it.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// issueSession mints and sets the session token for a verified user and
// builds the common auth response.
func (s *Server) issueSession(w http.ResponseWriter, r *http.Request, user *models.User, callbackURL string) (authResponse, bool) {
	claims := auth.NewClaims(user.Identity())

	token, err := auth.SignToken(claims, s.jwtSecret, s.sessionValidity)
	if err != nil {
		s.logger.Error(r.Context(), "token signing failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgTryAgain)
		return authResponse{}, false
	}

	s.setSessionCookie(w, token, int(s.sessionValidity.Seconds()))

	return authResponse{
		User:        claims.Session(),
		RedirectURL: auth.ResolveRedirect(callbackURL, s.baseURL),
	}, true
}

// handleLogin implements POST /api/auth/login.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrMissingCredentials):
			s.metrics.RecordLoginAttempt(OutcomeDenied)
			writeError(w, http.StatusBadRequest, msgMissingCredentials)
		case errors.Is(err, common.ErrUserNotFound), errors.Is(err, common.ErrInvalidPassword):
			// the specific failure stays in the logs only
			s.metrics.RecordLoginAttempt(OutcomeDenied)
			s.logger.Warn(r.Context(), "login denied", "reason", err.Error())
			writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
		default:
			s.metrics.RecordLoginAttempt(OutcomeError)
			s.logger.Error(r.Context(), "login failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, msgTryAgain)
		}
		return
	}

	resp, ok := s.issueSession(w, r, user, req.CallbackURL)
	if !ok {
		return
	}

	s.metrics.RecordLoginAttempt(OutcomeSuccess)
	writeJSON(w, http.StatusOK, resp)
}

// handleRegister implements POST /api/auth/register.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.users.Register(r.Context(), services.RegisterParams{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, common.ErrEmailTaken):
			writeError(w, http.StatusConflict, common.ErrEmailTaken.Error())
		default:
			s.logger.Error(r.Context(), "registration failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, msgTryAgain)
		}
		return
	}

	resp, ok := s.issueSession(w, r, user, req.CallbackURL)
	if !ok {
		return
	}

	s.metrics.RecordRegistration()
	writeJSON(w, http.StatusCreated, resp)
}

// handleLogout implements POST /api/auth/logout.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.setSessionCookie(w, "", -1)
	w.WriteHeader(http.StatusNoContent)
}

// handleSession implements GET /api/auth/session: it re-projects the token
// into the client-visible session on every call.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	claims, err := auth.ParseToken(cookie.Value, s.jwtSecret)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	writeJSON(w, http.StatusOK, claims.Session())
}

// handleDashboard implements GET /api/dashboard.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	overview, err := s.dashboard.Overview(r.Context(), claims.UserID)
	if err != nil {
		s.logger.Error(r.Context(), "dashboard overview failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgTryAgain)
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

// handleUpdateGoals implements PUT /api/dashboard/goals.
func (s *Server) handleUpdateGoals(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req goalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	goals, err := s.dashboard.UpdateGoals(r.Context(), claims.UserID, services.UpdateGoalsParams{
		CurrentWeight: req.CurrentWeight,
		TargetWeight:  req.TargetWeight,
		CalorieGoal:   req.CalorieGoal,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "goals not found")
			return
		}
		s.logger.Error(r.Context(), "goals update failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgTryAgain)
		return
	}

	writeJSON(w, http.StatusOK, goals)
}

// handleAvatarUploadURL implements POST /api/avatar/upload-url.
func (s *Server) handleAvatarUploadURL(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	url, key, err := s.avatars.UploadURL(r.Context(), claims.UserID)
	if err != nil {
		s.logger.Error(r.Context(), "avatar upload URL failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgTryAgain)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"uploadUrl": url, "key": key})
}

// handleAvatarConfirm implements POST /api/avatar.
func (s *Server) handleAvatarConfirm(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.avatars.Confirm(r.Context(), claims.UserID, req.Key); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		s.logger.Error(r.Context(), "avatar confirm failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgTryAgain)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleAvatarViewURL implements GET /api/avatar/url.
func (s *Server) handleAvatarViewURL(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	url, err := s.avatars.ViewURL(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "no avatar set")
			return
		}
		s.logger.Error(r.Context(), "avatar view URL failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgTryAgain)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
