package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"bloghub/internal/httputil"
	"bloghub/internal/model"
	"bloghub/internal/service"
	"bloghub/internal/transport/http/middleware"
)

type AuthHandler struct {
	authService       *service.AuthService
	accessTokenMaxAge int
}

func NewAuthHandler(authService *service.AuthService, accessTokenMaxAge int) *AuthHandler {
	return &AuthHandler{
		authService:       authService,
		accessTokenMaxAge: accessTokenMaxAge,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUsernameRequired):
			httputil.WriteValidationError(w, "username", "Username is required")
		case errors.Is(err, model.ErrPasswordTooShort):
			httputil.WriteValidationError(w, "password", "Password must be at least 8 characters")
		case errors.Is(err, model.ErrUsernameExists):
			httputil.WriteConflict(w, "Username already taken")
		default:
			log.Printf("[ERROR] Register handler: %v", err)
			httputil.WriteInternalError(w, "Failed to register")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, user)
}

// Login handles POST /auth/login
// On success the access token is returned in the body and set as a cookie so
// both API clients and browsers can authenticate subsequent requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	tokens, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			httputil.WriteUnauthorized(w, "Invalid username or password")
			return
		}
		log.Printf("[ERROR] Login handler: %v", err)
		httputil.WriteInternalError(w, "Failed to log in")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    tokens.AccessToken,
		Path:     "/",
		MaxAge:   h.accessTokenMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	httputil.WriteJSON(w, http.StatusOK, tokens)
}

// Logout handles POST /auth/logout by clearing the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me handles GET /me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		log.Printf("[ERROR] Me handler: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w, "Failed to get profile")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, user)
}
