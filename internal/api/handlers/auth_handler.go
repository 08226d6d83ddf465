package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sachinbijalwan2892/Social-media-app/internal/models"
	"github.com/sachinbijalwan2892/Social-media-app/internal/services"
)

// AuthHandler handles HTTP requests for signup and login.
type AuthHandler struct {
	service services.AuthServiceProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.AuthServiceProvider) *AuthHandler {
	return &AuthHandler{service: service}
}

// SignupPayload defines the structure for signup requests.
type SignupPayload struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles new user registration.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.service.Signup(payload.Email, payload.Password, payload.Role)
	switch {
	case err == nil:
		respondMessage(w, http.StatusCreated, "User registered successfully")
	case errors.Is(err, services.ErrDuplicateEmail):
		respondMessage(w, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, services.ErrValidation):
		respondMessage(w, http.StatusBadRequest, "Email, password and a valid role are required")
	default:
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		respondMessage(w, http.StatusInternalServerError, "Failed to register user")
	}
}

// Login handles user authentication and session token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.service.Login(payload.Email, payload.Password)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, map[string]string{"token": token})
	case errors.Is(err, services.ErrInvalidCredentials):
		log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
		respondMessage(w, http.StatusBadRequest, "Invalid credentials")
	default:
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to log user in")
		respondMessage(w, http.StatusInternalServerError, "Failed to log in")
	}
}
