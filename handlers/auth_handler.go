package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Dosada05/card-league/middleware"
	"github.com/Dosada05/card-league/services"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	authService services.AuthService
	jwtSecret   []byte
}

func NewAuthHandler(as services.AuthService, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		authService: as,
		jwtSecret:   []byte(jwtSecret),
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login обрабатывает POST /api/auth/login и выдаёт admin токен
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Password == "" {
		badRequestResponse(w, r, errors.New("password is required"))
		return
	}

	if err := h.authService.Login(r.Context(), input.Password); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	now := time.Now()
	token, err := middleware.NewAdminToken(h.jwtSecret, tokenTTL, now)
	if err != nil {
		serverErrorResponse(w, r, fmt.Errorf("failed to sign token: %w", err))
		return
	}

	response := jsonResponse{
		"token":      token,
		"expires_at": now.Add(tokenTTL).UTC(),
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
