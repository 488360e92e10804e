package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Hema-A-05/MERN-flasklite/internal/service"
	"github.com/Hema-A-05/MERN-flasklite/internal/utils"

	"github.com/rs/zerolog"
)

type AuthHTTP struct {
	svc *service.AuthService
	log zerolog.Logger
}

func NewAuthHTTP(s *service.AuthService, log zerolog.Logger) *AuthHTTP {
	return &AuthHTTP{svc: s, log: log}
}

// POST /login
func (h *AuthHTTP) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		token, err := h.svc.Login(r.Context(), in.Email, in.Password)
		if err != nil {
			if !errors.Is(err, service.ErrInvalidCredentials) {
				h.log.Error().Err(err).Msg("login")
				utils.Error(w, http.StatusInternalServerError, "internal error")
				return
			}
			utils.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.JSON(w, http.StatusOK, map[string]string{"token": token})
	}
}
