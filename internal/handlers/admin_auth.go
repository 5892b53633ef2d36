package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/vkc/ponto_backendl/config"
	"github.com/vkc/ponto_backendl/internal/pkg/response"
	"github.com/vkc/ponto_backendl/internal/services/auth"
)

// LoginHandler exchanges the ops credentials for a JWT. Disabled unless an
// ADMIN_PASSWORD_HASH (bcrypt) is configured.
func LoginHandler(cfg *config.Config, jwtService *auth.JWTService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cfg.AdminPasswordHash == "" {
			response.RespondWithError(w, http.StatusServiceUnavailable, "Admin login disabled")
			return
		}

		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			response.RespondWithError(w, http.StatusBadRequest, "Invalid request")
			return
		}

		if body.Username != cfg.AdminUser ||
			bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(body.Password)) != nil {
			response.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		token, err := jwtService.GenerateToken(body.Username, "admin")
		if err != nil {
			log.Printf("Failed to generate token: %v", err)
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
			return
		}
		response.RespondWithJSON(w, http.StatusOK, map[string]string{"token": token})
	}
}
