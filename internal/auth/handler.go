package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/igrejamossoro/servicos-lambda/internal/config"
)

const sessionDuration = 24 * time.Hour

type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type Handler struct {
	username string
	password string
}

// NewHandler reads the single admin credential pair from the environment.
// The defaults match the seeded installation.
func NewHandler() *Handler {
	return &Handler{
		username: config.GetEnv("ADMIN_USERNAME", "admin"),
		password: config.GetEnv("ADMIN_PASSWORD", "igm2025"),
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"message": "Usuário e senha são obrigatórios"})
		return
	}

	if dto.Username == "" || dto.Password == "" {
		config.JSON(w, http.StatusBadRequest, map[string]string{"message": "Usuário e senha são obrigatórios"})
		return
	}

	if dto.Username != h.username || dto.Password != h.password {
		log.WithField("username", dto.Username).Warn("Failed login attempt")
		config.JSON(w, http.StatusUnauthorized, map[string]string{"message": "Usuário ou senha inválidos"})
		return
	}

	user := UserResponse{ID: 1, Username: h.username, Name: "Administrador"}

	token, err := GenerateJWT("1", user.Name, "admin", sessionDuration)
	if err != nil {
		log.WithError(err).Error("Failed to generate JWT")
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	log.WithField("username", dto.Username).Info("Login successful")
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login realizado com sucesso",
		"user":    user,
		"token":   token,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
