package handler

import (
	"errors"
	"net/http"
	"realestate_crud/internal/api/middleware"
	"realestate_crud/internal/app/service"
	"realestate_crud/internal/common"
	"realestate_crud/internal/common/security"
	"realestate_crud/internal/platform/config"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

// RegisterProtectedRoutes mounts the routes that sit behind the
// authenticator middleware.
func (h *AuthHandler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/profile", h.profile)
}

type LoginResponse struct {
	Message     string `json:"message"`
	RedirectURL string `json:"redirectUrl,omitempty"`
	Token       string `json:"token,omitempty"`
}

// register reads username and password from query or form parameters and
// answers in plain text, matching the existing frontend contract.
func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.authService.Register(r.Context(), username, password)
	if err != nil {
		common.RespondWithText(w, http.StatusBadRequest, "Error registering user: "+err.Error())
		return
	}
	common.RespondWithText(w, http.StatusOK, "User registered: "+user.Username)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	authenticated, err := h.authService.Authenticate(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, common.ErrTooManyRequests) {
			common.RespondWithJSON(w, http.StatusTooManyRequests, LoginResponse{Message: "Too many login attempts"})
			return
		}
		common.RespondWithJSON(w, http.StatusBadRequest, LoginResponse{Message: "Error during login: " + err.Error()})
		return
	}
	if !authenticated {
		common.RespondWithJSON(w, http.StatusUnauthorized, LoginResponse{Message: "Invalid credentials"})
		return
	}

	user, err := h.authService.GetUserByUsername(r.Context(), username)
	if err != nil {
		common.RespondWithJSON(w, http.StatusBadRequest, LoginResponse{Message: "Error during login: " + err.Error()})
		return
	}
	token, err := security.GenerateToken(user.ID, user.Username)
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	common.RespondWithJSON(w, http.StatusOK, LoginResponse{
		Message:     "Login successful",
		RedirectURL: config.AppConfig.LoginRedirectURL,
		Token:       token,
	})
}

func (h *AuthHandler) profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}
