package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vamm99/moterplace/internal/actions"
	"github.com/vamm99/moterplace/internal/api/middleware"
	"github.com/vamm99/moterplace/internal/models"
	"github.com/vamm99/moterplace/internal/session"
	"github.com/vamm99/moterplace/internal/utils"
	"github.com/vamm99/moterplace/internal/utils/response"
)

// Action-backed endpoints always answer 200 with the action's envelope;
// failures travel in-band as {success:false, error}, the way the storefront
// pages consume them.
type AuthHandler struct {
	auth      *actions.AuthActions
	sessions  *session.Manager
	validator *validator.Validate
}

func NewAuthHandler(auth *actions.AuthActions, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		auth:      auth,
		sessions:  sessions,
		validator: validator.New(),
	}
}

func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		res := h.auth.Login(r.Context(), w, &req)
		if !res.Success {
			middleware.LoggerFromContext(r.Context()).Warn("Login rejected")
		}

		response.WriteJson(w, http.StatusOK, res)
	}
}

func (h *AuthHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		res := h.auth.Register(r.Context(), w, &req)

		response.WriteJson(w, http.StatusOK, res)
	}
}

func (h *AuthHandler) RegisterSeller() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		res := h.auth.RegisterSeller(r.Context(), w, &req)

		response.WriteJson(w, http.StatusOK, res)
	}
}

func (h *AuthHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJson(w, http.StatusOK, h.auth.Logout(w))
	}
}

// Me returns the profile cached in the session cookie; no backend call.
func (h *AuthHandler) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess := h.sessions.FromRequest(r)

		response.WriteJson(w, http.StatusOK, h.auth.CurrentUser(sess))
	}
}
