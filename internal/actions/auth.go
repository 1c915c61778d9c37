package actions

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vamm99/moterplace/internal/backend"
	"github.com/vamm99/moterplace/internal/errors"
	"github.com/vamm99/moterplace/internal/models"
	"github.com/vamm99/moterplace/internal/session"
)

type AuthActions struct {
	api      *backend.Client
	sessions *session.Manager
}

func NewAuthActions(api *backend.Client, sessions *session.Manager) *AuthActions {
	return &AuthActions{api: api, sessions: sessions}
}

// Login exchanges credentials for a bearer token and caches the session
// cookies on success. A backend 401 maps to a fixed bad-credentials message;
// every other failure keeps its propagated message.
func (a *AuthActions) Login(ctx context.Context, w http.ResponseWriter, req *models.LoginRequest) Result[models.LoginResponse] {

	var resp models.LoginResponse

	if err := a.api.Post(ctx, "/auth/login", req, "", &resp); err != nil {
		slog.Warn("Login failed", slog.String("error", err.Error()))

		if errors.IsUnauthorized(err) {
			return failMessage[models.LoginResponse]("Incorrect email or password")
		}

		return fail[models.LoginResponse](err, "Could not sign in")
	}

	if resp.Token != "" {
		if err := a.sessions.SetSession(w, resp.Token, &resp.Data); err != nil {
			return fail[models.LoginResponse](err, "Could not start your session")
		}
	}

	return ok(resp)
}

// Register creates a customer account; the storefront pins role and status
// regardless of what the form carries.
func (a *AuthActions) Register(ctx context.Context, w http.ResponseWriter, req *models.RegisterRequest) Result[models.LoginResponse] {
	return a.register(ctx, w, "/auth/register", req, models.RoleCustomer)
}

// RegisterSeller creates a seller account through the dedicated endpoint.
func (a *AuthActions) RegisterSeller(ctx context.Context, w http.ResponseWriter, req *models.RegisterRequest) Result[models.LoginResponse] {
	return a.register(ctx, w, "/auth/register-seller", req, models.RoleSeller)
}

func (a *AuthActions) register(ctx context.Context, w http.ResponseWriter, endpoint string, req *models.RegisterRequest, role string) Result[models.LoginResponse] {

	payload := models.RegisterPayload{
		RegisterRequest: *req,
		Role:            role,
		Status:          true,
	}

	var resp models.LoginResponse

	if err := a.api.Post(ctx, endpoint, payload, "", &resp); err != nil {
		slog.Warn("Registration failed", slog.String("error", err.Error()))

		return fail[models.LoginResponse](err, "Could not create your account")
	}

	if resp.Token != "" {
		if err := a.sessions.SetSession(w, resp.Token, &resp.Data); err != nil {
			return fail[models.LoginResponse](err, "Could not start your session")
		}
	}

	return ok(resp)
}

// Logout destroys the session cookies. It cannot fail: the token is the
// backend's to expire.
func (a *AuthActions) Logout(w http.ResponseWriter) Result[struct{}] {
	a.sessions.ClearSession(w)

	return ok(struct{}{})
}

// CurrentUser reads the cached profile from the session; no backend call.
func (a *AuthActions) CurrentUser(sess session.Session) Result[models.User] {

	if sess.User == nil {
		return failMessage[models.User]("No authenticated user")
	}

	return ok(*sess.User)
}
