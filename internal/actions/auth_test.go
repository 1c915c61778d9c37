package actions_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vamm99/moterplace/internal/actions"
	"github.com/vamm99/moterplace/internal/backend"
	"github.com/vamm99/moterplace/internal/models"
	"github.com/vamm99/moterplace/internal/session"
)

func newAuthActions(serverURL string) *actions.AuthActions {
	api := backend.NewClient(serverURL, 5*time.Second)
	sessions := session.NewManager(time.Hour, false)

	return actions.NewAuthActions(api, sessions)
}

func loginResponseBody(token string) string {
	return `{"token":"` + token + `","data":{"_id":"u1","name":"Ana","email":"ana@example.com","role":"customer"}}`
}

func TestLogin(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Token And Profile Cookies Set", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/login", r.URL.Path)
			w.Write([]byte(loginResponseBody("tok-1")))
		}))
		defer server.Close()

		auth := newAuthActions(server.URL)
		recorder := httptest.NewRecorder()

		// Act
		res := auth.Login(ctx, recorder, &models.LoginRequest{Email: "ana@example.com", Password: "secret"})

		// Assert
		require.True(t, res.Success)
		assert.Equal(t, "tok-1", res.Data.Token)

		names := make([]string, 0, 2)
		for _, c := range recorder.Result().Cookies() {
			names = append(names, c.Name)
		}

		assert.Contains(t, names, session.TokenCookieName)
		assert.Contains(t, names, session.UserCookieName)
	})

	t.Run("Failure - Rejected Credentials Get The Fixed Message", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Unauthorized"}`))
		}))
		defer server.Close()

		auth := newAuthActions(server.URL)
		recorder := httptest.NewRecorder()

		// Act
		res := auth.Login(ctx, recorder, &models.LoginRequest{Email: "ana@example.com", Password: "wrong"})

		// Assert
		assert.False(t, res.Success)
		assert.Equal(t, "Incorrect email or password", res.Error)
		assert.Empty(t, recorder.Result().Cookies(), "no session on failure")
	})

	t.Run("Failure - Server Errors Keep Their Own Message", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		auth := newAuthActions(server.URL)

		// Act
		res := auth.Login(ctx, httptest.NewRecorder(), &models.LoginRequest{Email: "ana@example.com", Password: "secret"})

		// Assert
		assert.False(t, res.Success)
		assert.NotEqual(t, "Incorrect email or password", res.Error)
	})
}

func TestRegister(t *testing.T) {
	ctx := t.Context()

	registerForm := &models.RegisterRequest{
		Name:         "Ana",
		LastName:     "Gomez",
		IDNumber:     "1234567890",
		TypeDocument: "cc",
		Phone:        "3001234567",
		Email:        "ana@example.com",
		Password:     "secret1",
	}

	t.Run("Success - Customer Role And Status Are Pinned", func(t *testing.T) {
		// Arrange
		var body map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/register", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.Write([]byte(loginResponseBody("tok-2")))
		}))
		defer server.Close()

		auth := newAuthActions(server.URL)

		// Act
		res := auth.Register(ctx, httptest.NewRecorder(), registerForm)

		// Assert
		require.True(t, res.Success)
		assert.Equal(t, models.RoleCustomer, body["role"])
		assert.Equal(t, true, body["status"])
	})

	t.Run("Success - Seller Registration Uses Its Own Endpoint", func(t *testing.T) {
		// Arrange
		var body map[string]any
		var gotPath string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.Write([]byte(loginResponseBody("tok-3")))
		}))
		defer server.Close()

		auth := newAuthActions(server.URL)

		// Act
		res := auth.RegisterSeller(ctx, httptest.NewRecorder(), registerForm)

		// Assert
		require.True(t, res.Success)
		assert.Equal(t, "/auth/register-seller", gotPath)
		assert.Equal(t, models.RoleSeller, body["role"])
	})
}

func TestLogoutAndCurrentUser(t *testing.T) {

	t.Run("Success - Logout Expires Both Cookies", func(t *testing.T) {
		// Arrange
		auth := newAuthActions("http://unused.invalid")
		recorder := httptest.NewRecorder()

		// Act
		res := auth.Logout(recorder)

		// Assert
		assert.True(t, res.Success)

		cookies := recorder.Result().Cookies()
		require.Len(t, cookies, 2)
		for _, c := range cookies {
			assert.Negative(t, c.MaxAge)
		}
	})

	t.Run("Success - Current User From Cached Profile", func(t *testing.T) {
		// Arrange
		auth := newAuthActions("http://unused.invalid")
		sess := session.Session{Token: "tok", User: &models.User{ID: "u1", Email: "ana@example.com"}}

		// Act
		res := auth.CurrentUser(sess)

		// Assert
		require.True(t, res.Success)
		assert.Equal(t, "ana@example.com", res.Data.Email)
	})

	t.Run("Failure - No Profile Means No User", func(t *testing.T) {
		// Arrange
		auth := newAuthActions("http://unused.invalid")

		// Act
		res := auth.CurrentUser(session.Session{})

		// Assert
		assert.False(t, res.Success)
		assert.Equal(t, "No authenticated user", res.Error)
	})
}
