package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hrmslite/hrms-lite-api/internal/models"
)

func TestAuthHandler_Register(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Ada Lovelace",
		"email":    "Ada@Example.com",
		"password": "supersecret",
	}, "")

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	require.True(t, resp.Success)
	require.Contains(t, resp.Msg, "Registration successful")

	var data struct {
		User struct {
			Email string      `json:"email"`
			Role  models.Role `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Equal(t, "ada@example.com", data.User.Email, "email is stored lowercased")
	require.Equal(t, models.RoleEmployee, data.User.Role, "role defaults to employee")
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	env := setupTestEnv(t)

	cases := []struct {
		name string
		body map[string]string
		code int
	}{
		{"missing fields", map[string]string{"email": "a@x.com"}, http.StatusBadRequest},
		{"bad email", map[string]string{"name": "A", "email": "not-an-email", "password": "supersecret"}, http.StatusBadRequest},
		{"short password", map[string]string{"name": "A", "email": "a@x.com", "password": "abc"}, http.StatusBadRequest},
		{"bad role", map[string]string{"name": "A", "email": "a@x.com", "password": "supersecret", "role": "manager"}, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := env.request(t, http.MethodPost, "/api/auth/register", tc.body, "")
			require.Equal(t, tc.code, w.Code)
			require.False(t, decodeEnvelope(t, w).Success)
		})
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)

	body := map[string]string{"name": "A", "email": "a@x.com", "password": "supersecret"}
	w := env.request(t, http.MethodPost, "/api/auth/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// Same address with different casing is still a conflict.
	body["email"] = "A@X.com"
	w = env.request(t, http.MethodPost, "/api/auth/register", body, "")
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, decodeEnvelope(t, w).Msg, "already exists")
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/register", map[string]string{
		"name": "A", "email": "a@x.com", "password": "secret1", "role": "hr",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "a@x.com", "password": "secret1",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Token string `json:"token"`
		User  struct {
			Role models.Role `json:"role"`
		} `json:"user"`
	}
	resp := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(t, data.Token)
	require.Equal(t, models.RoleHR, data.User.Role)

	// The issued token works against a protected route.
	w = env.request(t, http.MethodGet, "/api/auth/profile", nil, data.Token)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_Login_NoInformationLeak(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/register", map[string]string{
		"name": "A", "email": "a@x.com", "password": "supersecret",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	wrongPassword := env.request(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "a@x.com", "password": "wrong-password",
	}, "")
	unknownEmail := env.request(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "nobody@x.com", "password": "supersecret",
	}, "")

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	// Identical message for both failure modes.
	require.Equal(t, decodeEnvelope(t, wrongPassword).Msg, decodeEnvelope(t, unknownEmail).Msg)
}

func TestAuthHandler_Profile(t *testing.T) {
	env := setupTestEnv(t)
	token := env.tokenFor(t, "me@x.com", models.RoleEmployee)

	w := env.request(t, http.MethodGet, "/api/auth/profile", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	require.Contains(t, string(resp.Data), "me@x.com")
	require.NotContains(t, w.Body.String(), "password")
}

func TestAuthHandler_ListUsers_AdminOnly(t *testing.T) {
	env := setupTestEnv(t)
	adminToken := env.tokenFor(t, "admin@x.com", models.RoleAdmin)
	hrToken := env.tokenFor(t, "hr@x.com", models.RoleHR)

	w := env.request(t, http.MethodGet, "/api/auth/users", nil, hrToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.request(t, http.MethodGet, "/api/auth/users", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &data))
	require.Equal(t, 2, data.Count)
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	env := setupTestEnv(t)
	token := env.tokenFor(t, "me@x.com", models.RoleEmployee)

	// Wrong current password
	w := env.request(t, http.MethodPut, "/api/auth/change-password", map[string]string{
		"currentPassword": "wrong", "newPassword": "newsecret",
	}, token)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Success
	w = env.request(t, http.MethodPut, "/api/auth/change-password", map[string]string{
		"currentPassword": "supersecret", "newPassword": "newsecret",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	// Old password no longer works, new one does.
	w = env.request(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "me@x.com", "password": "supersecret",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "me@x.com", "password": "newsecret",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/nope", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Route not found", decodeEnvelope(t, w).Msg)
}
