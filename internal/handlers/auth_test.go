package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"hackfest-backend/internal/handlers"
	"hackfest-backend/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Login(t *testing.T) {
	h := http.HandlerFunc(handlers.NewAuthHandler("judge-me", "secret", time.Hour).Login)

	rec := doJSON(t, h, http.MethodPost, "/admin/login", handlers.LoginRequest{Password: "judge-me"})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[handlers.LoginResponse](t, rec)
	claims, err := middleware.ParseAdminToken("secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, 5*time.Second)
}

func TestAuthHandler_LoginRejects(t *testing.T) {
	h := http.HandlerFunc(handlers.NewAuthHandler("judge-me", "secret", time.Hour).Login)

	assert.Equal(t, http.StatusBadRequest, doJSON(t, h, http.MethodPost, "/admin/login", "{").Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(t, h, http.MethodPost, "/admin/login", handlers.LoginRequest{}).Code)
	assert.Equal(t, http.StatusUnauthorized,
		doJSON(t, h, http.MethodPost, "/admin/login", handlers.LoginRequest{Password: "judge-me!"}).Code)
}
