package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/eshopke/eshop-api/models"
)

func TestRegisterUserHashesPassword(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]any{
		"name":     "Jane Buyer",
		"email":    "jane@example.com",
		"password": "secret123",
		"phone":    "+254700000000",
		"isAdmin":  false,
		"street":   "1 Main Street",
		"city":     "Nairobi",
		"zip":      "00100",
		"country":  "KE",
	}
	w := env.request(t, http.MethodPost, "/api/v1/users", body, adminToken(t))
	require.Equal(t, http.StatusCreated, w.Code)

	assert.NotContains(t, w.Body.String(), "secret123")
	assert.NotContains(t, w.Body.String(), "passwordHash")

	var stored models.User
	require.NoError(t, env.db.Where("email = ?", "jane@example.com").First(&stored).Error)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestRegisterUserWithoutPassword(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]any{"name": "Jane", "email": "jane@example.com"}
	w := env.request(t, http.MethodPost, "/api/v1/users", body, adminToken(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginReturnsTokenWithUserClaims(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "admin@example.com", "secret123", true)

	body := map[string]any{"email": "admin@example.com", "password": "secret123"}
	w := env.request(t, http.MethodPost, "/api/v1/users/login", body, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	decodeBody(t, w, &resp)
	assert.Equal(t, "admin@example.com", resp["user"])

	tokenString, ok := resp["token"].(string)
	require.True(t, ok)
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(user.ID), claims["userId"])
	assert.Equal(t, true, claims["isAdmin"])
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "jane@example.com", "secret123", false)

	body := map[string]any{"email": "jane@example.com", "password": "wrong"}
	w := env.request(t, http.MethodPost, "/api/v1/users/login", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]any{"email": "ghost@example.com", "password": "secret123"}
	w := env.request(t, http.MethodPost, "/api/v1/users/login", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserResponsesExcludePasswordHash(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "jane@example.com", "secret123", false)

	w := env.request(t, http.MethodGet, "/api/v1/users", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), user.PasswordHash)
	assert.NotContains(t, w.Body.String(), "passwordHash")

	w = env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", user.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), user.PasswordHash)
}

func TestUpdateUserKeepsHashWhenPasswordOmitted(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "jane@example.com", "secret123", false)

	body := map[string]any{"name": "Jane Renamed", "email": "jane@example.com"}
	w := env.request(t, http.MethodPut, fmt.Sprintf("/api/v1/users/%d", user.ID), body, adminToken(t))
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	require.NoError(t, env.db.First(&stored, user.ID).Error)
	assert.Equal(t, "Jane Renamed", stored.Name)
	assert.Equal(t, user.PasswordHash, stored.PasswordHash)
}

func TestUpdateUserRehashesNewPassword(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "jane@example.com", "secret123", false)

	body := map[string]any{"name": "Jane", "email": "jane@example.com", "password": "newsecret"}
	w := env.request(t, http.MethodPut, fmt.Sprintf("/api/v1/users/%d", user.ID), body, adminToken(t))
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	require.NoError(t, env.db.First(&stored, user.ID).Error)
	assert.NotEqual(t, user.PasswordHash, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newsecret")))
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "jane@example.com", "secret123", false)

	w := env.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/users/%d", user.ID), nil, adminToken(t))
	require.Equal(t, http.StatusOK, w.Code)

	err := env.db.First(&models.User{}, user.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetUserCount(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "a@example.com", "secret123", false)
	env.seedUser(t, "b@example.com", "secret123", false)

	w := env.request(t, http.MethodGet, "/api/v1/users/get/count", nil, adminToken(t))
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	decodeBody(t, w, &resp)
	assert.Equal(t, float64(2), resp["userCount"])
}
