package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockwise/app/controllers"
	"github.com/shashiranjanraj/stockwise/app/models"
	"github.com/shashiranjanraj/stockwise/pkg/database"
	"github.com/shashiranjanraj/stockwise/pkg/testkit"
)

func setupAuthDB(t *testing.T) {
	t.Helper()
	database.DB = testkit.NewTestDB(t, &models.User{})
}

func register(t *testing.T, c *controllers.AuthController, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	c.Register(rec, testkit.JSONRequest(t, http.MethodPost, "/api/register", payload))
	return rec
}

func TestRegisterReturnsUserAndToken(t *testing.T) {
	setupAuthDB(t)
	c := controllers.NewAuthController()

	rec := register(t, c, map[string]interface{}{
		"name": "Asha Patel", "email": "asha@stockwise.test", "password": "secret-pass", "role": "Manager",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	body := testkit.BodyMap(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	user := data["user"].(map[string]interface{})
	assert.Equal(t, "Manager", user["role"])
	// The password hash never leaves the API.
	assert.NotContains(t, user, "password")
}

func TestRegisterDefaultsRoleToViewer(t *testing.T) {
	setupAuthDB(t)
	c := controllers.NewAuthController()

	rec := register(t, c, map[string]interface{}{
		"name": "Sam Lee", "email": "sam@stockwise.test", "password": "secret-pass",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := testkit.BodyMap(t, rec)
	user := body["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "Viewer", user["role"])
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	setupAuthDB(t)
	c := controllers.NewAuthController()

	rec := register(t, c, map[string]interface{}{
		"name": "Sam Lee", "email": "sam@stockwise.test", "password": "secret-pass", "role": "Superuser",
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := testkit.BodyMap(t, rec)
	assert.Contains(t, body["errors"].(map[string]interface{}), "role")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupAuthDB(t)
	c := controllers.NewAuthController()

	payload := map[string]interface{}{
		"name": "Asha Patel", "email": "asha@stockwise.test", "password": "secret-pass",
	}
	require.Equal(t, http.StatusCreated, register(t, c, payload).Code)

	rec := register(t, c, payload)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := testkit.BodyMap(t, rec)
	msgs := body["errors"].(map[string]interface{})["email"].([]interface{})
	assert.Equal(t, "The email has already been taken.", msgs[0])
}

func TestLogin(t *testing.T) {
	setupAuthDB(t)
	c := controllers.NewAuthController()

	require.Equal(t, http.StatusCreated, register(t, c, map[string]interface{}{
		"name": "Asha Patel", "email": "asha@stockwise.test", "password": "secret-pass",
	}).Code)

	rec := httptest.NewRecorder()
	c.Login(rec, testkit.JSONRequest(t, http.MethodPost, "/api/login", map[string]interface{}{
		"email": "asha@stockwise.test", "password": "secret-pass",
	}))
	require.Equal(t, http.StatusOK, rec.Code)
	body := testkit.BodyMap(t, rec)
	assert.NotEmpty(t, body["data"].(map[string]interface{})["token"])

	rec = httptest.NewRecorder()
	c.Login(rec, testkit.JSONRequest(t, http.MethodPost, "/api/login", map[string]interface{}{
		"email": "asha@stockwise.test", "password": "wrong-pass",
	}))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body = testkit.BodyMap(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid credentials", body["error"])
}

func TestLogout(t *testing.T) {
	setupAuthDB(t)
	c := controllers.NewAuthController()

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.Header.Set("Authorization", "Bearer some.jwt.token")
	rec := httptest.NewRecorder()
	c.Logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := testkit.BodyMap(t, rec)
	assert.Equal(t, "Logged out successfully", body["message"])
}
