package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockwise/pkg/auth"
	"github.com/shashiranjanraj/stockwise/pkg/middleware"
	"github.com/shashiranjanraj/stockwise/pkg/rbac"
)

func authedRequest(t *testing.T, userID uint, role string) *http.Request {
	t.Helper()
	token, err := auth.GenerateToken(userID, role)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuthPopulatesContext(t *testing.T) {
	var gotID uint
	var gotRole string
	h := middleware.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = middleware.UserIDFromCtx(r.Context())
		gotRole = middleware.RoleFromCtx(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(t, 7, rbac.RoleManager))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 7, gotID)
	assert.Equal(t, rbac.RoleManager, gotRole)
}

func TestAuthRejectsMissingToken(t *testing.T) {
	h := middleware.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/inventory", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	h := middleware.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHasRoleGatesAdminOnly(t *testing.T) {
	chain := middleware.Auth(rbac.HasRole(rbac.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, authedRequest(t, 1, rbac.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)

	for _, role := range []string{rbac.RoleManager, rbac.RoleStockKeeper, rbac.RoleViewer} {
		rec := httptest.NewRecorder()
		chain.ServeHTTP(rec, authedRequest(t, 2, role))
		assert.Equal(t, http.StatusForbidden, rec.Code, role)
	}
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	assert.Equal(t, "", middleware.BearerToken(req))

	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	assert.Equal(t, "abc.def.ghi", middleware.BearerToken(req))
}
