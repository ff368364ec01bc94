package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	token, err := GenerateToken(7, "priya@example.com", "priya_r", "customer", 1)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.ID)
	assert.Equal(t, "priya@example.com", claims.Email)
	assert.Equal(t, "priya_r", claims.Username)
	assert.Equal(t, "customer", claims.Role)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}

func runMiddleware(t *testing.T, authHeader string) (*httptest.ResponseRecorder, *Claims) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got *Claims
	handler := JWTMiddleware()(func(c echo.Context) error {
		got = GetClaims(c)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, got
}

func TestJWTMiddleware(t *testing.T) {
	token, err := GenerateToken(7, "priya@example.com", "priya_r", "customer", 1)
	require.NoError(t, err)

	rec, claims := runMiddleware(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, claims)
	assert.Equal(t, int64(7), claims.ID)

	rec, _ = runMiddleware(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = runMiddleware(t, "Bearer bogus")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = runMiddleware(t, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "scheme-less header is rejected")
}

func TestAdminOnly(t *testing.T) {
	e := echo.New()

	run := func(claims *Claims) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if claims != nil {
			c.Set("auth_claims", claims)
		}
		handler := AdminOnly(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))
		return rec
	}

	assert.Equal(t, http.StatusOK, run(&Claims{ID: 1, Role: "admin"}).Code)
	assert.Equal(t, http.StatusForbidden, run(&Claims{ID: 7, Role: "customer"}).Code)
	assert.Equal(t, http.StatusForbidden, run(nil).Code)
}
