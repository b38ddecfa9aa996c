package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdelmonemElsawy/fyyur/internal/utils"
)

func doAuth(t *testing.T, secret, header string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/venues/create", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	called := false
	h := JWTAuth(secret)(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, h(c))
	return rec, c, called
}

func TestJWTAuthMissingToken(t *testing.T) {
	rec, _, called := doAuth(t, "test-secret", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unauthorized", body["code"])
}

func TestJWTAuthInvalidToken(t *testing.T) {
	rec, _, called := doAuth(t, "test-secret", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 7, 15)
	require.NoError(t, err)

	rec, _, called := doAuth(t, "test-secret", "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestJWTAuthValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken("test-secret", 7, 15)
	require.NoError(t, err)

	rec, c, called := doAuth(t, "test-secret", "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, float64(7), c.Get("user_id"))
}
