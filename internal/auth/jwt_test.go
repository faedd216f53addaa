package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func parseToken(t *testing.T, signed, secret string) *jwt.Token {
	t.Helper()
	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)
	return token
}

func TestGenerateToken_Claims(t *testing.T) {
	secret := "test-secret"
	signed, expiresAt, err := GenerateToken("admin", RoleAdmin, secret, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.True(t, expiresAt.After(time.Now()))

	claims, ok := parseToken(t, signed, secret).Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "admin", claims[claimSubject])
	assert.Equal(t, RoleAdmin, claims[claimRole])
}

func TestGenerateToken_Invalid(t *testing.T) {
	if _, _, err := GenerateToken("", RoleAdmin, "secret", time.Hour); err == nil {
		t.Fatal("expected error for empty subject")
	}
	if _, _, err := GenerateToken("admin", RoleAdmin, "", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
	if _, _, err := GenerateToken("admin", RoleAdmin, "secret", 0); err == nil {
		t.Fatal("expected error for non-positive expiry")
	}
}

func TestRequireAdmin(t *testing.T) {
	e := echo.New()
	newContext := func(token *jwt.Token) echo.Context {
		req := httptest.NewRequest(http.MethodPatch, "/progress/clm_1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if token != nil {
			c.Set("user", token)
		}
		return c
	}

	secret := "test-secret"
	adminSigned, _, err := GenerateToken("admin", RoleAdmin, secret, time.Hour)
	assert.NoError(t, err)
	subject, err := RequireAdmin(newContext(parseToken(t, adminSigned, secret)))
	assert.NoError(t, err)
	assert.Equal(t, "admin", subject)

	userSigned, _, err := GenerateToken("someone", "viewer", secret, time.Hour)
	assert.NoError(t, err)
	_, err = RequireAdmin(newContext(parseToken(t, userSigned, secret)))
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)

	_, err = RequireAdmin(newContext(nil))
	httpErr, ok = err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret")
	assert.NoError(t, err)
	assert.True(t, VerifyPassword(hashed, "s3cret"))
	assert.False(t, VerifyPassword(hashed, "wrong"))
	assert.True(t, VerifyPassword("plaintext", "plaintext"))
	assert.False(t, VerifyPassword("", ""))
}
