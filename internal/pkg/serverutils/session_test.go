package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestOptionalUserNeverFails(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userId := uuid.New()
	validToken := issueTestToken(t, "test-secret", jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	expiredToken := issueTestToken(t, "test-secret", jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	wrongKeyToken := issueTestToken(t, "other-secret", jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name   string
		header string
		want   uuid.UUID
	}{
		{name: "valid token resolves the user", header: "Bearer " + validToken, want: userId},
		{name: "missing header is anonymous", header: "", want: uuid.Nil},
		{name: "non-bearer header is anonymous", header: "Basic abc", want: uuid.Nil},
		{name: "garbage token is anonymous", header: "Bearer not.a.jwt", want: uuid.Nil},
		{name: "expired token is anonymous", header: "Bearer " + expiredToken, want: uuid.Nil},
		{name: "wrong signing key is anonymous", header: "Bearer " + wrongKeyToken, want: uuid.Nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			var got uuid.UUID
			app.Get("/", func(ctx *fiber.Ctx) error {
				got = OptionalUser(ctx)
				return ctx.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)

			// Fail-open: the request always reaches the handler.
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJwtMiddlewareRejectsInvalidSessions(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userId := uuid.New()
	validToken := issueTestToken(t, "test-secret", jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid token passes", header: "Bearer " + validToken, wantStatus: fiber.StatusOK},
		{name: "missing header is rejected", header: "", wantStatus: fiber.StatusUnauthorized},
		{name: "garbage token is rejected", header: "Bearer nope", wantStatus: fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{})
			app.Use(ErrorHandlerMiddleware())
			app.Use(JwtMiddleware)
			app.Get("/", func(ctx *fiber.Ctx) error {
				assert.Equal(t, userId, SessionUser(ctx))
				return ctx.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
