package integration

import (
	"context"
	"testing"

	"college-compass-be/internal/dto"
	"college-compass-be/internal/pkg/apperror"
	"college-compass-be/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopMailer struct{}

func (nopMailer) SendWelcome(toEmail, fullName string) error { return nil }
func (nopMailer) SendResetToken(toEmail, token string) error { return nil }

func TestRegisterLoginRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "integration-secret")
	uowFactory := testFactory(t)
	svc := service.NewAuthService(uowFactory, nopMailer{}, nopLogger{})
	ctx := context.Background()

	email := "it-auth-" + uuid.New().String() + "@example.com"

	created, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    email,
		Password: "correct-horse-battery",
		FullName: "Auth Tester",
	})
	require.NoError(t, err)
	assert.Equal(t, email, created.Email)

	t.Run("duplicate registration conflicts", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:    email,
			Password: "another-password",
			FullName: "Impostor",
		})
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeConflict, appErr.Code)
	})

	t.Run("login with correct password issues a token", func(t *testing.T) {
		res, err := svc.Login(ctx, &dto.LoginRequest{Email: email, Password: "correct-horse-battery"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, created.Id, res.Id)
	})

	t.Run("wrong password is rejected without detail", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: email, Password: "wrong"})
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeAuthRequired, appErr.Code)
		assert.Equal(t, "Invalid email or password", appErr.Message)
	})

	t.Run("unknown email fails the same way as a bad password", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeAuthRequired, appErr.Code)
	})
}
