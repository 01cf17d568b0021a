package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/ordercenter/internal/infra/token"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest(t *testing.T) (*AuthService, *UserService) {
	t.Helper()
	tokenMaker, err := token.NewPasetoMaker("12345678901234567890123456789012")
	require.NoError(t, err)
	userService := NewUserService(newFakeUserRepo())
	return NewAuthService(userService, tokenMaker), userService
}

func TestLoginSuccess(t *testing.T) {
	authService, userService := newAuthServiceForTest(t)
	ctx := context.Background()

	created, err := userService.CreateUser(ctx, "royce", "royce@example.com", "secret123", "")
	require.NoError(t, err)

	result, err := authService.Login(ctx, "royce@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
	require.Equal(t, created.UserID, result.Payload.UserID)
	require.Equal(t, "royce@example.com", result.Payload.UPN)
}

// user不存在與密碼錯誤要回同一個錯, 避免email枚舉
func TestLoginInvalidCredentials(t *testing.T) {
	authService, userService := newAuthServiceForTest(t)
	ctx := context.Background()

	_, err := userService.CreateUser(ctx, "royce", "royce@example.com", "secret123", "")
	require.NoError(t, err)

	_, err = authService.Login(ctx, "royce@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = authService.Login(ctx, "nobody@example.com", "secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
