package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUserHashesPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "royce", "royce@example.com", "secret123", "台北市")
	require.NoError(t, err)
	require.NotZero(t, user.UserID)
	require.NotEqual(t, "secret123", user.HashedPassword)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("secret123")))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "royce", "royce@example.com", "secret123", "")
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, "other", "royce@example.com", "secret456", "")
	require.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestGetUserNotExist(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.GetUserByID(ctx, 999)
	require.ErrorIs(t, err, ErrUserNotExist)

	_, err = svc.GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, ErrUserNotExist)
}
