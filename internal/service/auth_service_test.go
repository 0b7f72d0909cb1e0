package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	userRepo := newStubUserRepo()
	svc := NewAuthService(userRepo, "test-secret")
	ctx := context.Background()

	resp, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "correct-horse-1"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "Ada", resp.User.Name)
	require.NotEqual(t, "correct-horse-1", resp.User.PasswordHash)

	login, err := svc.Login(ctx, LoginInput{Email: "ada@example.com", Password: "correct-horse-1"})
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, login.User.ID)
	require.NotEmpty(t, login.AccessToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo := newStubUserRepo()
	svc := NewAuthService(userRepo, "test-secret")
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "correct-horse-1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Name: "Other", Email: "ada@example.com", Password: "other-password-2"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := newStubUserRepo()
	svc := NewAuthService(userRepo, "test-secret")
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "correct-horse-1"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginInput{Email: "ada@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCreds)

	_, err = svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "whatever"})
	require.ErrorIs(t, err, ErrInvalidCreds)
}
