package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanzone-backend/internal/domains/user/model"
	"fanzone-backend/internal/domains/user/repository"
	"fanzone-backend/pkg/jwt"
)

func newTestService() ServiceInterface {
	return NewUserService(repository.NewMemoryUserRepository(), jwt.NewManager("test-secret", 60))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, model.RegisterRequest{
		Email:       "Fan@Example.com",
		Password:    "correct-horse",
		DisplayName: "fan",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, model.RoleUser, registered.User.Role)
	assert.Equal(t, "fan@example.com", registered.User.Email)

	logged, err := svc.Login(ctx, model.LoginRequest{
		Email:    "fan@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, logged.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	req := model.RegisterRequest{
		Email:       "fan@example.com",
		Password:    "correct-horse",
		DisplayName: "fan",
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, model.RegisterRequest{
		Email:       "fan@example.com",
		Password:    "correct-horse",
		DisplayName: "fan",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, model.LoginRequest{
		Email:    "fan@example.com",
		Password: "wrong-horse",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	// Unknown accounts fail the same way.
	_, err = svc.Login(ctx, model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}
