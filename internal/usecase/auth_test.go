package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viniciusbarbosa/agendabarber-api/internal/security"
)

func TestRegister_HashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo)

	user, err := uc.Register(context.Background(), RegisterParams{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	ok, err := security.VerifyPassword("secret1", user.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo)

	_, err := uc.Register(context.Background(), RegisterParams{Name: "Ana", Email: "ana@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), RegisterParams{Name: "Outra", Email: "ana@x.com", Password: "secret2"})
	require.ErrorIs(t, err, ErrEmailAlreadyRegistered)

	// No second row was created.
	assert.Len(t, repo.users, 1)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo)

	_, err := uc.Register(context.Background(), RegisterParams{Name: "Ana", Email: "ana@x.com", Password: "secret1"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "correct credentials", email: "ana@x.com", password: "secret1"},
		{name: "wrong password", email: "ana@x.com", password: "nope", wantErr: ErrWrongPassword},
		{name: "unknown email", email: "ghost@x.com", password: "secret1", wantErr: ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := uc.Login(context.Background(), LoginParams{Email: tt.email, Password: tt.password})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Ana", user.Name)
			assert.Equal(t, "ana@x.com", user.Email)
		})
	}
}
