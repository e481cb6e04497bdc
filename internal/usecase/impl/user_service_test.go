package impl

import (
	"context"
	"testing"

	"gatherly/internal/domain/entity"
	domainerrors "gatherly/internal/domain/errors"
	"gatherly/internal/domain/repository"
	mockRepo "gatherly/internal/mocks/repository"
	mockService "gatherly/internal/mocks/service"
	"gatherly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userMocks struct {
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func newUserService(t *testing.T) (*userService, *userMocks) {
	m := &userMocks{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
	}

	srv := &userService{
		userRepo:     m.userRepo,
		hasher:       m.hasher,
		tokenService: m.tokenService,
		logger:       newDiscardLogger(),
	}

	return srv, m
}

func TestUserService_Register(t *testing.T) {
	srv, m := newUserService(t)
	ctx := context.Background()

	input := usecase.RegisterInput{
		Name:     "  Ayşe  ",
		Email:    " Ayse@Example.com ",
		Password: "correct-horse",
	}

	m.hasher.On("Hash", input.Password).Return("$2a$10$hash", nil)
	m.userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "ayse@example.com" &&
			u.Name == "Ayşe" &&
			u.PasswordHash == "$2a$10$hash" &&
			u.ID != uuid.Nil
	})).Return(nil)

	out, err := srv.Register(ctx, input)
	require.NoError(t, err)
	require.Equal(t, "ayse@example.com", out.User.Email)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	srv, m := newUserService(t)
	ctx := context.Background()

	m.hasher.On("Hash", "pw").Return("$2a$10$hash", nil)
	m.userRepo.On("Create", ctx, mock.Anything).Return(repository.ErrEmailTaken)

	_, err := srv.Register(ctx, usecase.RegisterInput{Email: "ayse@example.com", Password: "pw"})
	require.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	srv, m := newUserService(t)

	m.hasher.On("Hash", "pw").Return("", errors.New("bcrypt: cost out of range"))

	_, err := srv.Register(context.Background(), usecase.RegisterInput{Email: "ayse@example.com", Password: "pw"})
	require.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Login(t *testing.T) {
	srv, m := newUserService(t)
	ctx := context.Background()

	user := testUser()
	user.PasswordHash = "$2a$10$hash"

	m.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	m.hasher.On("Check", "correct-horse", user.PasswordHash).Return(true)
	m.tokenService.On("GenerateTokens", user.ID).Return("access-token", "refresh-token", nil)

	out, err := srv.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "correct-horse"})
	require.NoError(t, err)
	require.Equal(t, "access-token", out.AccessToken)
	require.Equal(t, "refresh-token", out.RefreshToken)
	require.Equal(t, user, out.User)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *userMocks)
	}{
		{
			name: "unknown email",
			setup: func(m *userMocks) {
				m.userRepo.On("FindByEmail", mock.Anything, "ayse@example.com").
					Return(nil, repository.ErrUserNotFound)
			},
		},
		{
			name: "wrong password",
			setup: func(m *userMocks) {
				user := testUser()
				user.PasswordHash = "$2a$10$hash"
				m.userRepo.On("FindByEmail", mock.Anything, "ayse@example.com").Return(user, nil)
				m.hasher.On("Check", "wrong", user.PasswordHash).Return(false)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newUserService(t)
			tt.setup(m)

			_, err := srv.Login(context.Background(), usecase.LoginInput{
				Email:    "ayse@example.com",
				Password: "wrong",
			})
			// Both cases collapse into the same error so login leaks nothing.
			require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		})
	}
}
