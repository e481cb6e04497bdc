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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileMocks struct {
	userRepo   *mockRepo.MockUserRepository
	deviceRepo *mockRepo.MockDeviceRepository
	hasher     *mockService.MockPasswordHasher
}

func newProfileService(t *testing.T) (*profileService, *profileMocks) {
	m := &profileMocks{
		userRepo:   mockRepo.NewMockUserRepository(t),
		deviceRepo: mockRepo.NewMockDeviceRepository(t),
		hasher:     mockService.NewMockPasswordHasher(t),
	}

	srv := &profileService{
		userRepo:   m.userRepo,
		deviceRepo: m.deviceRepo,
		hasher:     m.hasher,
		logger:     newDiscardLogger(),
	}

	return srv, m
}

func TestProfileService_Get(t *testing.T) {
	srv, m := newProfileService(t)
	ctx := context.Background()

	user := testUser()
	m.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	got, err := srv.Get(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user, got)
}

func TestProfileService_UpdateEmail_Normalized(t *testing.T) {
	srv, m := newProfileService(t)
	ctx := context.Background()

	userID := uuid.New()
	m.userRepo.On("UpdateEmail", ctx, userID, "yeni@example.com").Return(nil)

	require.NoError(t, srv.UpdateEmail(ctx, userID, " Yeni@Example.com "))
}

func TestProfileService_UpdateEmail_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{"user not found", repository.ErrUserNotFound, domainerrors.ErrUserNotFound},
		{"email taken", repository.ErrEmailTaken, domainerrors.ErrEmailTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newProfileService(t)
			userID := uuid.New()
			m.userRepo.On("UpdateEmail", mock.Anything, userID, "yeni@example.com").Return(tt.repoErr)

			err := srv.UpdateEmail(context.Background(), userID, "yeni@example.com")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProfileService_UpdatePassword(t *testing.T) {
	srv, m := newProfileService(t)
	ctx := context.Background()

	user := testUser()
	user.PasswordHash = "$2a$10$old"

	m.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	m.hasher.On("Check", "old-pw", user.PasswordHash).Return(true)
	m.hasher.On("Hash", "new-pw").Return("$2a$10$new", nil)
	m.userRepo.On("UpdatePasswordHash", ctx, user.ID, "$2a$10$new").Return(nil)

	require.NoError(t, srv.UpdatePassword(ctx, user.ID, "old-pw", "new-pw"))
}

func TestProfileService_UpdatePassword_WrongCurrent(t *testing.T) {
	srv, m := newProfileService(t)
	ctx := context.Background()

	user := testUser()
	user.PasswordHash = "$2a$10$old"

	m.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	m.hasher.On("Check", "wrong", user.PasswordHash).Return(false)

	err := srv.UpdatePassword(ctx, user.ID, "wrong", "new-pw")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestProfileService_RegisterDevice(t *testing.T) {
	srv, m := newProfileService(t)
	ctx := context.Background()

	user := testUser()
	input := usecase.RegisterDeviceInput{FCMToken: "fcm-token", Platform: "ios"}

	m.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	m.deviceRepo.On("Save", ctx, mock.MatchedBy(func(d *entity.Device) bool {
		return d.UserID == user.ID && d.FCMToken == "fcm-token" && d.Platform == "ios" && d.ID != uuid.Nil
	})).Return(nil)

	device, err := srv.RegisterDevice(ctx, user.ID, input)
	require.NoError(t, err)
	require.Equal(t, "fcm-token", device.FCMToken)
}

func TestProfileService_RegisterDevice_UserNotFound(t *testing.T) {
	srv, m := newProfileService(t)
	ctx := context.Background()

	userID := uuid.New()
	m.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := srv.RegisterDevice(ctx, userID, usecase.RegisterDeviceInput{FCMToken: "fcm-token"})
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_RemoveDevice(t *testing.T) {
	srv, m := newProfileService(t)
	ctx := context.Background()

	userID := uuid.New()
	deviceID := uuid.New()
	m.deviceRepo.On("Delete", ctx, userID, deviceID).Return(nil)

	require.NoError(t, srv.RemoveDevice(ctx, userID, deviceID))
}
