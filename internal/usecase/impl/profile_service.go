package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "gatherly/internal/delivery/context"
	"gatherly/internal/domain/entity"
	domainerrors "gatherly/internal/domain/errors"
	"gatherly/internal/domain/repository"
	"gatherly/internal/domain/service"
	"gatherly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo   repository.UserRepository
	deviceRepo repository.DeviceRepository
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	DeviceRepo repository.DeviceRepository
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:   params.UserRepo,
		deviceRepo: params.DeviceRepo,
		hasher:     params.Hasher,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the user's profile.
func (srv *profileService) Get(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// UpdateEmail changes the login email. Existing participations keep the
// old email; they are historical records of who joined, not live links.
func (srv *profileService) UpdateEmail(ctx context.Context, userID uuid.UUID, newEmail string) error {
	email := strings.ToLower(strings.TrimSpace(newEmail))

	if err := srv.userRepo.UpdateEmail(ctx, userID, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return domainerrors.ErrUserNotFound
		case errors.Is(err, repository.ErrEmailTaken):
			return domainerrors.ErrEmailTaken
		default:
			return errors.Wrap(err, "failed to update email")
		}
	}

	srv.log(ctx).Info("email updated", slog.String("userId", userID.String()))

	return nil
}

// UpdatePassword verifies the current password before replacing it.
func (srv *profileService) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load user for password update")
	}

	if !srv.hasher.Check(currentPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	hash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		srv.log(ctx).Error("failed to hash new password", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed
	}

	if err := srv.userRepo.UpdatePasswordHash(ctx, userID, hash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("password updated", slog.String("userId", userID.String()))

	return nil
}

// RegisterDevice registers an FCM push device for the user.
func (srv *profileService) RegisterDevice(ctx context.Context, userID uuid.UUID, input usecase.RegisterDeviceInput) (*entity.Device, error) {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for device registration")
	}

	device := &entity.Device{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  input.FCMToken,
		Platform:  input.Platform,
		CreatedAt: time.Now(),
	}
	if err := srv.deviceRepo.Save(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to save device")
	}

	return device, nil
}

// RemoveDevice removes a registered push device.
func (srv *profileService) RemoveDevice(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID) error {
	if err := srv.deviceRepo.Delete(ctx, userID, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}
