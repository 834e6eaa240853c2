package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/storage"
)

// Profile возвращает аккаунт владельца сессии.
func (s *Service) Profile(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	const op = "service.profile.Profile"

	account, err := s.storage.AccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return account, nil
}

// UpdateProfile выполняет частичное обновление профиля.
// Список обновляемых полей закрытый (см. storage.AccountUpdate);
// служебные поля аккаунта через этот путь недоступны.
func (s *Service) UpdateProfile(ctx context.Context, accountID uuid.UUID, update storage.AccountUpdate) (*models.Account, error) {
	const op = "service.profile.UpdateProfile"

	if update.Email != nil {
		normEmail, err := validateEmail(*update.Email)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
		}
		update.Email = &normEmail
	}

	if update.WeightKg != nil && (*update.WeightKg <= 0 || *update.WeightKg > maxSetWeightKg) {
		return nil, fmt.Errorf("%s: %w: weight out of range", op, ErrInvalidArgument)
	}

	if update.HeightCm != nil && (*update.HeightCm <= 0 || *update.HeightCm > 300) {
		return nil, fmt.Errorf("%s: %w: height out of range", op, ErrInvalidArgument)
	}

	if update.Age != nil && *update.Age > 150 {
		return nil, fmt.Errorf("%s: %w: age out of range", op, ErrInvalidArgument)
	}

	account, err := s.storage.UpdateAccount(ctx, accountID, update)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrAlreadyExists):
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		case errors.Is(err, storage.ErrInvalidArgument):
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return account, nil
}

// AvatarUploadURL выдаёт presigned-ссылку на загрузку аватара.
func (s *Service) AvatarUploadURL(ctx context.Context, accountID uuid.UUID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "service.profile.AvatarUploadURL"

	if s.avatars == nil {
		return nil, fmt.Errorf("%s: %w: avatar storage is not configured", op, ErrDependency)
	}

	info, err := s.avatars.AvatarUploadURL(ctx, accountID, contentType, contentLength)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidArgument) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		return nil, fmt.Errorf("%s: %w: %w", op, ErrDependency, err)
	}

	return info, nil
}

// ConfirmAvatarUpload подтверждает загрузку объекта и привязывает
// аватар к аккаунту.
func (s *Service) ConfirmAvatarUpload(ctx context.Context, accountID uuid.UUID, key string) (*models.Account, error) {
	const op = "service.profile.ConfirmAvatarUpload"

	if s.avatars == nil {
		return nil, fmt.Errorf("%s: %w: avatar storage is not configured", op, ErrDependency)
	}

	url, err := s.avatars.CheckAvatarUpload(ctx, accountID, key)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundAvatar):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrInvalidArgument):
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			return nil, fmt.Errorf("%s: %w: %w", op, ErrDependency, err)
		}
	}

	if err := s.storage.UpdateAvatar(ctx, accountID, key, url); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.Profile(ctx, accountID)
}
