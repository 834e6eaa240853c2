package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UploadInfo — результат генерации presigned-ссылки на загрузку аватара.
type UploadInfo struct {
	// UploadURL — presigned PUT URL.
	UploadURL string
	// AvatarKey — ключ объекта в бакете.
	AvatarKey string
	// Expires — срок действия ссылки.
	Expires time.Duration
	// RequiredHeader — заголовки, которые клиент обязан передать при PUT.
	RequiredHeader map[string]string
}

// AvatarsStorage — контракт объектного хранилища аватаров.
type AvatarsStorage interface {
	// AvatarUploadURL генерирует presigned PUT URL на загрузку аватара.
	AvatarUploadURL(ctx context.Context, accountID uuid.UUID, contentType string, contentLength int64) (*UploadInfo, error)
	// CheckAvatarUpload подтверждает факт загрузки и возвращает публичный URL
	// (пустая строка, если PublicBaseURL не задан).
	CheckAvatarUpload(ctx context.Context, accountID uuid.UUID, key string) (string, error)
}
