package minio

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/DuongAty/workout-planner/internal/config"
	"github.com/DuongAty/workout-planner/internal/storage"
)

// Интеграционные тесты для пакета minio:
// — поднимают реальный MinIO через testcontainers-go;
// — создают бакет для аватаров;
// — проверяют выдачу presigned PUT, валидации по типу/размеру и
//   подтверждение загрузки (включая "чужой" ключ и отсутствующий объект).
//
// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/minio -v -race -count=1

func startMinio(t *testing.T, createBucket bool) (*AvatarsStorage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	const (
		rootUser     = "root"
		rootPassword = "rootpass"
		bucket       = "avatars"
	)
	req := tc.ContainerRequest{
		Image: "docker.io/minio/minio:latest",
		Env: map[string]string{
			"MINIO_ROOT_USER":     rootUser,
			"MINIO_ROOT_PASSWORD": rootPassword,
		},
		Cmd:          []string{"server", "/data"},
		ExposedPorts: []string{"9000/tcp"},
		WaitingFor:   wait.ForListeningPort("9000/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "9000/tcp")
	endpoint := fmt.Sprintf("http://%s:%s", host, port.Port())

	if createBucket {
		admin, err := mclient.New(host+":"+port.Port(), &mclient.Options{
			Creds:  credentials.NewStaticV4(rootUser, rootPassword, ""),
			Secure: false,
		})
		require.NoError(t, err)
		require.NoError(t, admin.MakeBucket(ctx, bucket, mclient.MakeBucketOptions{Region: "us-east-1"}))
	}

	cfg := &config.Config{
		S3: config.S3Config{
			Endpoint:      endpoint,
			RootUser:      rootUser,
			RootPassword:  rootPassword,
			Bucket:        bucket,
			PresignTTL:    2 * time.Minute,
			PublicBaseURL: "http://cdn.local",
		},
		Avatar: config.AvatarConfig{
			MaxSizeBytes:        1 << 20, // 1 MiB
			AllowedContentTypes: []string{"image/png", "image/jpeg", "image/webp"},
		},
	}

	st, newErr := New(ctx, cfg)
	if !createBucket {
		require.Error(t, newErr)
		_ = c.Terminate(context.Background())
		return nil, func() {}
	}
	require.NoError(t, newErr)

	cleanup := func() {
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

func TestIntegration_New_BucketMustExist(t *testing.T) {
	// Без предварительного создания бакета New должен вернуть ошибку.
	_, _ = startMinio(t, false)
}

func TestIntegration_AvatarUploadURL_And_CheckAvatarUpload_OK(t *testing.T) {
	st, cleanup := startMinio(t, true)
	defer cleanup()

	uid := uuid.New()

	const bodySize = 5
	ui, err := st.AvatarUploadURL(context.Background(), uid, "image/png", bodySize)
	require.NoError(t, err)
	require.NotEmpty(t, ui.UploadURL)
	require.Contains(t, ui.AvatarKey, "avatars/"+uid.String()+"/")
	require.Equal(t, "image/png", ui.RequiredHeader["Content-Type"])
	require.Equal(t, strconv.Itoa(bodySize), ui.RequiredHeader["Content-Length"])

	body := bytes.Repeat([]byte{0x42}, bodySize)
	req, err := http.NewRequest(http.MethodPut, ui.UploadURL, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "image/png")
	req.ContentLength = int64(bodySize)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Less(t, resp.StatusCode, 300, "PUT must succeed")

	public, err := st.CheckAvatarUpload(context.Background(), uid, ui.AvatarKey)
	require.NoError(t, err)
	require.Equal(t, "http://cdn.local/"+ui.AvatarKey, public)
}

func TestIntegration_AvatarUploadURL_InvalidArgs(t *testing.T) {
	st, cleanup := startMinio(t, true)
	defer cleanup()

	uid := uuid.New()

	// Неверный тип.
	_, err := st.AvatarUploadURL(context.Background(), uid, "image/gif", 10)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	// Неверный размер.
	_, err = st.AvatarUploadURL(context.Background(), uid, "image/png", -1)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	// Размер больше лимита.
	_, err = st.AvatarUploadURL(context.Background(), uid, "image/png", (1<<20)+1)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
}

func TestIntegration_CheckAvatarUpload_Errors(t *testing.T) {
	st, cleanup := startMinio(t, true)
	defer cleanup()

	uid := uuid.New()
	other := uuid.New()

	// Ключ с "чужим" префиксом.
	_, err := st.CheckAvatarUpload(context.Background(), uid, "avatars/"+other.String()+"/x.png")
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	// Не существует.
	_, err = st.CheckAvatarUpload(context.Background(), uid, "avatars/"+uid.String()+"/missing.png")
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFoundAvatar)
}

func TestIsAllowedContentType(t *testing.T) {
	t.Parallel()

	allowed := []string{"image/png", " Image/JPEG "}

	require.True(t, isAllowedContentType(allowed, "image/png"))
	require.True(t, isAllowedContentType(allowed, "IMAGE/PNG"))
	require.True(t, isAllowedContentType(allowed, "image/jpeg"))
	require.False(t, isAllowedContentType(allowed, "image/gif"))
	require.False(t, isAllowedContentType(allowed, ""))
}
