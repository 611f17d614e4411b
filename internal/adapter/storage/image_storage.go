package storage

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/plastinin/catalog/internal/config"
	"github.com/plastinin/catalog/internal/domain"
)

// presigner подмножество minio.Client, нужное для выдачи ссылок
type presigner interface {
	PresignedGetObject(ctx context.Context, bucket, object string, expiry time.Duration, params url.Values) (*url.URL, error)
	BucketExists(ctx context.Context, bucket string) (bool, error)
}

// ImageStorage выдаёт ссылки на изображения категорий и элементов из S3/MinIO.
// Загрузка и удаление файлов выполняются командной стороной.
type ImageStorage struct {
	client presigner
	bucket string
	expiry time.Duration
}

// NewImageStorage создаёт новый экземпляр ImageStorage
func NewImageStorage(ctx context.Context, cfg config.S3Config) (*ImageStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	// Bucket создаётся командной стороной, здесь только проверяем
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", cfg.Bucket)
	}

	return newImageStorage(client, cfg.Bucket, cfg.PresignExpiry), nil
}

func newImageStorage(client presigner, bucket string, expiry time.Duration) *ImageStorage {
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &ImageStorage{
		client: client,
		bucket: bucket,
		expiry: expiry,
	}
}

// GetURL возвращает presigned URL для объекта
func (s *ImageStorage) GetURL(ctx context.Context, fileKey string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, fileKey, s.expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return u.String(), nil
}

// Resolve превращает src записи в ссылку для клиента.
// Внешние http(s) ссылки и пустые значения возвращаются как есть.
func (s *ImageStorage) Resolve(ctx context.Context, src string) (string, error) {
	if src == "" || domain.IsExternalSrc(src) {
		return src, nil
	}
	return s.GetURL(ctx, domain.ObjectKey(src))
}

// Ping проверяет доступность bucket
func (s *ImageStorage) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %q does not exist", s.bucket)
	}
	return nil
}
