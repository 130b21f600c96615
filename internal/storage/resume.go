package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"personalblog/internal/config"
)

// Storage hands out the resume file. The local implementation is the
// default, MinIO is used when an endpoint is configured.
type Storage interface {
	OpenResume(ctx context.Context) (io.ReadCloser, string, error)
}

type LocalStorage struct {
	filePath string
}

func NewLocalStorage(cfg *config.Config) *LocalStorage {
	return &LocalStorage{filePath: cfg.ResumeFile}
}

func (s *LocalStorage) OpenResume(ctx context.Context) (io.ReadCloser, string, error) {
	file, err := os.Open(s.filePath)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка при открытии файла резюме: %w", err)
	}

	return file, filepath.Base(s.filePath), nil
}

type MinIOStorage struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOStorage(cfg *config.Config) (*MinIOStorage, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка при инициализации MinIO: %w", err)
	}

	return &MinIOStorage{client: client, cfg: cfg}, nil
}

func (s *MinIOStorage) OpenResume(ctx context.Context) (io.ReadCloser, string, error) {
	object, err := s.client.GetObject(ctx, s.cfg.MinIO.BucketName, s.cfg.MinIO.ResumeObject,
		minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("ошибка при получении файла из MinIO: %w", err)
	}

	// GetObject is lazy, force the first read to surface a missing object
	if _, err := object.Stat(); err != nil {
		object.Close()
		return nil, "", fmt.Errorf("файл резюме не найден в MinIO: %w", err)
	}

	return object, path.Base(s.cfg.MinIO.ResumeObject), nil
}

// NewStorage picks the backend from the config.
func NewStorage(cfg *config.Config) (Storage, error) {
	if cfg.MinIO.Endpoint != "" {
		return NewMinIOStorage(cfg)
	}
	return NewLocalStorage(cfg), nil
}
