package app

import (
	"log"

	"personalblog/internal/config"
	"personalblog/internal/database"
	"personalblog/internal/notifier"
	"personalblog/internal/repository"
	"personalblog/internal/service"
	"personalblog/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, storage.Storage) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// resume storage (local file or MinIO)
	store, err := storage.NewStorage(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать хранилище: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	trustifi := notifier.NewTrustifiClient(cfg)

	services := service.NewService(repo, cfg, trustifi)

	return db, repo, services, store
}
