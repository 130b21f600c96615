package handlers

import (
	"github.com/go-playground/validator/v10"

	"personalblog/internal/config"
	"personalblog/internal/database"
	"personalblog/internal/repository"
	"personalblog/internal/service"
	"personalblog/internal/storage"
)

type Handlers struct {
	AuthService    service.AuthService
	PostService    service.PostService
	CommentService service.CommentService
	ContactService service.ContactService
	TablesService  service.TablesService
	UserRepo       repository.UserRepository
	PostRepo       repository.PostRepository
	CommentRepo    repository.CommentRepository
	Storage        storage.Storage
	DB             *database.DB
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, storage storage.Storage, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:    service.Auth,
		PostService:    service.Post,
		CommentService: service.Comment,
		ContactService: service.Contact,
		TablesService:  service.Tables,
		UserRepo:       repo.User,
		PostRepo:       repo.Post,
		CommentRepo:    repo.Comment,
		Storage:        storage,
		DB:             db,
		Cfg:            config,
		Validate:       validator.New(),
	}
}
