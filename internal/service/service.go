package service

import (
	"personalblog/internal/config"
	"personalblog/internal/notifier"
	"personalblog/internal/repository"
)

type Service struct {
	Auth    AuthService
	Post    PostService
	Comment CommentService
	Contact ContactService
	Tables  TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, notifier notifier.Notifier) *Service {
	return &Service{
		Auth:    NewAuthService(rep.User, cfg),
		Post:    NewPostService(rep.Post),
		Comment: NewCommentService(rep.Comment, rep.Post),
		Contact: NewContactService(notifier),
		Tables:  NewTablesService(rep.Tables),
	}
}
