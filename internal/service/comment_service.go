package service

import (
	"context"

	"personalblog/internal/models"
	"personalblog/internal/repository"
)

type CommentService interface {
	AddComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *commentService) AddComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error) {
	// a comment must reference a live post
	_, err := s.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:     req.Text,
		PostID:   req.PostID,
		AuthorID: req.AuthorID,
	}

	err = s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}
