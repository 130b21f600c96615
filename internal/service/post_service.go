package service

import (
	"context"
	"time"

	"personalblog/internal/models"
	"personalblog/internal/repository"
)

// dateLayout mirrors the "%B %d, %Y" stamp the posts have always carried.
const dateLayout = "January 02, 2006"

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, req repository.UpdatePostRequest) error
	DeletePost(ctx context.Context, postID int64) error
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		AuthorID: req.AuthorID,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Date:     time.Now().Format(dateLayout),
		Body:     req.Body,
		ImgURL:   req.ImgURL,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, req repository.UpdatePostRequest) error {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return err
	}

	post.Title = req.Title
	post.Subtitle = req.Subtitle
	post.Body = req.Body
	post.ImgURL = req.ImgURL

	err = p.postRepo.Update(ctx, post)
	if err != nil {
		return err
	}

	return nil
}

func (p *postService) DeletePost(ctx context.Context, postID int64) error {
	err := p.postRepo.Delete(ctx, postID)
	if err != nil {
		return err
	}

	return nil
}
