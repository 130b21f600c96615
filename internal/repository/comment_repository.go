package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"personalblog/internal/models"
)

type CommentRepositoryImpl struct {
	db *sqlx.DB
}

type CreateCommentRequest struct {
	Text     string `json:"text"`
	PostID   int64  `json:"post_id"`
	AuthorID int64  `json:"author_id"`
}

func NewCommentRepository(db *sqlx.DB) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (text, post_id, author_id)
		VALUES ($1, $2, $3)
		RETURNING comment_id
	`

	err := r.db.QueryRowContext(ctx, query,
		comment.Text,
		comment.PostID,
		comment.AuthorID,
	).Scan(&comment.ID)
	if err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	return nil
}

func (r *CommentRepositoryImpl) GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	query := `
		SELECT * FROM comments
		WHERE post_id = $1
		ORDER BY comment_id
	`

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}
