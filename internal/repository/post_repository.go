package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"personalblog/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

type CreatePostRequest struct {
	AuthorID int64  `json:"author_id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Body     string `json:"body"`
	ImgURL   string `json:"img_url"`
}

type UpdatePostRequest struct {
	PostID   int64  `json:"post_id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Body     string `json:"body"`
	ImgURL   string `json:"img_url"`
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func isDuplicateTitle(err error) bool {
	return strings.Contains(err.Error(), "duplicate key value") &&
		strings.Contains(err.Error(), "title")
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts (author_id, title, subtitle, date, body, img_url)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING post_id
    `

	err := r.db.QueryRowContext(ctx, query,
		post.AuthorID,
		post.Title,
		post.Subtitle,
		post.Date,
		post.Body,
		post.ImgURL,
	).Scan(&post.ID)
	if err != nil {
		if isDuplicateTitle(err) {
			return fmt.Errorf("ошибка при создании поста: %w", ErrDuplicateTitle)
		}
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	query := `
        SELECT * FROM posts
        WHERE post_id = $1
    `

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %d: %w", postID, ErrPostNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetAll(ctx context.Context) ([]models.Post, error) {
	query := `
        SELECT * FROM posts
        ORDER BY post_id
    `

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	return posts, nil
}

// Update overwrites title, subtitle, body and img_url. Author and date
// are never touched by an edit.
func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			title = $1,
			subtitle = $2,
			body = $3,
			img_url = $4
		WHERE post_id = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		post.Title,
		post.Subtitle,
		post.Body,
		post.ImgURL,
		post.ID,
	)
	if err != nil {
		if isDuplicateTitle(err) {
			return fmt.Errorf("ошибка при обновлении поста: %w", ErrDuplicateTitle)
		}
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %d: %w", post.ID, ErrPostNotFound)
	}

	return nil
}

// Delete removes the post and its comments in one transaction. The
// schema also carries ON DELETE CASCADE, the explicit delete keeps the
// referential action visible.
func (r *PostRepositoryImpl) Delete(ctx context.Context, postID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментариев поста: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %d: %w", postID, ErrPostNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}
