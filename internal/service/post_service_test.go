package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"personalblog/internal/models"
	"personalblog/internal/repository"
)

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepository) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *mockPostRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *mockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepository) Delete(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepository) GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func TestPostService_CreatePost_StampsDate(t *testing.T) {
	posts := new(mockPostRepository)
	svc := NewPostService(posts)

	posts.On("Create", mock.Anything, mock.Anything).Return(nil)

	post, err := svc.CreatePost(context.Background(), repository.CreatePostRequest{
		AuthorID: 1,
		Title:    "T",
		Subtitle: "S",
		Body:     "B",
		ImgURL:   "U",
	})

	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("January 02, 2006"), post.Date)
	assert.Equal(t, int64(1), post.AuthorID)
}

func TestPostService_UpdatePost_KeepsAuthorAndDate(t *testing.T) {
	posts := new(mockPostRepository)
	svc := NewPostService(posts)

	existing := &models.Post{
		ID:       5,
		AuthorID: 1,
		Title:    "Старый заголовок",
		Subtitle: "Старый подзаголовок",
		Date:     "March 01, 2024",
		Body:     "Старый текст",
		ImgURL:   "http://img",
	}

	posts.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)

	var updated *models.Post
	posts.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*models.Post)
		}).
		Return(nil)

	err := svc.UpdatePost(context.Background(), repository.UpdatePostRequest{
		PostID:   5,
		Title:    "Новый заголовок",
		Subtitle: "Новый подзаголовок",
		Body:     "Новый текст",
		ImgURL:   "http://img2",
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Новый заголовок", updated.Title)
	assert.Equal(t, "Новый текст", updated.Body)

	// the original author and the original date stay
	assert.Equal(t, int64(1), updated.AuthorID)
	assert.Equal(t, "March 01, 2024", updated.Date)
}

func TestPostService_UpdatePost_NotFound(t *testing.T) {
	posts := new(mockPostRepository)
	svc := NewPostService(posts)

	posts.On("GetByID", mock.Anything, int64(99)).
		Return(nil, repository.ErrPostNotFound)

	err := svc.UpdatePost(context.Background(), repository.UpdatePostRequest{PostID: 99})

	assert.ErrorIs(t, err, repository.ErrPostNotFound)
	posts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCommentService_AddComment(t *testing.T) {
	t.Run("Комментарий к существующему посту", func(t *testing.T) {
		posts := new(mockPostRepository)
		comments := new(mockCommentRepository)
		svc := NewCommentService(comments, posts)

		posts.On("GetByID", mock.Anything, int64(5)).
			Return(&models.Post{ID: 5, AuthorID: 1}, nil)
		comments.On("Create", mock.Anything, mock.Anything).Return(nil)

		comment, err := svc.AddComment(context.Background(), repository.CreateCommentRequest{
			Text:     "Отличный пост",
			PostID:   5,
			AuthorID: 2,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(5), comment.PostID)
		assert.Equal(t, int64(2), comment.AuthorID)
	})

	t.Run("Комментарий к несуществующему посту не создается", func(t *testing.T) {
		posts := new(mockPostRepository)
		comments := new(mockCommentRepository)
		svc := NewCommentService(comments, posts)

		posts.On("GetByID", mock.Anything, int64(99)).
			Return(nil, repository.ErrPostNotFound)

		comment, err := svc.AddComment(context.Background(), repository.CreateCommentRequest{
			Text:     "Текст",
			PostID:   99,
			AuthorID: 2,
		})

		assert.Nil(t, comment)
		assert.ErrorIs(t, err, repository.ErrPostNotFound)

		comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
