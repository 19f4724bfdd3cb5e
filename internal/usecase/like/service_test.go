package like_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/domain/mocks"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/like"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/validity"
)

// memoryLikes keeps likes in a set and only backs the methods the toggle needs.
type memoryLikes struct {
	domain.UnimplementedCommentLikeRepository

	mu   sync.Mutex
	rows map[domain.Like]struct{}
}

func (m *memoryLikes) ToggleLike(_ context.Context, l domain.Like) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[l]; ok {
		delete(m.rows, l)
		return false, nil
	}
	m.rows[l] = struct{}{}
	return true, nil
}

var params = domain.CommentParams{ThreadID: "thread-123", CommentID: "comment-123"}

func availableChecker() (*validity.Checker, *mocks.ThreadRepository, *mocks.CommentRepository) {
	mockThreadRepo := new(mocks.ThreadRepository)
	mockCommentRepo := new(mocks.CommentRepository)
	mockThreadRepo.On("VerifyAvailableThread", mock.Anything, "thread-123").Return(nil)
	mockCommentRepo.On("CheckCommentAvailability", mock.Anything, "comment-123", "thread-123").
		Return(domain.CommentRow{ID: "comment-123", ThreadID: "thread-123"}, nil)
	return validity.NewChecker(mockThreadRepo, mockCommentRepo, nil), mockThreadRepo, mockCommentRepo
}

func TestLikeOrDislikeComment(t *testing.T) {
	t.Run("toggle", func(t *testing.T) {
		checker, _, _ := availableChecker()
		repo := &memoryLikes{rows: map[domain.Like]struct{}{}}
		svc := like.NewService(repo, checker)
		key := domain.Like{CommentID: "comment-123", Owner: "user-123"}

		liked, err := svc.LikeOrDislikeComment(context.TODO(), "user-123", params)
		require.NoError(t, err)
		assert.True(t, liked)
		assert.Len(t, repo.rows, 1)
		assert.Contains(t, repo.rows, key)

		liked, err = svc.LikeOrDislikeComment(context.TODO(), "user-123", params)
		require.NoError(t, err)
		assert.False(t, liked)
		assert.Empty(t, repo.rows)

		liked, err = svc.LikeOrDislikeComment(context.TODO(), "user-123", params)
		require.NoError(t, err)
		assert.True(t, liked)
		assert.Len(t, repo.rows, 1)
	})

	t.Run("likes-are-per-user", func(t *testing.T) {
		checker, _, _ := availableChecker()
		repo := &memoryLikes{rows: map[domain.Like]struct{}{}}
		svc := like.NewService(repo, checker)

		_, err := svc.LikeOrDislikeComment(context.TODO(), "user-123", params)
		require.NoError(t, err)
		liked, err := svc.LikeOrDislikeComment(context.TODO(), "user-456", params)
		require.NoError(t, err)

		assert.True(t, liked)
		assert.Len(t, repo.rows, 2)
	})

	t.Run("deleted-comment", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)
		mockCommentRepo := new(mocks.CommentRepository)
		mockLikeRepo := new(mocks.CommentLikeRepository)
		mockThreadRepo.On("VerifyAvailableThread", mock.Anything, "thread-123").Return(nil).Once()
		mockCommentRepo.On("CheckCommentAvailability", mock.Anything, "comment-123", "thread-123").
			Return(domain.CommentRow{}, domain.NewNotFoundError("comment invalid")).Once()

		svc := like.NewService(mockLikeRepo, validity.NewChecker(mockThreadRepo, mockCommentRepo, nil))
		_, err := svc.LikeOrDislikeComment(context.TODO(), "user-123", params)

		assert.EqualError(t, err, "comment invalid")
		mockLikeRepo.AssertNotCalled(t, "ToggleLike", mock.Anything, mock.Anything)
	})

	t.Run("storage-error", func(t *testing.T) {
		checker, _, _ := availableChecker()
		mockLikeRepo := new(mocks.CommentLikeRepository)
		boom := errors.New("deadlock found")
		mockLikeRepo.On("ToggleLike", mock.Anything, domain.Like{CommentID: "comment-123", Owner: "user-123"}).
			Return(false, boom).Once()

		svc := like.NewService(mockLikeRepo, checker)
		_, err := svc.LikeOrDislikeComment(context.TODO(), "user-123", params)

		assert.ErrorIs(t, err, boom)
		mockLikeRepo.AssertExpectations(t)
	})
}
