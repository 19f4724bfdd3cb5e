package validity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/domain/mocks"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/validity"
)

type repos struct {
	thread  *mocks.ThreadRepository
	comment *mocks.CommentRepository
	reply   *mocks.ReplyRepository
}

func newChecker() (*validity.Checker, repos) {
	r := repos{
		thread:  new(mocks.ThreadRepository),
		comment: new(mocks.CommentRepository),
		reply:   new(mocks.ReplyRepository),
	}
	return validity.NewChecker(r.thread, r.comment, r.reply), r
}

func (r repos) assertExpectations(t *testing.T) {
	r.thread.AssertExpectations(t)
	r.comment.AssertExpectations(t)
	r.reply.AssertExpectations(t)
}

var replyParams = domain.ReplyParams{ThreadID: "thread-123", CommentID: "comment-123", ReplyID: "reply-123"}

func TestComment(t *testing.T) {
	t.Run("thread-checked-first", func(t *testing.T) {
		checker, r := newChecker()
		r.thread.On("VerifyAvailableThread", mock.Anything, "thread-123").
			Return(domain.NewNotFoundError("thread not found")).Once()

		_, err := checker.Comment(context.TODO(), replyParams.CommentParams())
		assert.EqualError(t, err, "thread not found")
		r.comment.AssertNotCalled(t, "CheckCommentAvailability", mock.Anything, mock.Anything, mock.Anything)
		r.assertExpectations(t)
	})

	t.Run("comment-in-other-thread", func(t *testing.T) {
		checker, r := newChecker()
		r.thread.On("VerifyAvailableThread", mock.Anything, "thread-123").Return(nil).Once()
		r.comment.On("CheckCommentAvailability", mock.Anything, "comment-123", "thread-123").
			Return(domain.CommentRow{}, domain.NewNotFoundError("comment not found")).Once()

		_, err := checker.Comment(context.TODO(), replyParams.CommentParams())
		require.Error(t, err)
		assert.True(t, domain.Is[*domain.NotFoundError](err))
		assert.EqualError(t, err, "comment not found")
		r.assertExpectations(t)
	})

	t.Run("success", func(t *testing.T) {
		checker, r := newChecker()
		row := domain.CommentRow{ID: "comment-123", ThreadID: "thread-123", Owner: "user-123"}
		r.thread.On("VerifyAvailableThread", mock.Anything, "thread-123").Return(nil).Once()
		r.comment.On("CheckCommentAvailability", mock.Anything, "comment-123", "thread-123").Return(row, nil).Once()

		got, err := checker.Comment(context.TODO(), replyParams.CommentParams())
		require.NoError(t, err)
		assert.Equal(t, row, got)
		r.assertExpectations(t)
	})
}

func TestCommentOwned(t *testing.T) {
	t.Run("deleted-comment-skips-owner-check", func(t *testing.T) {
		checker, r := newChecker()
		r.thread.On("VerifyAvailableThread", mock.Anything, "thread-123").Return(nil).Once()
		r.comment.On("CheckCommentAvailability", mock.Anything, "comment-123", "thread-123").
			Return(domain.CommentRow{}, domain.NewNotFoundError("comment invalid")).Once()

		err := checker.CommentOwned(context.TODO(), "user-123", replyParams.CommentParams())
		assert.EqualError(t, err, "comment invalid")
		r.comment.AssertNotCalled(t, "VerifyCommentOwner", mock.Anything, mock.Anything, mock.Anything)
		r.assertExpectations(t)
	})

	t.Run("not-owner", func(t *testing.T) {
		checker, r := newChecker()
		r.thread.On("VerifyAvailableThread", mock.Anything, "thread-123").Return(nil).Once()
		r.comment.On("CheckCommentAvailability", mock.Anything, "comment-123", "thread-123").
			Return(domain.CommentRow{ID: "comment-123"}, nil).Once()
		r.comment.On("VerifyCommentOwner", mock.Anything, "comment-123", "user-456").
			Return(domain.NewAuthorizationError("you are not the owner of this comment")).Once()

		err := checker.CommentOwned(context.TODO(), "user-456", replyParams.CommentParams())
		assert.True(t, domain.Is[*domain.AuthorizationError](err))
		r.assertExpectations(t)
	})
}

func TestReplyOwned(t *testing.T) {
	t.Run("missing-thread-reported-before-anything-else", func(t *testing.T) {
		checker, r := newChecker()
		r.thread.On("VerifyAvailableThread", mock.Anything, "thread-123").
			Return(domain.NewNotFoundError("thread not found")).Once()

		err := checker.ReplyOwned(context.TODO(), "user-123", replyParams)
		assert.EqualError(t, err, "thread not found")
		r.assertExpectations(t)
	})

	t.Run("reply-in-other-comment", func(t *testing.T) {
		checker, r := newChecker()
		r.thread.On("VerifyAvailableThread", mock.Anything, "thread-123").Return(nil).Once()
		r.comment.On("CheckCommentAvailability", mock.Anything, "comment-123", "thread-123").
			Return(domain.CommentRow{ID: "comment-123"}, nil).Once()
		r.reply.On("CheckReplyAvailability", mock.Anything, "reply-123", "comment-123").
			Return(domain.ReplyRow{}, domain.NewNotFoundError("reply in comment invalid")).Once()

		err := checker.ReplyOwned(context.TODO(), "user-123", replyParams)
		assert.EqualError(t, err, "reply in comment invalid")
		r.reply.AssertNotCalled(t, "VerifyReplyOwner", mock.Anything, mock.Anything, mock.Anything)
		r.assertExpectations(t)
	})

	t.Run("success", func(t *testing.T) {
		checker, r := newChecker()
		r.thread.On("VerifyAvailableThread", mock.Anything, "thread-123").Return(nil).Once()
		r.comment.On("CheckCommentAvailability", mock.Anything, "comment-123", "thread-123").
			Return(domain.CommentRow{ID: "comment-123"}, nil).Once()
		r.reply.On("CheckReplyAvailability", mock.Anything, "reply-123", "comment-123").
			Return(domain.ReplyRow{ID: "reply-123"}, nil).Once()
		r.reply.On("VerifyReplyOwner", mock.Anything, "reply-123", "user-123").Return(nil).Once()

		assert.NoError(t, checker.ReplyOwned(context.TODO(), "user-123", replyParams))
		r.assertExpectations(t)
	})
}
