// Package validity walks the thread > comment > reply hierarchy parent first
// and stops at the first failing level.
package validity

import (
	"context"

	"github.com/Guyuepp/go-clean-forum/domain"
)

type Checker struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
}

func NewChecker(threadRepo domain.ThreadRepository, commentRepo domain.CommentRepository, replyRepo domain.ReplyRepository) *Checker {
	return &Checker{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		replyRepo:   replyRepo,
	}
}

func (c *Checker) Thread(ctx context.Context, threadID string) error {
	return c.threadRepo.VerifyAvailableThread(ctx, threadID)
}

// Comment checks the thread and then that the comment is live inside it.
func (c *Checker) Comment(ctx context.Context, params domain.CommentParams) (domain.CommentRow, error) {
	if err := c.Thread(ctx, params.ThreadID); err != nil {
		return domain.CommentRow{}, err
	}
	return c.commentRepo.CheckCommentAvailability(ctx, params.CommentID, params.ThreadID)
}

// CommentOwned additionally requires userID to own the comment.
func (c *Checker) CommentOwned(ctx context.Context, userID string, params domain.CommentParams) error {
	if _, err := c.Comment(ctx, params); err != nil {
		return err
	}
	return c.commentRepo.VerifyCommentOwner(ctx, params.CommentID, userID)
}

func (c *Checker) Reply(ctx context.Context, params domain.ReplyParams) (domain.ReplyRow, error) {
	if _, err := c.Comment(ctx, params.CommentParams()); err != nil {
		return domain.ReplyRow{}, err
	}
	return c.replyRepo.CheckReplyAvailability(ctx, params.ReplyID, params.CommentID)
}

func (c *Checker) ReplyOwned(ctx context.Context, userID string, params domain.ReplyParams) error {
	if _, err := c.Reply(ctx, params); err != nil {
		return err
	}
	return c.replyRepo.VerifyReplyOwner(ctx, params.ReplyID, userID)
}
