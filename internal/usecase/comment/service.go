package comment

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/validity"
)

type service struct {
	commentRepo domain.CommentRepository
	checker     *validity.Checker
}

func (s *service) AddComment(ctx context.Context, userID, threadID string, p domain.Payload) (domain.AddedComment, error) {
	if err := s.checker.Thread(ctx, threadID); err != nil {
		return domain.AddedComment{}, err
	}
	nc, err := domain.ParseNewComment(p)
	if err != nil {
		return domain.AddedComment{}, err
	}
	added, err := s.commentRepo.AddComment(ctx, userID, threadID, nc)
	if err != nil {
		logrus.Errorf("failed to add comment to thread %s: %v", threadID, err)
		return domain.AddedComment{}, err
	}
	return added, nil
}

func (s *service) DeleteComment(ctx context.Context, userID string, params domain.CommentParams) error {
	if err := s.checker.CommentOwned(ctx, userID, params); err != nil {
		return err
	}
	if err := s.commentRepo.DeleteCommentByID(ctx, params.CommentID); err != nil {
		logrus.Errorf("failed to delete comment %s: %v", params.CommentID, err)
		return err
	}
	return nil
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, checker *validity.Checker) *service {
	return &service{
		commentRepo: commentRepo,
		checker:     checker,
	}
}
