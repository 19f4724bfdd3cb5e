package reply

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/validity"
)

type service struct {
	replyRepo domain.ReplyRepository
	checker   *validity.Checker
}

func (s *service) AddReply(ctx context.Context, userID string, params domain.CommentParams, p domain.Payload) (domain.AddedReply, error) {
	if _, err := s.checker.Comment(ctx, params); err != nil {
		return domain.AddedReply{}, err
	}
	nr, err := domain.ParseNewReply(p)
	if err != nil {
		return domain.AddedReply{}, err
	}
	added, err := s.replyRepo.AddReply(ctx, userID, params.CommentID, nr)
	if err != nil {
		logrus.Errorf("failed to add reply to comment %s: %v", params.CommentID, err)
		return domain.AddedReply{}, err
	}
	return added, nil
}

func (s *service) DeleteReply(ctx context.Context, userID string, params domain.ReplyParams) error {
	if err := s.checker.ReplyOwned(ctx, userID, params); err != nil {
		return err
	}
	if err := s.replyRepo.DeleteReplyByID(ctx, params.ReplyID); err != nil {
		logrus.Errorf("failed to delete reply %s: %v", params.ReplyID, err)
		return err
	}
	return nil
}

func (s *service) GetCommentReplies(ctx context.Context, params domain.CommentParams) ([]domain.ReplyDetail, error) {
	if _, err := s.checker.Comment(ctx, params); err != nil {
		return nil, err
	}
	rows, err := s.replyRepo.GetRepliesByCommentID(ctx, params.CommentID)
	if err != nil {
		logrus.Errorf("failed to get replies of comment %s: %v", params.CommentID, err)
		return nil, err
	}

	details := make([]domain.ReplyDetail, 0, len(rows))
	for _, row := range rows {
		rd, err := row.Detail()
		if err != nil {
			return nil, err
		}
		details = append(details, rd)
	}
	return details, nil
}

var _ domain.ReplyUsecase = (*service)(nil)

func NewService(replyRepo domain.ReplyRepository, checker *validity.Checker) *service {
	return &service{
		replyRepo: replyRepo,
		checker:   checker,
	}
}
