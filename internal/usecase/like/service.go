package like

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/validity"
)

type service struct {
	likeRepo domain.CommentLikeRepository
	checker  *validity.Checker
}

// LikeOrDislikeComment flips the like of userID on the comment and reports
// whether the comment is liked afterwards.
func (s *service) LikeOrDislikeComment(ctx context.Context, userID string, params domain.CommentParams) (bool, error) {
	if _, err := s.checker.Comment(ctx, params); err != nil {
		return false, err
	}
	like, err := domain.ParseLike(domain.Payload{"commentId": params.CommentID, "owner": userID})
	if err != nil {
		return false, err
	}
	liked, err := s.likeRepo.ToggleLike(ctx, like)
	if err != nil {
		logrus.Errorf("failed to toggle like of %s on %s: %v", userID, params.CommentID, err)
		return false, err
	}
	return liked, nil
}

var _ domain.LikeUsecase = (*service)(nil)

func NewService(likeRepo domain.CommentLikeRepository, checker *validity.Checker) *service {
	return &service{
		likeRepo: likeRepo,
		checker:  checker,
	}
}
