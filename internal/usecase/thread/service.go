package thread

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/go-clean-forum/domain"
)

type Service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
	likeRepo    domain.CommentLikeRepository
}

var _ domain.ThreadUsecase = (*Service)(nil)

// NewService will create a new thread service object
func NewService(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository, l domain.CommentLikeRepository) *Service {
	return &Service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
		likeRepo:    l,
	}
}

func (s *Service) AddThread(ctx context.Context, userID string, p domain.Payload) (domain.AddedThread, error) {
	nt, err := domain.ParseNewThread(p)
	if err != nil {
		return domain.AddedThread{}, err
	}
	added, err := s.threadRepo.AddThread(ctx, userID, nt)
	if err != nil {
		logrus.Errorf("failed to add thread: %v", err)
		return domain.AddedThread{}, err
	}
	return added, nil
}

// GetThreadDetail fetches the thread row and its comments, replies and likes
// concurrently, then aggregates them once all four are in.
func (s *Service) GetThreadDetail(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	var (
		thread   domain.ThreadRow
		comments []domain.CommentRow
		replies  []domain.ReplyRow
		likes    []domain.LikeRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		thread, err = s.threadRepo.GetThreadByID(gctx, threadID)
		return
	})
	g.Go(func() (err error) {
		comments, err = s.commentRepo.GetCommentsByThreadID(gctx, threadID)
		return
	})
	g.Go(func() (err error) {
		replies, err = s.replyRepo.GetRepliesByThreadID(gctx, threadID)
		return
	})
	g.Go(func() (err error) {
		likes, err = s.likeRepo.GetLikesByThreadID(gctx, threadID)
		return
	})
	if err := g.Wait(); err != nil {
		if !domain.Is[*domain.NotFoundError](err) {
			logrus.Errorf("failed to fetch thread %s: %v", threadID, err)
		}
		return domain.ThreadDetail{}, err
	}

	return BuildThreadDetail(thread, comments, replies, likes)
}
