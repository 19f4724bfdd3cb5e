package repository

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/go-clean-forum/domain"
)

const (
	bloomWarmUpBatch  = 1000
	sharedLoadTimeout = 10 * time.Second
)

// threadRepository is the coordination layer: it puts the thread-id bloom
// filter in front of the database.
type threadRepository struct {
	db    domain.ThreadDBRepository
	bloom domain.BloomRepository
	group singleflight.Group
	// degraded is set while the filter may miss ids that exist. Lookups then
	// go straight to the database.
	degraded atomic.Bool
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

// NewThreadRepository starts degraded until InitBloomFilter succeeds.
func NewThreadRepository(db domain.ThreadDBRepository, bloom domain.BloomRepository) *threadRepository {
	r := &threadRepository{db: db, bloom: bloom}
	r.degraded.Store(true)
	return r
}

func (r *threadRepository) mustExist(ctx context.Context, threadID string) error {
	if r.degraded.Load() {
		return nil
	}
	exists, err := r.bloom.Exists(ctx, threadID)
	if errors.Is(err, domain.ErrBloomNotReady) {
		logrus.Warnf("bloom filter lost its contents, bypassing filter: %v", err)
		r.degraded.Store(true)
		return nil
	}
	if err != nil {
		logrus.Warnf("bloom filter lookup of thread %s failed: %v", threadID, err)
		return nil
	}
	if !exists {
		logrus.Warnf("bloom filter says thread %s does not exist", threadID)
		return domain.NewNotFoundError("thread not found")
	}
	return nil
}

func (r *threadRepository) AddThread(ctx context.Context, userID string, nt domain.NewThread) (domain.AddedThread, error) {
	added, err := r.db.AddThread(ctx, userID, nt)
	if err != nil {
		return domain.AddedThread{}, err
	}
	if err := r.bloom.Add(ctx, added.ID); err != nil {
		logrus.Errorf("failed to add thread %s to bloom filter, bypassing filter: %v", added.ID, err)
		r.degraded.Store(true)
	}
	return added, nil
}

func (r *threadRepository) VerifyAvailableThread(ctx context.Context, threadID string) error {
	if err := r.mustExist(ctx, threadID); err != nil {
		return err
	}
	return r.db.VerifyAvailableThread(ctx, threadID)
}

// GetThreadByID collapses concurrent loads of the same thread into one query.
// The shared load is detached from the caller that started it: a cancelled
// caller returns early while the others still get the row.
func (r *threadRepository) GetThreadByID(ctx context.Context, threadID string) (domain.ThreadRow, error) {
	if err := r.mustExist(ctx, threadID); err != nil {
		return domain.ThreadRow{}, err
	}
	ch := r.group.DoChan("thread:"+threadID, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedLoadTimeout)
		defer cancel()
		return r.db.GetThreadByID(loadCtx, threadID)
	})
	select {
	case <-ctx.Done():
		return domain.ThreadRow{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return domain.ThreadRow{}, res.Err
		}
		return res.Val.(domain.ThreadRow), nil
	}
}

// InitBloomFilter loads every stored thread id into the filter and enables it.
func (r *threadRepository) InitBloomFilter(ctx context.Context) error {
	cursor := ""
	total := 0
	for {
		ids, err := r.db.FetchIDs(ctx, cursor, bloomWarmUpBatch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			break
		}
		if err := r.bloom.BulkAdd(ctx, ids); err != nil {
			return err
		}
		total += len(ids)
		cursor = ids[len(ids)-1]
		if len(ids) < bloomWarmUpBatch {
			break
		}
	}
	if err := r.bloom.MarkReady(ctx); err != nil {
		return err
	}
	r.degraded.Store(false)
	logrus.Infof("bloom filter warmed up with %d thread ids", total)
	return nil
}
