package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/domain/mocks"
	"github.com/Guyuepp/go-clean-forum/internal/repository"
)

func warmRepo(t *testing.T, db *mocks.ThreadRepository, bloom *mocks.BloomRepository) interface {
	domain.ThreadRepository
	InitBloomFilter(ctx context.Context) error
} {
	t.Helper()
	db.On("FetchIDs", mock.Anything, "", 1000).Return([]string{"thread-123"}, nil).Once()
	bloom.On("BulkAdd", mock.Anything, []string{"thread-123"}).Return(nil).Once()
	bloom.On("MarkReady", mock.Anything).Return(nil).Once()
	repo := repository.NewThreadRepository(db, bloom)
	require.NoError(t, repo.InitBloomFilter(context.TODO()))
	return repo
}

func TestVerifyAvailableThread(t *testing.T) {
	t.Run("bloom-says-absent", func(t *testing.T) {
		db, bloom := new(mocks.ThreadRepository), new(mocks.BloomRepository)
		repo := warmRepo(t, db, bloom)
		bloom.On("Exists", mock.Anything, "thread-404").Return(false, nil).Once()

		err := repo.VerifyAvailableThread(context.TODO(), "thread-404")

		assert.EqualError(t, err, "thread not found")
		db.AssertNotCalled(t, "VerifyAvailableThread", mock.Anything, mock.Anything)
	})

	t.Run("bloom-says-maybe", func(t *testing.T) {
		db, bloom := new(mocks.ThreadRepository), new(mocks.BloomRepository)
		repo := warmRepo(t, db, bloom)
		bloom.On("Exists", mock.Anything, "thread-123").Return(true, nil).Once()
		db.On("VerifyAvailableThread", mock.Anything, "thread-123").Return(nil).Once()

		assert.NoError(t, repo.VerifyAvailableThread(context.TODO(), "thread-123"))
		db.AssertExpectations(t)
	})

	t.Run("bloom-error-falls-back-to-db", func(t *testing.T) {
		db, bloom := new(mocks.ThreadRepository), new(mocks.BloomRepository)
		repo := warmRepo(t, db, bloom)
		bloom.On("Exists", mock.Anything, "thread-123").Return(false, errors.New("redis down")).Once()
		db.On("VerifyAvailableThread", mock.Anything, "thread-123").
			Return(domain.NewNotFoundError("thread not found")).Once()

		err := repo.VerifyAvailableThread(context.TODO(), "thread-123")

		assert.EqualError(t, err, "thread not found")
		db.AssertExpectations(t)
	})

	t.Run("bitmap-lost-after-warm-up", func(t *testing.T) {
		db, bloom := new(mocks.ThreadRepository), new(mocks.BloomRepository)
		repo := warmRepo(t, db, bloom)
		bloom.On("Exists", mock.Anything, "thread-123").Return(false, domain.ErrBloomNotReady).Once()
		db.On("VerifyAvailableThread", mock.Anything, "thread-123").Return(nil).Twice()

		assert.NoError(t, repo.VerifyAvailableThread(context.TODO(), "thread-123"))
		// the filter stays bypassed afterwards
		assert.NoError(t, repo.VerifyAvailableThread(context.TODO(), "thread-123"))
		bloom.AssertNumberOfCalls(t, "Exists", 1)
		db.AssertExpectations(t)
	})

	t.Run("filter-not-warmed-up", func(t *testing.T) {
		db, bloom := new(mocks.ThreadRepository), new(mocks.BloomRepository)
		repo := repository.NewThreadRepository(db, bloom)
		db.On("VerifyAvailableThread", mock.Anything, "thread-123").Return(nil).Once()

		assert.NoError(t, repo.VerifyAvailableThread(context.TODO(), "thread-123"))
		bloom.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})
}

func TestAddThread(t *testing.T) {
	nt := domain.NewThread{Title: "sebuah thread", Body: "sebuah body thread"}
	added := domain.AddedThread{ID: "thread-456", Title: "sebuah thread", Owner: "user-123"}

	t.Run("new-id-is-added-to-filter", func(t *testing.T) {
		db, bloom := new(mocks.ThreadRepository), new(mocks.BloomRepository)
		repo := warmRepo(t, db, bloom)
		db.On("AddThread", mock.Anything, "user-123", nt).Return(added, nil).Once()
		bloom.On("Add", mock.Anything, "thread-456").Return(nil).Once()

		got, err := repo.AddThread(context.TODO(), "user-123", nt)

		require.NoError(t, err)
		assert.Equal(t, added, got)
		bloom.AssertExpectations(t)
	})

	t.Run("failed-filter-add-bypasses-filter", func(t *testing.T) {
		db, bloom := new(mocks.ThreadRepository), new(mocks.BloomRepository)
		repo := warmRepo(t, db, bloom)
		db.On("AddThread", mock.Anything, "user-123", nt).Return(added, nil).Once()
		bloom.On("Add", mock.Anything, "thread-456").Return(errors.New("redis down")).Once()
		db.On("VerifyAvailableThread", mock.Anything, "thread-456").Return(nil).Once()

		_, err := repo.AddThread(context.TODO(), "user-123", nt)
		require.NoError(t, err)

		assert.NoError(t, repo.VerifyAvailableThread(context.TODO(), "thread-456"))
		bloom.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})

	t.Run("db-error", func(t *testing.T) {
		db, bloom := new(mocks.ThreadRepository), new(mocks.BloomRepository)
		repo := warmRepo(t, db, bloom)
		db.On("AddThread", mock.Anything, "user-123", nt).Return(domain.AddedThread{}, errors.New("insert failed")).Once()

		_, err := repo.AddThread(context.TODO(), "user-123", nt)

		assert.Error(t, err)
		bloom.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestGetThreadByID(t *testing.T) {
	db, bloom := new(mocks.ThreadRepository), new(mocks.BloomRepository)
	repo := warmRepo(t, db, bloom)
	row := domain.ThreadRow{ID: "thread-123", Title: "sebuah thread", Date: time.Now(), Username: "dicoding"}
	bloom.On("Exists", mock.Anything, "thread-123").Return(true, nil).Once()
	db.On("GetThreadByID", mock.Anything, "thread-123").Return(row, nil).Once()

	got, err := repo.GetThreadByID(context.TODO(), "thread-123")

	require.NoError(t, err)
	assert.Equal(t, row, got)
}

func TestGetThreadByIDSharedLoadOutlivesCaller(t *testing.T) {
	db, bloom := new(mocks.ThreadRepository), new(mocks.BloomRepository)
	repo := repository.NewThreadRepository(db, bloom)
	row := domain.ThreadRow{ID: "thread-123", Title: "sebuah thread", Username: "dicoding"}

	started, release := make(chan struct{}), make(chan struct{})
	var loadErr error
	db.On("GetThreadByID", mock.Anything, "thread-123").Run(func(args mock.Arguments) {
		close(started)
		<-release
		loadErr = args.Get(0).(context.Context).Err()
	}).Return(row, nil)

	firstCtx, cancel := context.WithCancel(context.Background())
	firstDone := make(chan error, 1)
	go func() {
		_, err := repo.GetThreadByID(firstCtx, "thread-123")
		firstDone <- err
	}()
	<-started

	type result struct {
		row domain.ThreadRow
		err error
	}
	secondDone := make(chan result, 1)
	go func() {
		got, err := repo.GetThreadByID(context.Background(), "thread-123")
		secondDone <- result{got, err}
	}()
	// let the second caller join the in-flight load
	time.Sleep(50 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-firstDone, context.Canceled)

	close(release)
	second := <-secondDone
	require.NoError(t, second.err)
	assert.Equal(t, row, second.row)
	assert.NoError(t, loadErr)
	db.AssertNumberOfCalls(t, "GetThreadByID", 1)
}

func TestInitBloomFilter(t *testing.T) {
	t.Run("pages-through-all-ids", func(t *testing.T) {
		db, bloom := new(mocks.ThreadRepository), new(mocks.BloomRepository)
		first := make([]string, 1000)
		for i := range first {
			first[i] = "thread-a"
		}
		first[999] = "thread-m"
		db.On("FetchIDs", mock.Anything, "", 1000).Return(first, nil).Once()
		db.On("FetchIDs", mock.Anything, "thread-m", 1000).Return([]string{"thread-z"}, nil).Once()
		bloom.On("BulkAdd", mock.Anything, first).Return(nil).Once()
		bloom.On("BulkAdd", mock.Anything, []string{"thread-z"}).Return(nil).Once()
		bloom.On("MarkReady", mock.Anything).Return(nil).Once()

		repo := repository.NewThreadRepository(db, bloom)
		require.NoError(t, repo.InitBloomFilter(context.TODO()))
		db.AssertExpectations(t)
		bloom.AssertExpectations(t)
	})

	t.Run("failure-keeps-filter-bypassed", func(t *testing.T) {
		db, bloom := new(mocks.ThreadRepository), new(mocks.BloomRepository)
		db.On("FetchIDs", mock.Anything, "", 1000).Return(nil, errors.New("db down")).Once()
		db.On("VerifyAvailableThread", mock.Anything, "thread-123").Return(nil).Once()

		repo := repository.NewThreadRepository(db, bloom)
		assert.Error(t, repo.InitBloomFilter(context.TODO()))
		assert.NoError(t, repo.VerifyAvailableThread(context.TODO(), "thread-123"))
		bloom.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})

	t.Run("unmarked-filter-stays-bypassed", func(t *testing.T) {
		db, bloom := new(mocks.ThreadRepository), new(mocks.BloomRepository)
		db.On("FetchIDs", mock.Anything, "", 1000).Return([]string{}, nil).Once()
		bloom.On("MarkReady", mock.Anything).Return(errors.New("redis down")).Once()
		db.On("VerifyAvailableThread", mock.Anything, "thread-123").Return(nil).Once()

		repo := repository.NewThreadRepository(db, bloom)
		assert.Error(t, repo.InitBloomFilter(context.TODO()))
		assert.NoError(t, repo.VerifyAvailableThread(context.TODO(), "thread-123"))
		bloom.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})
}
