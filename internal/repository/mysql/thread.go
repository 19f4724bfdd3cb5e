package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/repository/mysql/model"
)

type threadRepository struct {
	DB    *gorm.DB
	idGen IDGenerator
}

// the mysql layer only talks to the database
var _ domain.ThreadDBRepository = (*threadRepository)(nil)

func NewThreadDBRepository(db *gorm.DB, idGen IDGenerator) *threadRepository {
	return &threadRepository{DB: db, idGen: idGen}
}

func (m *threadRepository) AddThread(ctx context.Context, userID string, nt domain.NewThread) (domain.AddedThread, error) {
	threadModel := model.NewThreadFromDomain(m.idGen.next("thread"), userID, nt, time.Now())
	if err := m.DB.WithContext(ctx).Create(threadModel).Error; err != nil {
		return domain.AddedThread{}, err
	}
	return threadModel.ToAdded(), nil
}

func (m *threadRepository) VerifyAvailableThread(ctx context.Context, threadID string) error {
	var thread model.Thread
	err := m.DB.WithContext(ctx).Select("id").Where("id = ?", threadID).Take(&thread).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewNotFoundError("thread not found")
	}
	return err
}

func (m *threadRepository) GetThreadByID(ctx context.Context, threadID string) (domain.ThreadRow, error) {
	var row model.ThreadWithUsername
	err := m.DB.WithContext(ctx).
		Table("threads").
		Select("threads.id, threads.title, threads.body, threads.date, users.username").
		Joins("JOIN users ON users.id = threads.owner").
		Where("threads.id = ?", threadID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ThreadRow{}, domain.NewNotFoundError("thread not found")
	}
	if err != nil {
		return domain.ThreadRow{}, err
	}
	return row.ToDomain(), nil
}

func (m *threadRepository) FetchIDs(ctx context.Context, cursor string, limit int) (ids []string, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Thread{}).
		Where("id > ?", cursor).
		Order("id").
		Limit(limit).
		Pluck("id", &ids).Error
	return
}
