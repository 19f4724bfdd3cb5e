package mysql

import (
	"context"
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/repository/mysql/model"
)

const (
	errDeadlock       = 1213
	toggleMaxAttempts = 3
)

type commentLikeRepository struct {
	DB    *gorm.DB
	idGen IDGenerator
}

var _ domain.CommentLikeRepository = (*commentLikeRepository)(nil)

func NewCommentLikeRepository(db *gorm.DB, idGen IDGenerator) *commentLikeRepository {
	return &commentLikeRepository{DB: db, idGen: idGen}
}

func (m *commentLikeRepository) AddLike(ctx context.Context, like domain.Like) error {
	return insertLike(m.DB.WithContext(ctx), m.idGen, like)
}

func (m *commentLikeRepository) DeleteLike(ctx context.Context, like domain.Like) error {
	return m.DB.WithContext(ctx).
		Where("comment = ? AND owner = ?", like.CommentID, like.Owner).
		Delete(&model.CommentLike{}).Error
}

func (m *commentLikeRepository) VerifyUserCommentLike(ctx context.Context, like domain.Like) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("comment = ? AND owner = ?", like.CommentID, like.Owner).
		Count(&count).Error
	return count > 0, err
}

func (m *commentLikeRepository) GetLikesByThreadID(ctx context.Context, threadID string) ([]domain.LikeRow, error) {
	var likes []model.CommentLike
	err := m.DB.WithContext(ctx).
		Table("user_comment_likes").
		Select("user_comment_likes.id, user_comment_likes.comment, user_comment_likes.owner").
		Joins("JOIN comments ON comments.id = user_comment_likes.comment").
		Where("comments.thread = ?", threadID).
		Scan(&likes).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.LikeRow, len(likes))
	for i := range likes {
		res[i] = likes[i].ToDomain()
	}
	return res, nil
}

// ToggleLike deletes the (comment, owner) row and inserts it only when there
// was nothing to delete. Both statements are single-row and idempotent under
// the unique index: racing first likes all end up liked, with one row.
// InnoDB may still pick one of them as a deadlock victim, which is retried.
func (m *commentLikeRepository) ToggleLike(ctx context.Context, like domain.Like) (liked bool, err error) {
	for attempt := 1; ; attempt++ {
		liked, err = m.toggleLike(ctx, like)
		if !isDeadlock(err) || attempt == toggleMaxAttempts {
			return liked, err
		}
		logrus.Warnf("like toggle on comment %s hit a deadlock (attempt %d/%d)", like.CommentID, attempt, toggleMaxAttempts)
	}
}

func (m *commentLikeRepository) toggleLike(ctx context.Context, like domain.Like) (bool, error) {
	db := m.DB.WithContext(ctx)
	result := db.
		Where("comment = ? AND owner = ?", like.CommentID, like.Owner).
		Delete(&model.CommentLike{})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return false, nil
	}

	err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(model.NewCommentLikeFromDomain(m.idGen.next("like"), like)).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

func insertLike(db *gorm.DB, idGen IDGenerator, like domain.Like) error {
	return db.Create(model.NewCommentLikeFromDomain(idGen.next("like"), like)).Error
}

func isDeadlock(err error) bool {
	var mysqlErr *mysqldriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == errDeadlock
}
