package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/repository/mysql/model"
)

const replySelect = "replies.id, replies.content, replies.date, replies.comment, replies.owner, replies.is_delete, users.username"

type replyRepository struct {
	DB    *gorm.DB
	idGen IDGenerator
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB, idGen IDGenerator) *replyRepository {
	return &replyRepository{DB: db, idGen: idGen}
}

func (r *replyRepository) AddReply(ctx context.Context, userID, commentID string, nr domain.NewReply) (domain.AddedReply, error) {
	replyModel := model.NewReplyFromDomain(r.idGen.next("reply"), userID, commentID, nr, time.Now())
	if err := r.DB.WithContext(ctx).Create(replyModel).Error; err != nil {
		return domain.AddedReply{}, err
	}
	return replyModel.ToAdded(), nil
}

func (r *replyRepository) CheckReplyAvailability(ctx context.Context, replyID, commentID string) (domain.ReplyRow, error) {
	var reply model.Reply
	err := r.DB.WithContext(ctx).
		Select("id", "comment", "owner", "is_delete").
		Where("id = ?", replyID).
		Take(&reply).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ReplyRow{}, domain.NewNotFoundError("reply not found")
	}
	if err != nil {
		return domain.ReplyRow{}, err
	}
	if reply.IsDelete {
		return domain.ReplyRow{}, domain.NewNotFoundError("reply invalid")
	}
	if reply.CommentID != commentID {
		return domain.ReplyRow{}, domain.NewNotFoundError("reply in comment invalid")
	}
	return reply.ToDomain(), nil
}

func (r *replyRepository) VerifyReplyOwner(ctx context.Context, replyID, userID string) error {
	var reply model.Reply
	err := r.DB.WithContext(ctx).Select("owner").Where("id = ?", replyID).Take(&reply).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewNotFoundError("reply not found")
	}
	if err != nil {
		return err
	}
	if reply.Owner != userID {
		return domain.NewAuthorizationError("user not authorized")
	}
	return nil
}

func (r *replyRepository) DeleteReplyByID(ctx context.Context, replyID string) error {
	result := r.DB.WithContext(ctx).Model(&model.Reply{}).Where("id = ?", replyID).Update("is_delete", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("reply not found")
	}
	return nil
}

func (r *replyRepository) GetRepliesByCommentID(ctx context.Context, commentID string) ([]domain.ReplyRow, error) {
	var rows []model.ReplyWithUsername
	err := r.DB.WithContext(ctx).
		Table("replies").
		Select(replySelect).
		Joins("JOIN users ON users.id = replies.owner").
		Where("replies.comment = ?", commentID).
		Order("replies.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toReplyRows(rows), nil
}

// GetRepliesByThreadID leaves out the replies of deleted comments.
func (r *replyRepository) GetRepliesByThreadID(ctx context.Context, threadID string) ([]domain.ReplyRow, error) {
	var rows []model.ReplyWithUsername
	err := r.DB.WithContext(ctx).
		Table("replies").
		Select(replySelect).
		Joins("JOIN users ON users.id = replies.owner").
		Joins("JOIN comments ON comments.id = replies.comment").
		Where("comments.thread = ? AND comments.is_delete = ?", threadID, false).
		Order("replies.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toReplyRows(rows), nil
}

func toReplyRows(rows []model.ReplyWithUsername) []domain.ReplyRow {
	res := make([]domain.ReplyRow, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res
}
