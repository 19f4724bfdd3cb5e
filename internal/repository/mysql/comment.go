package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/repository/mysql/model"
)

type commentRepository struct {
	DB    *gorm.DB
	idGen IDGenerator
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB, idGen IDGenerator) *commentRepository {
	return &commentRepository{DB: db, idGen: idGen}
}

func (c *commentRepository) AddComment(ctx context.Context, userID, threadID string, nc domain.NewComment) (domain.AddedComment, error) {
	commentModel := model.NewCommentFromDomain(c.idGen.next("comment"), userID, threadID, nc, time.Now())
	if err := c.DB.WithContext(ctx).Create(commentModel).Error; err != nil {
		return domain.AddedComment{}, err
	}
	return commentModel.ToAdded(), nil
}

func (c *commentRepository) CheckCommentAvailability(ctx context.Context, commentID, threadID string) (domain.CommentRow, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).
		Select("id", "thread", "owner", "is_delete").
		Where("id = ? AND thread = ?", commentID, threadID).
		Take(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CommentRow{}, domain.NewNotFoundError("comment not found")
	}
	if err != nil {
		return domain.CommentRow{}, err
	}
	if comment.IsDelete {
		return domain.CommentRow{}, domain.NewNotFoundError("comment invalid")
	}
	return comment.ToDomain(), nil
}

func (c *commentRepository) VerifyCommentOwner(ctx context.Context, commentID, userID string) error {
	var comment model.Comment
	err := c.DB.WithContext(ctx).Select("owner").Where("id = ?", commentID).Take(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewNotFoundError("comment not found")
	}
	if err != nil {
		return err
	}
	if comment.Owner != userID {
		return domain.NewAuthorizationError("you are not authorized to access this resource")
	}
	return nil
}

func (c *commentRepository) DeleteCommentByID(ctx context.Context, commentID string) error {
	result := c.DB.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", commentID).Update("is_delete", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("comment not found")
	}
	return nil
}

func (c *commentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.CommentRow, error) {
	var rows []model.CommentWithUsername
	err := c.DB.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.thread, comments.content, comments.owner, comments.date, comments.is_delete, users.username").
		Joins("JOIN users ON users.id = comments.owner").
		Where("comments.thread = ?", threadID).
		Order("comments.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.CommentRow, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}
