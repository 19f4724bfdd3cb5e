package model

import (
	"github.com/Guyuepp/go-clean-forum/domain"
)

type CommentLike struct {
	ID        string `gorm:"primaryKey;type:varchar(50)"`
	CommentID string `gorm:"column:comment;type:varchar(50);not null;uniqueIndex:idx_comment_owner"`
	Owner     string `gorm:"type:varchar(50);not null;uniqueIndex:idx_comment_owner"`

	Comment *Comment `gorm:"foreignKey:CommentID;references:ID;constraint:OnDelete:CASCADE"`
}

func (CommentLike) TableName() string {
	return "user_comment_likes"
}

func NewCommentLikeFromDomain(id string, l domain.Like) *CommentLike {
	return &CommentLike{
		ID:        id,
		CommentID: l.CommentID,
		Owner:     l.Owner,
	}
}

func (m *CommentLike) ToDomain() domain.LikeRow {
	return domain.LikeRow{
		ID:        m.ID,
		CommentID: m.CommentID,
		Owner:     m.Owner,
	}
}
