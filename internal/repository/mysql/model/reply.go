package model

import (
	"time"

	"github.com/Guyuepp/go-clean-forum/domain"
)

type Reply struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Content   string    `gorm:"type:text;not null"`
	Date      time.Time `gorm:"type:datetime(3);not null"`
	CommentID string    `gorm:"column:comment;type:varchar(50);not null;index"`
	Owner     string    `gorm:"type:varchar(50);not null"`
	IsDelete  bool      `gorm:"column:is_delete;not null"`

	Comment *Comment `gorm:"foreignKey:CommentID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Reply) TableName() string {
	return "replies"
}

func NewReplyFromDomain(id, owner, commentID string, nr domain.NewReply, date time.Time) *Reply {
	return &Reply{
		ID:        id,
		Content:   nr.Content,
		Date:      date,
		CommentID: commentID,
		Owner:     owner,
		IsDelete:  false,
	}
}

func (m *Reply) ToAdded() domain.AddedReply {
	return domain.AddedReply{
		ID:      m.ID,
		Content: m.Content,
		Owner:   m.Owner,
	}
}

func (m *Reply) ToDomain() domain.ReplyRow {
	return domain.ReplyRow{
		ID:        m.ID,
		CommentID: m.CommentID,
		Content:   m.Content,
		Owner:     m.Owner,
		Date:      m.Date,
		Status:    domain.StatusFromDeleted(m.IsDelete),
	}
}

// ReplyWithUsername is a reply joined with its owner.
type ReplyWithUsername struct {
	ID        string
	Content   string
	Date      time.Time
	CommentID string `gorm:"column:comment"`
	Owner     string
	IsDelete  bool `gorm:"column:is_delete"`
	Username  string
}

func (m *ReplyWithUsername) ToDomain() domain.ReplyRow {
	return domain.ReplyRow{
		ID:        m.ID,
		CommentID: m.CommentID,
		Content:   m.Content,
		Owner:     m.Owner,
		Username:  m.Username,
		Date:      m.Date,
		Status:    domain.StatusFromDeleted(m.IsDelete),
	}
}
