package model

import (
	"time"

	"github.com/Guyuepp/go-clean-forum/domain"
)

type Comment struct {
	ID       string    `gorm:"primaryKey;type:varchar(50)"`
	Content  string    `gorm:"type:text;not null"`
	ThreadID string    `gorm:"column:thread;type:varchar(50);not null;index"`
	Owner    string    `gorm:"type:varchar(50);not null"`
	Date     time.Time `gorm:"type:datetime(3);not null"`
	IsDelete bool      `gorm:"column:is_delete;not null"`

	Thread *Thread `gorm:"foreignKey:ThreadID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(id, owner, threadID string, nc domain.NewComment, date time.Time) *Comment {
	return &Comment{
		ID:       id,
		Content:  nc.Content,
		ThreadID: threadID,
		Owner:    owner,
		Date:     date,
		IsDelete: false,
	}
}

func (m *Comment) ToAdded() domain.AddedComment {
	return domain.AddedComment{
		ID:      m.ID,
		Content: m.Content,
		Owner:   m.Owner,
	}
}

func (m *Comment) ToDomain() domain.CommentRow {
	return domain.CommentRow{
		ID:       m.ID,
		ThreadID: m.ThreadID,
		Content:  m.Content,
		Owner:    m.Owner,
		Date:     m.Date,
		Status:   domain.StatusFromDeleted(m.IsDelete),
	}
}

// CommentWithUsername is a comment joined with its owner.
type CommentWithUsername struct {
	ID       string
	ThreadID string `gorm:"column:thread"`
	Content  string
	Owner    string
	Date     time.Time
	IsDelete bool `gorm:"column:is_delete"`
	Username string
}

func (m *CommentWithUsername) ToDomain() domain.CommentRow {
	return domain.CommentRow{
		ID:       m.ID,
		ThreadID: m.ThreadID,
		Content:  m.Content,
		Owner:    m.Owner,
		Username: m.Username,
		Date:     m.Date,
		Status:   domain.StatusFromDeleted(m.IsDelete),
	}
}
