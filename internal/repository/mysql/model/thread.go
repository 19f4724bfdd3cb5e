package model

import (
	"time"

	"github.com/Guyuepp/go-clean-forum/domain"
)

type Thread struct {
	ID    string    `gorm:"primaryKey;type:varchar(50)"`
	Title string    `gorm:"type:text;not null"`
	Body  string    `gorm:"type:text;not null"`
	Date  time.Time `gorm:"type:datetime(3);not null"`
	Owner string    `gorm:"type:varchar(50);not null;index"`
}

func (Thread) TableName() string {
	return "threads"
}

func NewThreadFromDomain(id, owner string, nt domain.NewThread, date time.Time) *Thread {
	return &Thread{
		ID:    id,
		Title: nt.Title,
		Body:  nt.Body,
		Date:  date,
		Owner: owner,
	}
}

func (m *Thread) ToAdded() domain.AddedThread {
	return domain.AddedThread{
		ID:    m.ID,
		Title: m.Title,
		Owner: m.Owner,
	}
}

// ThreadWithUsername is a thread joined with its owner.
type ThreadWithUsername struct {
	ID       string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

func (m *ThreadWithUsername) ToDomain() domain.ThreadRow {
	return domain.ThreadRow{
		ID:       m.ID,
		Title:    m.Title,
		Body:     m.Body,
		Date:     m.Date,
		Username: m.Username,
	}
}
