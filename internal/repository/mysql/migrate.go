package mysql

import (
	"gorm.io/gorm"

	"github.com/Guyuepp/go-clean-forum/internal/repository/mysql/model"
)

// AutoMigrate creates the forum tables with their foreign keys and the
// (comment, owner) unique index on likes.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Thread{},
		&model.Comment{},
		&model.Reply{},
		&model.CommentLike{},
	)
}
