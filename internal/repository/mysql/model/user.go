package model

// User is only read by the forum, to resolve owner ids to usernames.
type User struct {
	ID       string `gorm:"primaryKey;type:varchar(50)"`
	Username string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Password string `gorm:"type:text;not null"`
	Fullname string `gorm:"type:text;not null"`
}

func (User) TableName() string {
	return "users"
}
