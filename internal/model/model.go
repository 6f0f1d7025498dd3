package model

type User struct {
	ID    int32  `gorm:"primaryKey"           json:"id"`
	Name  string `gorm:"not null"             json:"name"`
	Email string `gorm:"not null;uniqueIndex" json:"email"`
}
