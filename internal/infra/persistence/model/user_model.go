// Package model holds the GORM persistence models. They mirror the tables
// created by the embedded migrations and never leave the infra layer.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(32);uniqueIndex:users_username_key;not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex:users_email_key;not null"`
	AvatarURL    string `gorm:"type:varchar(255);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
