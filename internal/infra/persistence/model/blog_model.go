package model

import "time"

// BlogModel mirrors the 'blogs' table.
type BlogModel struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	AuthorID         int64  `gorm:"not null;index"`
	Title            string `gorm:"type:varchar(50);not null"`
	ChiefDescription string `gorm:"type:varchar(240);not null"`
	Content          string `gorm:"type:text;not null"`
	CreatedAt        time.Time
	ModifiedAt       *time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlogModel) TableName() string {
	return "blogs"
}

// BlogWithAuthorRow is the scan target for blog reads joined with users.
type BlogWithAuthorRow struct {
	BlogModel
	AuthorUsername string
}
