package model

import (
	"time"
)

// Admin is an administrator account. Rows are seeded at startup; no HTTP
// route creates or modifies admins.
type Admin struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Username  string    `json:"username" gorm:"type:varchar(100);unique;not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null;comment:'bcrypt hash'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
