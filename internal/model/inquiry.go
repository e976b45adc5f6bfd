package model

import (
	"time"
)

// Inquiry is a buyer inquiry submitted against a product. Append-only; the
// product_id deliberately carries no foreign key so inquiries survive product
// deletion as dangling references.
type Inquiry struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ProductID uint      `json:"product_id" gorm:"index"`
	BuyerName string    `json:"buyer_name" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"type:varchar(320);not null"`
	Country   string    `json:"country" gorm:"type:varchar(100);not null"`
	Quantity  string    `json:"quantity" gorm:"type:varchar(100);not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}
