package model

import (
	"time"
)

// Category represents a top-level product category shown on the home page
type Category struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null;unique"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product represents one catalog entry. Its specification, packaging and
// image rows are only ever created together with the product and are removed
// by the database when the product is deleted.
type Product struct {
	ID          uint     `json:"id" gorm:"primarykey"`
	CategoryID  uint     `json:"category_id" gorm:"index;not null"`
	Category    Category `json:"-"`
	Name        string   `json:"name" gorm:"type:varchar(255);not null"`
	Description string   `json:"description" gorm:"type:text"`
	Packaging   string   `json:"packaging" gorm:"type:text;comment:'Free-text packaging summary'"`
	MOQ         string   `json:"moq" gorm:"column:moq;type:varchar(100);comment:'Minimum order quantity, free text'"`

	Specifications []ProductSpecification `json:"specifications" gorm:"constraint:OnDelete:CASCADE"`
	PackagingRows  []ProductPackaging     `json:"packaging_rows" gorm:"constraint:OnDelete:CASCADE"`
	Images         []ProductImage         `json:"images" gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductSpecification is one name/value row of a product's spec table
type ProductSpecification struct {
	ID        uint   `json:"id" gorm:"primarykey"`
	ProductID uint   `json:"product_id" gorm:"index;not null"`
	SpecName  string `json:"spec_name" gorm:"type:varchar(255);not null"`
	SpecValue string `json:"spec_value" gorm:"type:varchar(255);not null"`
}

// ProductPackaging is one packaging option row. Container capacities are
// stored as submitted, empty strings included.
type ProductPackaging struct {
	ID             uint   `json:"id" gorm:"primarykey"`
	ProductID      uint   `json:"product_id" gorm:"index;not null"`
	PackagingType string `json:"packaging_type" gorm:"type:varchar(255);not null"`
	Weight        string `json:"weight" gorm:"type:varchar(100);not null"`
	Container20ft string `json:"container_20ft" gorm:"column:container_20ft;type:varchar(100)"`
	Container40ft string `json:"container_40ft" gorm:"column:container_40ft;type:varchar(100)"`
}

// ProductImage references an uploaded file by its sanitized name on disk,
// not the binary content
type ProductImage struct {
	ID        uint   `json:"id" gorm:"primarykey"`
	ProductID uint   `json:"product_id" gorm:"index;not null"`
	ImageName string `json:"image_name" gorm:"type:varchar(255);not null"`
}
