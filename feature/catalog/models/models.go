package models

import (
	"gorm.io/gorm"
)

// Product is a catalog entry. It owns its options exclusively and shares tags
// with the rest of the catalog through a join table.
type Product struct {
	ID      uint            `gorm:"primaryKey" json:"pk"`
	Name    string          `gorm:"type:varchar(255);not null" json:"name"`
	Options []ProductOption `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"option_set"`
	Tags    []Tag           `gorm:"many2many:product_tags" json:"tag_set"`
}

// TableName overrides the table name.
func (Product) TableName() string {
	return "products"
}

// ProductOption is a priced variant belonging to exactly one product.
// Name and Price are nullable: payload entries may omit either and the row
// stores NULL rather than a default.
type ProductOption struct {
	ID        uint    `gorm:"primaryKey" json:"pk"`
	ProductID uint    `gorm:"index;not null" json:"-"`
	Name      *string `gorm:"type:varchar(255)" json:"name"`
	Price     *int64  `json:"price"`
}

// TableName overrides the table name.
func (ProductOption) TableName() string {
	return "product_options"
}

// Tag is a shared label. Name is the natural key: the unique index backs the
// find-or-create resolution so two tags with the same name can never exist.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"pk"`
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
}

// TableName overrides the table name.
func (Tag) TableName() string {
	return "tags"
}

// Migrate applies the catalog schema, including the product_tags join table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Product{}, &ProductOption{}, &Tag{})
}
