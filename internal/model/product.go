package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Condition is the physical state of a listed product
type Condition string

const (
	ConditionNew    Condition = "new"
	ConditionGood   Condition = "good"
	ConditionUsed   Condition = "used"
	ConditionFlawed Condition = "flawed"
)

// Product is a catalogue listing owned by a seller.
// Invariants: stock >= 0, sold_count only increases.
type Product struct {
	BaseModel
	SellerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"seller_id" validate:"uuid_required"`
	Seller     *User     `gorm:"foreignKey:SellerID" json:"seller,omitempty" validate:"-"`
	CategoryID uint      `gorm:"not null;index" json:"category_id" validate:"required"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty" validate:"-"`

	Name        string          `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       int             `gorm:"not null;default:0" json:"stock" validate:"gte=0"`
	SoldCount   int             `gorm:"not null;default:0" json:"sold_count"`
	Condition   Condition       `gorm:"type:varchar(10);not null" json:"condition" validate:"required,oneof=new good used flawed"`

	ImageURL string         `gorm:"type:varchar(512)" json:"image_url"` // Main photo
	Images   []ProductImage `json:"images,omitempty" validate:"-"`      // Gallery

	IsActive bool `gorm:"default:true" json:"is_active"`
	// Set when the last unit sells, cleared when the seller restocks.
	// Public catalogue queries exclude sold-out listings.
	IsSold bool `gorm:"default:false" json:"is_sold"`

	// Derived from reviews at query time, never stored
	ReviewsAvgRating float64 `gorm:"->;-:migration" json:"reviews_avg_rating"`
	ReviewsCount     int64   `gorm:"->;-:migration" json:"reviews_count"`
}

// ProductImage is one gallery photo attached to a product
type ProductImage struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	ImageURL  string    `gorm:"type:varchar(512);not null" json:"image_url"`
}
