package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is one immutable entry in the seller's ledger. Rows are append-only:
// there is no update or delete path.
type Sale struct {
	BaseModel
	SellerID uuid.UUID `gorm:"type:uuid;not null;index" json:"seller_id"`
	Seller   *User     `gorm:"foreignKey:SellerID" json:"seller,omitempty"`

	ClientID uuid.UUID `gorm:"type:uuid;not null" json:"client_id"`
	Client   *Client   `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	// Null for free-text manual sales. "set null" on product deletion so the
	// ledger survives the catalogue.
	ProductID *uuid.UUID `gorm:"type:uuid;constraint:OnDelete:SET NULL" json:"product_id"`
	Product   *Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	// Defaults to the "General" category when no product is linked
	CategoryID uint      `gorm:"not null" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	Concept  string          `gorm:"type:varchar(255);not null" json:"concept"` // What was sold
	Amount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"` // Final sale price
	IsManual bool            `gorm:"default:false" json:"is_manual"`            // Operator-entered via the quick form
}
