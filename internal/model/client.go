package model

import "github.com/google/uuid"

// Client is a customer record owned by one seller. Created lazily the first
// time a sale references a new customer name (find-or-create).
type Client struct {
	BaseModel
	SellerID uuid.UUID `gorm:"type:uuid;not null;index:idx_clients_seller_name" json:"seller_id"`
	Seller   *User     `gorm:"foreignKey:SellerID" json:"seller,omitempty"`

	Name    string `gorm:"type:varchar(255);not null;index:idx_clients_seller_name" json:"name"`
	Email   string `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone   string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address string `gorm:"type:text" json:"address,omitempty"`
	Notes   string `gorm:"type:text" json:"notes,omitempty"` // Preferences, sizes, etc.

	// Set when the customer also holds an account in the system
	UserID *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
	User   *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
