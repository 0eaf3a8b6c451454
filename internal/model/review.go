package model

import "github.com/google/uuid"

// Review is an immutable rating+comment tied to a product and user.
// Aggregates (average, count) are derived at query time.
type Review struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`

	Rating  int    `gorm:"not null" json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `gorm:"type:varchar(500);not null" json:"comment" validate:"required,max=500"`
}
