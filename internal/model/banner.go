package model

// Banner is a hero image on the landing page, managed from the admin panel
type Banner struct {
	BaseModel
	ImageURL string `gorm:"type:varchar(512);not null" json:"image_url"`
	Title    string `gorm:"type:varchar(100)" json:"title,omitempty"`
	Order    int    `gorm:"column:display_order;default:0" json:"order"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}
