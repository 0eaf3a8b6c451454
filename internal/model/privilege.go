package model

// Privilege represents a permission that can be assigned to roles
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "product:manage"
	Name string `gorm:"type:varchar(100)" json:"name"`                     // e.g., "Manage Products"
}

// Default privileges for the system
var DefaultPrivileges = []Privilege{
	// Seller panel
	{Code: "product:manage", Name: "Manage Own Products"},
	{Code: "sale:create", Name: "Record Sale"},
	{Code: "sale:view", Name: "View Own Sales"},
	{Code: "dashboard:view", Name: "View Dashboard"},
	// Customer actions
	{Code: "review:create", Name: "Submit Review"},
	// Site configuration (ADMIN only)
	{Code: "banner:manage", Name: "Manage Banners"},
}
