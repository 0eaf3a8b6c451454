package model

// Role represents user roles in the system
type Role struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Code        string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // ADMIN, SELLER
	Name        string      `gorm:"type:varchar(100)" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	Privileges  []Privilege `gorm:"many2many:role_privileges;" json:"privileges,omitempty"`
}

// Role codes as constants
const (
	RoleAdmin  = "ADMIN"
	RoleSeller = "SELLER"
)

// DefaultRoles defines the default roles in the system.
// Site administration is a role, not a magic user id: the ADMIN role is the
// only one that carries banner:manage.
var DefaultRoles = []Role{
	{
		Code:        RoleAdmin,
		Name:        "Site Administrator",
		Description: "Full access including site configuration (banners)",
	},
	{
		Code:        RoleSeller,
		Name:        "Seller",
		Description: "Regular account: can buy, review, list products and record sales",
	},
}
