package model

// Category is static reference data for grouping products
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

// GeneralCategoryName is the pre-seeded fallback category. Manual sales with
// no linked product are recorded against it.
const GeneralCategoryName = "General"

// DefaultCategories seeds the catalogue filters. "General" must be first so
// it exists before any manual sale is recorded.
var DefaultCategories = []string{
	GeneralCategoryName,
	"T-Shirts",
	"Pants",
	"Dresses",
	"Shoes",
	"Accessories",
	"Jackets",
	"Sportswear",
	"Formal",
	"Swimwear",
}
