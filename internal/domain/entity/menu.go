package entity

// MealCategory identifies a meal slot in the catalog. The numeric values
// are the food-type identifiers the marketplace API expects.
type MealCategory int

const (
	CategoryBreakfast MealCategory = 1
	CategoryLunch     MealCategory = 2
	CategoryDinner    MealCategory = 3
)

// String returns the display name of the category.
func (c MealCategory) String() string {
	switch c {
	case CategoryBreakfast:
		return "Breakfast"
	case CategoryLunch:
		return "Lunch"
	case CategoryDinner:
		return "Dinner"
	default:
		return ""
	}
}

// CategoryFromName maps a display name onto a category. The boolean is
// false for anything that is not a known category, which callers treat as
// "all categories".
func CategoryFromName(name string) (MealCategory, bool) {
	switch name {
	case "Breakfast":
		return CategoryBreakfast, true
	case "Lunch":
		return CategoryLunch, true
	case "Dinner":
		return CategoryDinner, true
	default:
		return 0, false
	}
}

// CatalogFilter is the user-chosen listing filter. A nil Category means
// all categories; Pincode is free text and may be empty.
type CatalogFilter struct {
	Category *MealCategory
	Pincode  string
}

// MenuService is one food service offer in the catalog listing. The client
// holds only the latest fetched snapshot of these; there is no local
// identity beyond the remote source.
type MenuService struct {
	ID          int64
	Name        string
	Restaurant  string
	Location    string
	Area        string
	Pincode     string
	Description string
	Price       float64
	Rating      float64 // 0 to 5.
}
