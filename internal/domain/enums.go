package domain

// Category represents the fixed set of recipe categories.
// Values match what the mobile client sends ("side-dish" included).
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
	CategoryDessert   Category = "dessert"
	CategorySideDish  Category = "side-dish"
	CategorySnack     Category = "snack"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner,
		CategoryDessert, CategorySideDish, CategorySnack:
		return true
	}
	return false
}

// Categories returns all valid categories in display order.
func Categories() []Category {
	return []Category{
		CategoryBreakfast,
		CategoryLunch,
		CategoryDinner,
		CategoryDessert,
		CategorySideDish,
		CategorySnack,
	}
}
