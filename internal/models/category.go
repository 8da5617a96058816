package models

// Spending category labels assigned by the categorization stage.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryGroceries     = "Groceries"
	CategorySalary        = "Salary"
	CategoryRent          = "Rent"
	CategoryUtilities     = "Utilities"
	CategoryEntertainment = "Entertainment"
	CategoryOthers        = "Others"
)

// AllCategories returns every valid category label, fallback last.
func AllCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryGroceries,
		CategorySalary,
		CategoryRent,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryOthers,
	}
}

// IsValidCategory checks whether label is a known category.
func IsValidCategory(label string) bool {
	for _, c := range AllCategories() {
		if c == label {
			return true
		}
	}
	return false
}
