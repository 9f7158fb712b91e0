package core

import "strings"

// Category labels an expense. The canonical set below mirrors the category
// selector in the spreadsheet UI; entries read back from the sheet may carry
// labels outside this set (manual edits) and those are preserved verbatim.
type Category string

const (
	CategoryFood                Category = "Food"
	CategoryTransport           Category = "Transport"
	CategoryShopping            Category = "Shopping"
	CategorySightseeing         Category = "Sightseeing"
	CategoryMortgage            Category = "Mortgage"
	CategoryCar                 Category = "Car"
	CategoryWater               Category = "Water"
	CategoryElectricity         Category = "Electricity"
	CategoryCarInsurance        Category = "Car Insurance"
	CategoryMotorcycleInsurance Category = "Motorcycle Insurance"
	CategoryPet                 Category = "Pet"
	CategoryGifts               Category = "Gifts"
)

// DefaultCategory is the fallback used when a draft suggestion carries no
// usable category. It is also the first entry of the selector.
const DefaultCategory = CategoryFood

// Categories returns the canonical ordered category list.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategorySightseeing,
		CategoryMortgage,
		CategoryCar,
		CategoryWater,
		CategoryElectricity,
		CategoryCarInsurance,
		CategoryMotorcycleInsurance,
		CategoryPet,
		CategoryGifts,
	}
}

// IsValid reports whether c is one of the canonical categories.
// Matching is case-insensitive and ignores surrounding whitespace.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if strings.EqualFold(strings.TrimSpace(string(c)), string(known)) {
			return true
		}
	}
	return false
}

// Canonical returns the canonical spelling for c when it matches a known
// category, and c unchanged otherwise.
func (c Category) Canonical() Category {
	for _, known := range Categories() {
		if strings.EqualFold(strings.TrimSpace(string(c)), string(known)) {
			return known
		}
	}
	return c
}

func (c Category) String() string {
	return string(c)
}
