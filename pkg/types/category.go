package types

// Category is a document class label from the fixed label set.
type Category string

const (
	CategoryInvoice     Category = "Invoice"
	CategoryResume      Category = "Resume"
	CategoryUtilityBill Category = "Utility Bill"
	CategoryOther       Category = "Other"

	// CategoryUnclassifiable marks documents whose text could not be read at
	// all. It is assigned by the processing pipeline, never by the classifier:
	// a readable document that matches no content category is CategoryOther.
	CategoryUnclassifiable Category = "Unclassifiable"
)

// ContentCategories returns the closed set of labels the classifier can emit.
func ContentCategories() []Category {
	return []Category{
		CategoryInvoice,
		CategoryResume,
		CategoryUtilityBill,
		CategoryOther,
	}
}

// Valid reports whether c is one of the known labels, including the
// ingestion-failure sentinel.
func (c Category) Valid() bool {
	switch c {
	case CategoryInvoice, CategoryResume, CategoryUtilityBill, CategoryOther, CategoryUnclassifiable:
		return true
	default:
		return false
	}
}

// ParseCategory maps a label string to a Category.
// Unknown strings map to (CategoryOther, false).
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	if c.Valid() {
		return c, true
	}
	return CategoryOther, false
}
