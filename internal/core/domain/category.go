package domain

// AllCategoriesLabel is the synthetic first entry of every category list.
// It is a label only, selecting it yields [AllCategories].
const AllCategoriesLabel = "All"

type filterKind int

const (
	filterUnfiltered filterKind = iota
	filterAll
	filterCategory
)

// A CategoryFilter is the product list selector. The zero value is
// [Unfiltered].
//
// "Nothing chosen yet" and "All chosen" filter identically but stay
// distinguishable through [CategoryFilter.IsSelected].
type CategoryFilter struct {
	kind     filterKind
	category string
}

func Unfiltered() CategoryFilter {
	return CategoryFilter{kind: filterUnfiltered}
}

func AllCategories() CategoryFilter {
	return CategoryFilter{kind: filterAll}
}

// ByCategory matches products whose category equals name exactly,
// including a real category named "All".
func ByCategory(name string) CategoryFilter {
	return CategoryFilter{kind: filterCategory, category: name}
}

// IsSelected reports whether a selection was ever made.
func (f CategoryFilter) IsSelected() bool {
	return f.kind != filterUnfiltered
}

// IsAll reports whether the "All" entry was chosen.
func (f CategoryFilter) IsAll() bool {
	return f.kind == filterAll
}

// Category returns the selected category name, ok is false unless the
// filter was built by [ByCategory].
func (f CategoryFilter) Category() (name string, ok bool) {
	return f.category, f.kind == filterCategory
}

// Select moves the filter to next. Once something is selected the filter
// never goes back to unfiltered, so selecting [Unfiltered] keeps f.
func (f CategoryFilter) Select(next CategoryFilter) CategoryFilter {
	if !next.IsSelected() {
		return f
	}
	return next
}

func (f CategoryFilter) String() string {
	switch f.kind {
	case filterAll:
		return "all"
	case filterCategory:
		return "category:" + f.category
	default:
		return "unfiltered"
	}
}

type CategoryOption struct {
	Label  string
	Filter CategoryFilter
}

// ExtractCategories returns "All" followed by the distinct product
// categories in first-seen order.
func ExtractCategories(ps []Product) []string {
	categories := make([]string, 0, len(ps)+1)
	categories = append(categories, AllCategoriesLabel)

	seen := make(map[string]struct{}, len(ps))
	for _, p := range ps {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

// CategoryOptions pairs every label of [ExtractCategories] with the filter
// it selects.
func CategoryOptions(ps []Product) []CategoryOption {
	labels := ExtractCategories(ps)
	options := make([]CategoryOption, len(labels))
	options[0] = CategoryOption{Label: labels[0], Filter: AllCategories()}
	for i := 1; i < len(labels); i++ {
		options[i] = CategoryOption{Label: labels[i], Filter: ByCategory(labels[i])}
	}
	return options
}

// FilterByCategory keeps the relative order of ps. Unfiltered and "All"
// return ps itself.
func FilterByCategory(ps []Product, f CategoryFilter) []Product {
	name, ok := f.Category()
	if !ok {
		return ps
	}

	filtered := make([]Product, 0, len(ps))
	for _, p := range ps {
		if p.Category == name {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
