package domain

import "time"

type BrowseEventKind string

const (
	ProductListViewed BrowseEventKind = "product_list_viewed"
	ProductViewed     BrowseEventKind = "product_viewed"
)

// A BrowseEvent records one rendered screen. ProductID is set for
// [ProductViewed], Filter and Results for [ProductListViewed].
type BrowseEvent struct {
	ID         string
	Kind       BrowseEventKind
	ProductID  int
	Category   string
	Filter     CategoryFilter
	Results    int
	OccurredAt time.Time
}
