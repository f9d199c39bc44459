package domain

type Availability int

const (
	Available Availability = iota
	SoldOut
)

const soldOutBadge = "Sold Out"

// ClassifyAvailability is derived from stock on every call, anything not
// strictly positive is sold out.
func ClassifyAvailability(stock int) Availability {
	if stock > 0 {
		return Available
	}
	return SoldOut
}

// Badge is empty for available products.
func (a Availability) Badge() string {
	if a == SoldOut {
		return soldOutBadge
	}
	return ""
}

func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	case SoldOut:
		return "sold_out"
	default:
		return "unknown"
	}
}
