package product

import "time"

// Product status values as stored in the products table.
const (
	StatusFree     = "Free"
	StatusInUse    = "InUse"
	StatusReserved = "Reserved"
)

// Product represents a row in the products table.
type Product struct {
	ID        int64
	GroupID   int64
	Name      string
	Serial    string
	Status    string
	DateCode  *string
	DateText  *string
	CreatedAt time.Time
}
