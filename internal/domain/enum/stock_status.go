package enum

// StockStatus is the derived inventory state of a medicine. It is never
// persisted; list and detail responses compute it from quantity, reorder
// level and expiry date.
type StockStatus string

const (
	StockStatusExpired    StockStatus = "Expired"
	StockStatusOutOfStock StockStatus = "Out of Stock"
	StockStatusCritical   StockStatus = "Critical"
	StockStatusExpiring   StockStatus = "Expiring Soon"
	StockStatusLowStock   StockStatus = "Low Stock"
	StockStatusInStock    StockStatus = "In Stock"
)

func (s StockStatus) String() string {
	return string(s)
}
