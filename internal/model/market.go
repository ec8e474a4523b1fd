package model

// MarketItem represents a marketplace listing. The only lifecycle change is
// Available -> Sold, triggered by the seller.
type MarketItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	SellerID    string  `json:"sellerId"`
	SellerName  string  `json:"sellerName"`
	Status      string  `json:"status"`
	Date        string  `json:"date"`
}

// Market statuses.
const (
	MarketAvailable = "Available"
	MarketSold      = "Sold"
)

// RecordID implements the record store's id accessor.
func (i MarketItem) RecordID() string { return i.ID }
