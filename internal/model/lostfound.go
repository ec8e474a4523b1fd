package model

// LostFoundItem represents a lost or found report. Items are never deleted;
// the only lifecycle change is Open -> Resolved, triggered by the poster.
type LostFoundItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Status      string `json:"status"`
	PostedBy    string `json:"postedBy"`
	Contact     string `json:"contact"`
}

// Lost & found report types.
const (
	LostFoundLost  = "Lost"
	LostFoundFound = "Found"
)

// Lost & found statuses.
const (
	LostFoundOpen     = "Open"
	LostFoundResolved = "Resolved"
)

// RecordID implements the record store's id accessor.
func (i LostFoundItem) RecordID() string { return i.ID }
