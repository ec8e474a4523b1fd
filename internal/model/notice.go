package model

import "time"

// Notice represents a notice board posting. ExpiryDate is stored but never
// used to hide a notice; expired postings stay listed.
type Notice struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	PostedBy   string `json:"postedBy"`
	Date       string `json:"date"`
	ExpiryDate string `json:"expiryDate"`
	Priority   string `json:"priority"`
}

// Notice categories.
const (
	NoticeEvent          = "Event"
	NoticeAcademic       = "Academic"
	NoticeAdministrative = "Administrative"
	NoticeEmergency      = "Emergency"
)

// Notice priorities.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// NoticeCategories lists the valid categories in display order.
var NoticeCategories = []string{NoticeAcademic, NoticeEvent, NoticeAdministrative, NoticeEmergency}

// ValidNoticeCategory reports whether category is one of the known categories.
func ValidNoticeCategory(category string) bool {
	for _, c := range NoticeCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Expired reports whether the notice's expiry date lies before now. A
// missing or malformed expiry date counts as not expired.
func (n Notice) Expired(now time.Time) bool {
	if n.ExpiryDate == "" {
		return false
	}
	expiry, err := time.Parse(time.RFC3339, n.ExpiryDate)
	if err != nil {
		// The seed data uses plain dates.
		expiry, err = time.Parse("2006-01-02", n.ExpiryDate)
		if err != nil {
			return false
		}
	}
	return expiry.Before(now)
}

// RecordID implements the record store's id accessor.
func (n Notice) RecordID() string { return n.ID }
