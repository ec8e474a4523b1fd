package model

// Feedback represents a feedback entry. Entries are immutable once
// submitted; there is no update or delete surface.
type Feedback struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Category    string `json:"category"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	Date        string `json:"date"`
	IsAnonymous bool   `json:"isAnonymous"`
}

// Feedback categories.
const (
	FeedbackInfrastructure = "Infrastructure"
	FeedbackCanteen        = "Canteen"
	FeedbackAcademics      = "Academics"
	FeedbackSports         = "Sports"
	FeedbackOther          = "Other"
)

// FeedbackCategories lists the valid categories in display order.
var FeedbackCategories = []string{
	FeedbackInfrastructure,
	FeedbackCanteen,
	FeedbackAcademics,
	FeedbackSports,
	FeedbackOther,
}

// ValidFeedbackCategory reports whether category is one of the known categories.
func ValidFeedbackCategory(category string) bool {
	for _, c := range FeedbackCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ValidRating reports whether rating lies in the 1-5 range.
func ValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// RecordID implements the record store's id accessor.
func (f Feedback) RecordID() string { return f.ID }
