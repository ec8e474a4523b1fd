package model

import (
	"testing"
	"time"
)

func TestNoticeExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		expiry   string
		expected bool
	}{
		{"2026-02-01", true},
		{"2026-12-31", false},
		{"2026-02-01T00:00:00Z", true},
		{"2026-12-31T00:00:00Z", false},
		// Missing or malformed expiry counts as not expired.
		{"", false},
		{"not-a-date", false},
	}

	for _, tt := range tests {
		n := Notice{ExpiryDate: tt.expiry}
		if got := n.Expired(now); got != tt.expected {
			t.Errorf("Expired(%q) = %v, want %v", tt.expiry, got, tt.expected)
		}
	}
}

func TestValidNoticeCategory(t *testing.T) {
	for _, c := range NoticeCategories {
		if !ValidNoticeCategory(c) {
			t.Errorf("expected %q to be valid", c)
		}
	}
	if ValidNoticeCategory("All") {
		t.Error("'All' is a filter value, not a category")
	}
	if ValidNoticeCategory("") {
		t.Error("empty category should be invalid")
	}
}

func TestValidRating(t *testing.T) {
	for rating, want := range map[int]bool{0: false, 1: true, 3: true, 5: true, 6: false, -1: false} {
		if got := ValidRating(rating); got != want {
			t.Errorf("ValidRating(%d) = %v, want %v", rating, got, want)
		}
	}
}
