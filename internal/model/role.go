package model

// View identifiers for the feature tabs.
const (
	ViewDashboard   = "dashboard"
	ViewLostFound   = "lostfound"
	ViewNotices     = "notices"
	ViewMarketplace = "marketplace"
	ViewCollege     = "college"
	ViewFeedback    = "feedback"
	ViewAdmin       = "admin"
)

// menuOrder is the sidebar order of the feature tabs.
var menuOrder = []string{
	ViewDashboard,
	ViewLostFound,
	ViewNotices,
	ViewMarketplace,
	ViewCollege,
	ViewFeedback,
	ViewAdmin,
}

// viewRoles maps each view to the roles permitted to see it. The gate is
// advisory: it drives menu visibility and request checks, nothing stronger.
var viewRoles = map[string][]string{
	ViewDashboard:   {RoleStudent, RoleFaculty, RoleAdmin},
	ViewLostFound:   {RoleStudent, RoleFaculty, RoleAdmin},
	ViewNotices:     {RoleStudent, RoleFaculty, RoleAdmin},
	ViewMarketplace: {RoleStudent, RoleFaculty, RoleAdmin},
	ViewCollege:     {RoleStudent, RoleFaculty},
	ViewFeedback:    {RoleStudent, RoleFaculty},
	ViewAdmin:       {RoleAdmin},
}

// CanView reports whether a role may open the given view. Unknown views and
// unknown roles fail closed.
func CanView(role, view string) bool {
	for _, r := range viewRoles[view] {
		if r == role {
			return true
		}
	}
	return false
}

// AllowedViews returns the views visible to a role, in menu order.
func AllowedViews(role string) []string {
	var views []string
	for _, v := range menuOrder {
		if CanView(role, v) {
			views = append(views, v)
		}
	}
	return views
}

// CanPostNotice reports whether a role may post to the notice board.
func CanPostNotice(role string) bool {
	return role == RoleFaculty || role == RoleAdmin
}

// CanDeleteNotice reports whether a user may delete a notice: admins may
// delete anything, everyone else only their own postings.
func CanDeleteNotice(u *User, n *Notice) bool {
	if u == nil || n == nil {
		return false
	}
	return u.Role == RoleAdmin || n.PostedBy == u.Name
}

// CanResolve reports whether a user may mark a lost & found item resolved:
// only the original poster of a still-open item.
func CanResolve(u *User, item *LostFoundItem) bool {
	if u == nil || item == nil {
		return false
	}
	return item.Status == LostFoundOpen && item.PostedBy == u.Name
}

// CanMarkSold reports whether a user may mark a market item sold: only the
// seller of a still-available item.
func CanMarkSold(u *User, item *MarketItem) bool {
	if u == nil || item == nil {
		return false
	}
	return item.Status == MarketAvailable && item.SellerID == u.ID
}
