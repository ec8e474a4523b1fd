package model

// User represents a campus account. Email is the login key and must be
// unique across the collection; uniqueness is enforced at registration only.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	StudentID  string `json:"studentId,omitempty"`
	Department string `json:"department,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
}

// Roles.
const (
	RoleStudent = "Student"
	RoleFaculty = "Faculty"
	RoleAdmin   = "Admin"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleFaculty || role == RoleAdmin
}

// RecordID implements the record store's id accessor.
func (u User) RecordID() string { return u.ID }
