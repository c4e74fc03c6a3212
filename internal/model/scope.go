package model

// Scope is the authenticated admin attached to a request.
type Scope struct {
	UserID   string
	Username string
	Role     string
}

// IsAdmin reports whether the scope carries the admin role.
func (s Scope) IsAdmin() bool {
	return s.Role == "admin"
}
