package domain

// User roles carried in the authentication headers. The platform keeps
// identity in a separate service; only the numeric ID and the role cross
// into this one.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// ValidRole reports whether a raw role string is recognised.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}
