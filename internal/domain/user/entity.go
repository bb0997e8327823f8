package user

// Role is the caller role carried in the access token. Authentication
// itself happens upstream; this service only trusts the claim.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

func IsValidRole(r Role) bool {
	switch r {
	case RoleOwner, RoleManager, RoleEmployee:
		return true
	}
	return false
}
