package user

type Role string

const (
	RoleWorker     Role = "worker"     // Logs entries, sees own dashboard
	RoleAdmin      Role = "admin"      // Reviews workers and settles weeks
	RoleSuperAdmin Role = "superadmin" // Full access, bonuses and denials
)

// Principal is the authenticated caller as read from the access token
type Principal struct {
	UserID string
	Role   Role
}

// ParseRole validates a role claim
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleWorker, RoleAdmin, RoleSuperAdmin:
		return r, true
	}
	return "", false
}
