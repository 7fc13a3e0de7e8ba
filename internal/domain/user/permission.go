package user

type Permission string

const (
	// Self
	PermissionPerformanceViewOwn Permission = "performance.view_own"

	// Review
	PermissionPerformanceViewAll Permission = "performance.view_all"
	PermissionPaymentMarkPaid    Permission = "payment.mark_paid"

	// Superadmin
	PermissionUserDetail  Permission = "user.detail"
	PermissionBonusManage Permission = "bonus.manage"
	PermissionPaymentDeny Permission = "payment.deny"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		// Superadmin has all permissions
		PermissionPerformanceViewOwn,
		PermissionPerformanceViewAll,
		PermissionPaymentMarkPaid,
		PermissionUserDetail,
		PermissionBonusManage,
		PermissionPaymentDeny,
	},
	RoleAdmin: {
		PermissionPerformanceViewOwn,
		PermissionPerformanceViewAll,
		PermissionPaymentMarkPaid,
	},
	RoleWorker: {
		PermissionPerformanceViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
