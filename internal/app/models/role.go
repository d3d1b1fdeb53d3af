package models

// Role is the closed set of actor kinds. Stored on the account document and
// never changed after creation.
type Role string

const (
	RoleUser   Role = "user"
	RoleAdmin  Role = "admin"
	RoleDoctor Role = "doctor"
)

// Permission is the closed set of guarded capabilities.
type Permission string

const (
	PermissionManageOwnProfile     Permission = "profile:manage"
	PermissionManageRelatives      Permission = "relatives:manage"
	PermissionReadHealthReport     Permission = "health_reports:read"
	PermissionCreateHealthReport   Permission = "health_reports:create"
	PermissionUpdateHealthReport   Permission = "health_reports:update"
	PermissionDeleteHealthReport   Permission = "health_reports:delete"
	PermissionUploadAttachment     Permission = "health_reports:attach"
	PermissionListAllHealthReports Permission = "health_reports:list_all"
	PermissionManageDoctors        Permission = "doctors:manage"
	PermissionManageCamps          Permission = "camps:manage"
)

func AllRoles() []Role {
	return []Role{RoleUser, RoleAdmin, RoleDoctor}
}

func AllPermissions() []Permission {
	return []Permission{
		PermissionManageOwnProfile,
		PermissionManageRelatives,
		PermissionReadHealthReport,
		PermissionCreateHealthReport,
		PermissionUpdateHealthReport,
		PermissionDeleteHealthReport,
		PermissionUploadAttachment,
		PermissionListAllHealthReports,
		PermissionManageDoctors,
		PermissionManageCamps,
	}
}

// permissionMatrix lists every (role, permission) pair explicitly. A pair
// missing from the matrix is denied, and role_test.go fails when one is missing.
var permissionMatrix = map[Role]map[Permission]bool{
	RoleUser: {
		PermissionManageOwnProfile:     true,
		PermissionManageRelatives:      true,
		PermissionReadHealthReport:     true,
		PermissionCreateHealthReport:   false,
		PermissionUpdateHealthReport:   false,
		PermissionDeleteHealthReport:   false,
		PermissionUploadAttachment:     false,
		PermissionListAllHealthReports: false,
		PermissionManageDoctors:        false,
		PermissionManageCamps:          false,
	},
	RoleDoctor: {
		PermissionManageOwnProfile:     true,
		PermissionManageRelatives:      false,
		PermissionReadHealthReport:     true,
		PermissionCreateHealthReport:   true,
		PermissionUpdateHealthReport:   true,
		PermissionDeleteHealthReport:   true,
		PermissionUploadAttachment:     true,
		PermissionListAllHealthReports: false,
		PermissionManageDoctors:        false,
		PermissionManageCamps:          false,
	},
	RoleAdmin: {
		PermissionManageOwnProfile:     true,
		PermissionManageRelatives:      false,
		PermissionReadHealthReport:     true,
		PermissionCreateHealthReport:   true,
		PermissionUpdateHealthReport:   true,
		PermissionDeleteHealthReport:   true,
		PermissionUploadAttachment:     true,
		PermissionListAllHealthReports: true,
		PermissionManageDoctors:        true,
		PermissionManageCamps:          true,
	},
}

func (r Role) IsValid() bool {
	_, ok := permissionMatrix[r]
	return ok
}

func (r Role) String() string {
	return string(r)
}

// HasPermission evaluates the matrix. Unknown roles and permissions are denied.
func HasPermission(role Role, permission Permission) bool {
	permissions, ok := permissionMatrix[role]
	if !ok {
		return false
	}
	return permissions[permission]
}
