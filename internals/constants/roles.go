package constants

import "fmt"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyUsersCanAccess  = "❌ Fitur %s hanya untuk akun user."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorUser(feature string) string {
	return fmt.Sprintf(ErrOnlyUsersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
