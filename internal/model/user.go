package model

// Role constants
const (
	RoleParent        = "parent"
	RoleDoctor        = "doctor"
	RoleHospitalAdmin = "hospital_admin"
	RoleSuperAdmin    = "super_admin"
)

// User represents a platform account: a parent, a doctor's login,
// or an administrator.
type User struct {
	Base
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	Role         string `json:"role" db:"role"`
	PasswordHash string `json:"-" db:"password_hash"`
	Verified     bool   `json:"verified" db:"verified"`
	Language     string `json:"language" db:"language"`
}

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleParent, RoleDoctor, RoleHospitalAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether role may manage hospitals and doctors.
func IsAdmin(role string) bool {
	return role == RoleHospitalAdmin || role == RoleSuperAdmin
}
