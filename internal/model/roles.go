package model

// Roles assigned to users. Registration always starts at RoleUser; the
// other roles are granted directly in the database.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// IsPrivileged reports whether the role may mutate places and delete comments.
func IsPrivileged(role string) bool {
	return role == RoleAdmin || role == RoleModerator
}
