package domain

// UserRole is the school role of a user.
type UserRole string

const (
	RoleDirector   UserRole = "director"
	RoleAdmin      UserRole = "admin"
	RoleAccountant UserRole = "accountant"
	RoleSecretary  UserRole = "secretary"
	RoleTeacher    UserRole = "teacher"
)

// IsPrivileged reports whether the role may purge history and edit allocation categories.
func (r UserRole) IsPrivileged() bool {
	return r == RoleDirector || r == RoleAdmin
}

// User is the identity resolved from a user id.
type User struct {
	UserID      string   `json:"userID"`
	DisplayName string   `json:"displayName"`
	Role        UserRole `json:"role"`
}

// Actor returns the audit snapshot of the user.
func (u User) Actor() Actor {
	return Actor{UserID: u.UserID, DisplayName: u.DisplayName}
}
