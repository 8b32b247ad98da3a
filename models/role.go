package models

import "strings"

// Role is the closed set of user roles. Stored lowercase in the role column.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleDirector Role = "director"
	RoleTeacher  Role = "teacher"
	RoleParent   Role = "parent"
	RoleStudent  Role = "student"
)

// ParseRole rejects anything outside the five known roles.
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleDirector, RoleTeacher, RoleParent, RoleStudent:
		return r, true
	default:
		return "", false
	}
}

func (r Role) String() string { return string(r) }
