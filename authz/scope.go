package authz

import "github.com/radipleven/school-gradebook-project/models"

// Scope is the visibility filter for a list operation: which rows of the
// resource the caller may see. A closed set, so services dispatch over it
// exhaustively.
type Scope int

const (
	// ScopeNone: the role may not list the resource at all.
	ScopeNone Scope = iota
	// ScopeAll: no row-level restriction.
	ScopeAll
	// ScopeLinkedStudents: rows whose student belongs to the caller's
	// parent-student links.
	ScopeLinkedStudents
	// ScopeOwnStudent: rows of the student record owned by the caller's
	// user. A caller with no student record sees an empty set.
	ScopeOwnStudent
	// ScopeSelfLinks: parent-student links where parent_id is the caller.
	ScopeSelfLinks
)

// Visibility computes the list filter for role over resource.
func Visibility(role models.Role, resource Resource) Scope {
	if !Can(role, ActionList, resource) {
		return ScopeNone
	}
	switch resource {
	case ResourceGrade, ResourceAbsence:
		switch role {
		case models.RoleParent:
			return ScopeLinkedStudents
		case models.RoleStudent:
			return ScopeOwnStudent
		}
		return ScopeAll
	case ResourceParentLink:
		if role == models.RoleParent {
			return ScopeSelfLinks
		}
		return ScopeAll
	default:
		return ScopeAll
	}
}
