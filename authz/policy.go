// Package authz is the authorization engine: a static policy table keyed on
// {role, action, resource} plus the visibility scopes list operations use
// for row-level filtering. Decisions are pure functions of their inputs;
// resolving scopes to concrete student ids is the services' job.
package authz

import "github.com/radipleven/school-gradebook-project/models"

type Action int

const (
	ActionCreate Action = iota
	ActionRead
	ActionList
	ActionUpdate
	ActionDelete
)

type Resource int

const (
	ResourceUser Resource = iota
	ResourceStudent
	ResourceGrade
	ResourceAbsence
	ResourceParentLink
)

type policyKey struct {
	resource Resource
	action   Action
}

var allRoles = []models.Role{
	models.RoleAdmin, models.RoleDirector, models.RoleTeacher,
	models.RoleParent, models.RoleStudent,
}

// policy reproduces the role matrix. Write actions share one row per
// resource; read/list rows are wider, with row-level filtering handled
// separately via Visibility.
var policy = map[policyKey][]models.Role{
	{ResourceUser, ActionCreate}: {models.RoleAdmin},
	{ResourceUser, ActionUpdate}: {models.RoleAdmin},
	{ResourceUser, ActionDelete}: {models.RoleAdmin},
	{ResourceUser, ActionList}:   {models.RoleAdmin, models.RoleDirector},
	{ResourceUser, ActionRead}:   {models.RoleAdmin, models.RoleDirector},

	{ResourceStudent, ActionCreate}: {models.RoleAdmin, models.RoleDirector},
	{ResourceStudent, ActionUpdate}: {models.RoleAdmin, models.RoleDirector},
	{ResourceStudent, ActionDelete}: {models.RoleAdmin, models.RoleDirector},
	{ResourceStudent, ActionList}:   allRoles,
	{ResourceStudent, ActionRead}:   allRoles,

	{ResourceGrade, ActionCreate}: {models.RoleAdmin, models.RoleDirector, models.RoleTeacher},
	{ResourceGrade, ActionUpdate}: {models.RoleAdmin, models.RoleDirector, models.RoleTeacher},
	{ResourceGrade, ActionDelete}: {models.RoleAdmin, models.RoleDirector, models.RoleTeacher},
	{ResourceGrade, ActionList}:   allRoles,
	{ResourceGrade, ActionRead}:   allRoles,

	{ResourceAbsence, ActionCreate}: {models.RoleAdmin, models.RoleDirector, models.RoleTeacher},
	{ResourceAbsence, ActionUpdate}: {models.RoleAdmin, models.RoleDirector, models.RoleTeacher},
	{ResourceAbsence, ActionDelete}: {models.RoleAdmin, models.RoleDirector, models.RoleTeacher},
	{ResourceAbsence, ActionList}:   allRoles,
	{ResourceAbsence, ActionRead}:   allRoles,

	{ResourceParentLink, ActionCreate}: {models.RoleAdmin, models.RoleDirector},
	{ResourceParentLink, ActionDelete}: {models.RoleAdmin, models.RoleDirector},
	{ResourceParentLink, ActionList}:   {models.RoleAdmin, models.RoleDirector, models.RoleParent},
	{ResourceParentLink, ActionRead}:   {models.RoleAdmin, models.RoleDirector, models.RoleParent},
}

// Can reports whether role may perform action on resource. Row-level
// restrictions (which rows) are expressed by Visibility, not here.
func Can(role models.Role, action Action, resource Resource) bool {
	for _, r := range policy[policyKey{resource, action}] {
		if r == role {
			return true
		}
	}
	return false
}
