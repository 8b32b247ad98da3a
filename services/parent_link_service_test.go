package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radipleven/school-gradebook-project/apperr"
	"github.com/radipleven/school-gradebook-project/models"
)

func TestParentLinkCreateAndList(t *testing.T) {
	db := testDB(t)
	svc := NewParentLinkService(db)
	admin := seedUser(t, db, models.RoleAdmin)
	parent := seedUser(t, db, models.RoleParent)
	owner := seedUser(t, db, models.RoleStudent)
	st := seedStudent(t, db, owner.ID, "5A")

	link, aerr := svc.Create(ctx(), admin, models.LinkParentStudent{ParentID: parent.ID, StudentID: st.ID})
	require.Nil(t, aerr)
	assert.Equal(t, parent.ID, link.ParentID)
	assert.Equal(t, st.ID, link.StudentID)

	// the parent sees exactly the one link
	links, aerr := svc.List(ctx(), parent, parent.ID)
	require.Nil(t, aerr)
	require.Len(t, links, 1)
	assert.Equal(t, parent.ID, links[0].ParentID)
	assert.Equal(t, st.ID, links[0].StudentID)
}

func TestParentLinkCrossParentIsForbidden(t *testing.T) {
	db := testDB(t)
	svc := NewParentLinkService(db)
	admin := seedUser(t, db, models.RoleAdmin)
	parentA := seedUser(t, db, models.RoleParent)
	parentB := seedUser(t, db, models.RoleParent)
	owner := seedUser(t, db, models.RoleStudent)
	st := seedStudent(t, db, owner.ID, "5A")
	_, aerr := svc.Create(ctx(), admin, models.LinkParentStudent{ParentID: parentA.ID, StudentID: st.ID})
	require.Nil(t, aerr)

	// another parent probing parentA's path gets Forbidden, not NotFound
	_, aerr = svc.List(ctx(), parentB, parentA.ID)
	require.NotNil(t, aerr)
	assert.Equal(t, apperr.KindForbidden, aerr.Kind)

	// probing a parent id that does not even exist looks identical
	_, aerr2 := svc.List(ctx(), parentB, 9999)
	require.NotNil(t, aerr2)
	assert.Equal(t, apperr.KindForbidden, aerr2.Kind)
	assert.Equal(t, aerr.Msg, aerr2.Msg)

	// staff may list any parent's links
	links, aerr := svc.List(ctx(), admin, parentA.ID)
	require.Nil(t, aerr)
	assert.Len(t, links, 1)
}

func TestParentLinkForbiddenRoles(t *testing.T) {
	db := testDB(t)
	svc := NewParentLinkService(db)
	parent := seedUser(t, db, models.RoleParent)

	for _, role := range []models.Role{models.RoleTeacher, models.RoleStudent} {
		caller := seedUser(t, db, role)
		_, aerr := svc.List(ctx(), caller, parent.ID)
		require.NotNil(t, aerr, "role %s", role)
		assert.Equal(t, apperr.KindForbidden, aerr.Kind)
	}
}

func TestParentLinkDuplicatePair(t *testing.T) {
	db := testDB(t)
	svc := NewParentLinkService(db)
	director := seedUser(t, db, models.RoleDirector)
	parent := seedUser(t, db, models.RoleParent)
	owner := seedUser(t, db, models.RoleStudent)
	st := seedStudent(t, db, owner.ID, "5A")

	p := models.LinkParentStudent{ParentID: parent.ID, StudentID: st.ID}
	_, aerr := svc.Create(ctx(), director, p)
	require.Nil(t, aerr)
	_, aerr = svc.Create(ctx(), director, p)
	require.NotNil(t, aerr)
	assert.Equal(t, apperr.KindConflict, aerr.Kind)
}

func TestParentLinkCreateRejectsNonParent(t *testing.T) {
	db := testDB(t)
	svc := NewParentLinkService(db)
	admin := seedUser(t, db, models.RoleAdmin)
	teacher := seedUser(t, db, models.RoleTeacher)
	owner := seedUser(t, db, models.RoleStudent)
	st := seedStudent(t, db, owner.ID, "5A")

	_, aerr := svc.Create(ctx(), admin, models.LinkParentStudent{ParentID: teacher.ID, StudentID: st.ID})
	require.NotNil(t, aerr)
	assert.Equal(t, apperr.KindValidation, aerr.Kind)
	assert.Contains(t, aerr.Fields, "parent_id")
}

func TestParentLinkDeleteByPair(t *testing.T) {
	db := testDB(t)
	svc := NewParentLinkService(db)
	admin := seedUser(t, db, models.RoleAdmin)
	parent := seedUser(t, db, models.RoleParent)
	owner := seedUser(t, db, models.RoleStudent)
	st := seedStudent(t, db, owner.ID, "5A")
	seedLink(t, db, parent.ID, st.ID)

	require.Nil(t, svc.DeleteByPair(ctx(), admin, parent.ID, st.ID))
	aerr := svc.DeleteByPair(ctx(), admin, parent.ID, st.ID)
	require.NotNil(t, aerr)
	assert.Equal(t, apperr.KindNotFound, aerr.Kind)

	// parents themselves may not delete links
	aerr = svc.DeleteByPair(ctx(), parent, parent.ID, st.ID)
	require.NotNil(t, aerr)
	assert.Equal(t, apperr.KindForbidden, aerr.Kind)
}
