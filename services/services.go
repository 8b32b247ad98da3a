// Package services implements the entity services. Every mutating
// operation runs authorize -> validate -> single-statement storage call,
// in that order, so denied or malformed requests never touch the store.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/radipleven/school-gradebook-project/apperr"
	"github.com/radipleven/school-gradebook-project/authz"
	"github.com/radipleven/school-gradebook-project/models"
)

const errInsufficientRole = "insufficient permissions for role"

func forbidden(role models.Role) *apperr.Error {
	return apperr.Forbidden(errInsufficientRole + " " + role.String())
}

// storageErr maps GORM errors to the response taxonomy.
func storageErr(err error, what string) *apperr.Error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(what)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Conflict(what + " already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperr.Conflict(what + " references a missing or referenced row")
	default:
		return apperr.Internal(err)
	}
}

// visibleStudentIDs resolves a visibility scope to the set of student ids
// the caller may see. The bool is true when the scope is unrestricted.
func visibleStudentIDs(ctx context.Context, db *gorm.DB, caller *models.User, scope authz.Scope) ([]uint, bool, *apperr.Error) {
	switch scope {
	case authz.ScopeAll:
		return nil, true, nil
	case authz.ScopeLinkedStudents:
		var ids []uint
		err := db.WithContext(ctx).
			Model(&models.ParentStudent{}).
			Where("parent_id = ?", caller.ID).
			Pluck("student_id", &ids).Error
		if err != nil {
			return nil, false, apperr.Internal(err)
		}
		return ids, false, nil
	case authz.ScopeOwnStudent:
		var ids []uint
		err := db.WithContext(ctx).
			Model(&models.Student{}).
			Where("user_id = ?", caller.ID).
			Pluck("id", &ids).Error
		if err != nil {
			return nil, false, apperr.Internal(err)
		}
		return ids, false, nil
	default:
		return nil, false, forbidden(caller.Role)
	}
}

func userExists(ctx context.Context, db *gorm.DB, id uint) (bool, *apperr.Error) {
	var n int64
	if err := db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, apperr.Internal(err)
	}
	return n > 0, nil
}

func studentExists(ctx context.Context, db *gorm.DB, id uint) (bool, *apperr.Error) {
	var n int64
	if err := db.WithContext(ctx).Model(&models.Student{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, apperr.Internal(err)
	}
	return n > 0, nil
}
