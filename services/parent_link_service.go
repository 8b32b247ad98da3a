package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/radipleven/school-gradebook-project/apperr"
	"github.com/radipleven/school-gradebook-project/authz"
	"github.com/radipleven/school-gradebook-project/models"
)

type ParentLinkService struct {
	db *gorm.DB
}

func NewParentLinkService(db *gorm.DB) *ParentLinkService {
	return &ParentLinkService{db: db}
}

func (s *ParentLinkService) Create(ctx context.Context, caller *models.User, p models.LinkParentStudent) (*models.ParentStudent, *apperr.Error) {
	if !authz.Can(caller.Role, authz.ActionCreate, authz.ResourceParentLink) {
		return nil, forbidden(caller.Role)
	}
	if errs := p.Validate(); errs != nil {
		return nil, apperr.ValidationFields(errs)
	}

	var parent models.User
	if err := s.db.WithContext(ctx).First(&parent, "id = ?", p.ParentID).Error; err != nil {
		return nil, apperr.Conflict("parent_id does not reference an existing user")
	}
	if parent.Role != models.RoleParent {
		return nil, apperr.ValidationFields(map[string]string{
			"parent_id": "parent_id must reference a parent-role user",
		})
	}
	ok, aerr := studentExists(ctx, s.db, p.StudentID)
	if aerr != nil {
		return nil, aerr
	}
	if !ok {
		return nil, apperr.Conflict("student_id does not reference an existing student")
	}

	var n int64
	if err := s.db.WithContext(ctx).Model(&models.ParentStudent{}).
		Where("parent_id = ? AND student_id = ?", p.ParentID, p.StudentID).
		Count(&n).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	if n > 0 {
		return nil, apperr.Conflict("parent-student link already exists")
	}

	link := models.ParentStudent{ParentID: p.ParentID, StudentID: p.StudentID}
	if err := s.db.WithContext(ctx).Create(&link).Error; err != nil {
		return nil, storageErr(err, "parent-student link")
	}
	return &link, nil
}

// List returns the links of one parent. A parent asking about any other
// parent gets Forbidden, never "no such parent", so cross-parent probing
// reveals nothing.
func (s *ParentLinkService) List(ctx context.Context, caller *models.User, parentID uint) ([]models.ParentStudent, *apperr.Error) {
	if !authz.Can(caller.Role, authz.ActionList, authz.ResourceParentLink) {
		return nil, forbidden(caller.Role)
	}
	if authz.Visibility(caller.Role, authz.ResourceParentLink) == authz.ScopeSelfLinks && parentID != caller.ID {
		return nil, apperr.Forbidden("parents may only access their own links")
	}

	links := []models.ParentStudent{}
	err := s.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("student_id").
		Find(&links).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return links, nil
}

func (s *ParentLinkService) DeleteByPair(ctx context.Context, caller *models.User, parentID, studentID uint) *apperr.Error {
	if !authz.Can(caller.Role, authz.ActionDelete, authz.ResourceParentLink) {
		return forbidden(caller.Role)
	}
	res := s.db.WithContext(ctx).
		Where("parent_id = ? AND student_id = ?", parentID, studentID).
		Delete(&models.ParentStudent{})
	if res.Error != nil {
		return storageErr(res.Error, "parent-student link")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("parent-student link")
	}
	return nil
}
