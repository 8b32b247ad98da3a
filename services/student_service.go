package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/radipleven/school-gradebook-project/apperr"
	"github.com/radipleven/school-gradebook-project/authz"
	"github.com/radipleven/school-gradebook-project/config"
	"github.com/radipleven/school-gradebook-project/models"
)

type StudentService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewStudentService(db *gorm.DB, cfg *config.Config) *StudentService {
	return &StudentService{db: db, cfg: cfg}
}

const studentViewSelect = "students.id, students.user_id, students.class, students.created_at, " +
	"users.first_name, users.last_name, users.email"

func (s *StudentService) Create(ctx context.Context, caller *models.User, p models.NewStudent) (*models.Student, *apperr.Error) {
	if !authz.Can(caller.Role, authz.ActionCreate, authz.ResourceStudent) {
		return nil, forbidden(caller.Role)
	}
	if errs := p.Validate(); errs != nil {
		return nil, apperr.ValidationFields(errs)
	}
	ok, aerr := userExists(ctx, s.db, p.UserID)
	if aerr != nil {
		return nil, aerr
	}
	if !ok {
		return nil, apperr.Conflict("user_id does not reference an existing user")
	}

	st := models.Student{UserID: p.UserID, Class: p.Class}
	if err := s.db.WithContext(ctx).Create(&st).Error; err != nil {
		return nil, storageErr(err, "student")
	}
	return &st, nil
}

func (s *StudentService) List(ctx context.Context, caller *models.User) ([]models.StudentView, *apperr.Error) {
	if !authz.Can(caller.Role, authz.ActionList, authz.ResourceStudent) {
		return nil, forbidden(caller.Role)
	}
	views := []models.StudentView{}
	err := s.db.WithContext(ctx).
		Model(&models.Student{}).
		Select(studentViewSelect).
		Joins("JOIN users ON students.user_id = users.id").
		Order("students.id").
		Scan(&views).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return views, nil
}

func (s *StudentService) GetByID(ctx context.Context, caller *models.User, id uint) (*models.StudentView, *apperr.Error) {
	if !authz.Can(caller.Role, authz.ActionRead, authz.ResourceStudent) {
		return nil, forbidden(caller.Role)
	}
	if aerr := s.checkOwnership(ctx, caller, id); aerr != nil {
		return nil, aerr
	}
	var view models.StudentView
	err := s.db.WithContext(ctx).
		Model(&models.Student{}).
		Select(studentViewSelect).
		Joins("JOIN users ON students.user_id = users.id").
		Where("students.id = ?", id).
		First(&view).Error
	if err != nil {
		return nil, storageErr(err, "student")
	}
	return &view, nil
}

// checkOwnership applies the strict-ownership option: Parent/Student
// callers may only fetch rows in their visibility scope, and out-of-scope
// rows read as not found so existence is not leaked.
func (s *StudentService) checkOwnership(ctx context.Context, caller *models.User, studentID uint) *apperr.Error {
	if !s.cfg.StrictOwnership {
		return nil
	}
	scope := authz.Visibility(caller.Role, authz.ResourceGrade)
	if scope == authz.ScopeAll {
		return nil
	}
	ids, _, aerr := visibleStudentIDs(ctx, s.db, caller, scope)
	if aerr != nil {
		return aerr
	}
	for _, id := range ids {
		if id == studentID {
			return nil
		}
	}
	return apperr.NotFound("student")
}

func (s *StudentService) Update(ctx context.Context, caller *models.User, id uint, p models.UpdateStudent) (*models.Student, *apperr.Error) {
	if !authz.Can(caller.Role, authz.ActionUpdate, authz.ResourceStudent) {
		return nil, forbidden(caller.Role)
	}
	if errs := p.Validate(); errs != nil {
		return nil, apperr.ValidationFields(errs)
	}
	var st models.Student
	if err := s.db.WithContext(ctx).First(&st, "id = ?", id).Error; err != nil {
		return nil, storageErr(err, "student")
	}
	if p.Class != nil {
		st.Class = *p.Class
	}
	if err := s.db.WithContext(ctx).Save(&st).Error; err != nil {
		return nil, storageErr(err, "student")
	}
	return &st, nil
}

func (s *StudentService) Delete(ctx context.Context, caller *models.User, id uint) *apperr.Error {
	if !authz.Can(caller.Role, authz.ActionDelete, authz.ResourceStudent) {
		return forbidden(caller.Role)
	}
	res := s.db.WithContext(ctx).Delete(&models.Student{}, "id = ?", id)
	if res.Error != nil {
		return storageErr(res.Error, "student")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("student")
	}
	return nil
}
