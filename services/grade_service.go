package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/radipleven/school-gradebook-project/apperr"
	"github.com/radipleven/school-gradebook-project/authz"
	"github.com/radipleven/school-gradebook-project/config"
	"github.com/radipleven/school-gradebook-project/models"
)

type GradeService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewGradeService(db *gorm.DB, cfg *config.Config) *GradeService {
	return &GradeService{db: db, cfg: cfg}
}

func (s *GradeService) Create(ctx context.Context, caller *models.User, p models.NewGrade) (*models.Grade, *apperr.Error) {
	if !authz.Can(caller.Role, authz.ActionCreate, authz.ResourceGrade) {
		return nil, forbidden(caller.Role)
	}
	if errs := p.Validate(s.cfg.GradeMin, s.cfg.GradeMax); errs != nil {
		return nil, apperr.ValidationFields(errs)
	}
	ok, aerr := studentExists(ctx, s.db, p.StudentID)
	if aerr != nil {
		return nil, aerr
	}
	if !ok {
		return nil, apperr.Conflict("student_id does not reference an existing student")
	}
	ok, aerr = userExists(ctx, s.db, p.TeacherID)
	if aerr != nil {
		return nil, aerr
	}
	if !ok {
		return nil, apperr.Conflict("teacher_id does not reference an existing user")
	}

	g := models.Grade{
		StudentID: p.StudentID,
		Subject:   p.Subject,
		Value:     p.Value,
		TeacherID: p.TeacherID,
	}
	if err := s.db.WithContext(ctx).Create(&g).Error; err != nil {
		return nil, storageErr(err, "grade")
	}
	return &g, nil
}

// List applies the caller's visibility filter. An empty permitted-student
// set short-circuits to an empty slice without touching the grades table.
func (s *GradeService) List(ctx context.Context, caller *models.User) ([]models.Grade, *apperr.Error) {
	scope := authz.Visibility(caller.Role, authz.ResourceGrade)
	if scope == authz.ScopeNone {
		return nil, forbidden(caller.Role)
	}
	ids, all, aerr := visibleStudentIDs(ctx, s.db, caller, scope)
	if aerr != nil {
		return nil, aerr
	}

	grades := []models.Grade{}
	tx := s.db.WithContext(ctx).Order("id")
	if !all {
		if len(ids) == 0 {
			return grades, nil
		}
		tx = tx.Where("student_id IN ?", ids)
	}
	if err := tx.Find(&grades).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return grades, nil
}

func (s *GradeService) GetByID(ctx context.Context, caller *models.User, id uint) (*models.Grade, *apperr.Error) {
	if !authz.Can(caller.Role, authz.ActionRead, authz.ResourceGrade) {
		return nil, forbidden(caller.Role)
	}
	var g models.Grade
	if err := s.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		return nil, storageErr(err, "grade")
	}
	if s.cfg.StrictOwnership {
		scope := authz.Visibility(caller.Role, authz.ResourceGrade)
		if scope != authz.ScopeAll {
			ids, _, aerr := visibleStudentIDs(ctx, s.db, caller, scope)
			if aerr != nil {
				return nil, aerr
			}
			if !containsID(ids, g.StudentID) {
				return nil, apperr.NotFound("grade")
			}
		}
	}
	return &g, nil
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (s *GradeService) Update(ctx context.Context, caller *models.User, id uint, p models.UpdateGrade) (*models.Grade, *apperr.Error) {
	if !authz.Can(caller.Role, authz.ActionUpdate, authz.ResourceGrade) {
		return nil, forbidden(caller.Role)
	}
	if errs := p.Validate(s.cfg.GradeMin, s.cfg.GradeMax); errs != nil {
		return nil, apperr.ValidationFields(errs)
	}
	var g models.Grade
	if err := s.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		return nil, storageErr(err, "grade")
	}
	if p.Subject != nil {
		g.Subject = *p.Subject
	}
	if p.Value != nil {
		g.Value = *p.Value
	}
	if err := s.db.WithContext(ctx).Save(&g).Error; err != nil {
		return nil, storageErr(err, "grade")
	}
	return &g, nil
}

func (s *GradeService) Delete(ctx context.Context, caller *models.User, id uint) *apperr.Error {
	if !authz.Can(caller.Role, authz.ActionDelete, authz.ResourceGrade) {
		return forbidden(caller.Role)
	}
	res := s.db.WithContext(ctx).Delete(&models.Grade{}, "id = ?", id)
	if res.Error != nil {
		return storageErr(res.Error, "grade")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("grade")
	}
	return nil
}
