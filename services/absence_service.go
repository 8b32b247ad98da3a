package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/radipleven/school-gradebook-project/apperr"
	"github.com/radipleven/school-gradebook-project/authz"
	"github.com/radipleven/school-gradebook-project/config"
	"github.com/radipleven/school-gradebook-project/models"
)

type AbsenceService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAbsenceService(db *gorm.DB, cfg *config.Config) *AbsenceService {
	return &AbsenceService{db: db, cfg: cfg}
}

func (s *AbsenceService) Create(ctx context.Context, caller *models.User, p models.NewAbsence) (*models.Absence, *apperr.Error) {
	if !authz.Can(caller.Role, authz.ActionCreate, authz.ResourceAbsence) {
		return nil, forbidden(caller.Role)
	}
	if errs := p.Validate(); errs != nil {
		return nil, apperr.ValidationFields(errs)
	}
	ok, aerr := studentExists(ctx, s.db, p.StudentID)
	if aerr != nil {
		return nil, aerr
	}
	if !ok {
		return nil, apperr.Conflict("student_id does not reference an existing student")
	}

	a := models.Absence{
		StudentID: p.StudentID,
		Date:      strings.TrimSpace(p.Date),
		Reason:    strings.TrimSpace(p.Reason),
	}
	if err := s.db.WithContext(ctx).Create(&a).Error; err != nil {
		return nil, storageErr(err, "absence")
	}
	return &a, nil
}

// List shares the grade visibility rule: parents see linked students,
// students see themselves, callers with no linked rows get an empty list.
func (s *AbsenceService) List(ctx context.Context, caller *models.User) ([]models.Absence, *apperr.Error) {
	scope := authz.Visibility(caller.Role, authz.ResourceAbsence)
	if scope == authz.ScopeNone {
		return nil, forbidden(caller.Role)
	}
	ids, all, aerr := visibleStudentIDs(ctx, s.db, caller, scope)
	if aerr != nil {
		return nil, aerr
	}

	absences := []models.Absence{}
	tx := s.db.WithContext(ctx).Order("id")
	if !all {
		if len(ids) == 0 {
			return absences, nil
		}
		tx = tx.Where("student_id IN ?", ids)
	}
	if err := tx.Find(&absences).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return absences, nil
}

func (s *AbsenceService) GetByID(ctx context.Context, caller *models.User, id uint) (*models.Absence, *apperr.Error) {
	if !authz.Can(caller.Role, authz.ActionRead, authz.ResourceAbsence) {
		return nil, forbidden(caller.Role)
	}
	var a models.Absence
	if err := s.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, storageErr(err, "absence")
	}
	if s.cfg.StrictOwnership {
		scope := authz.Visibility(caller.Role, authz.ResourceAbsence)
		if scope != authz.ScopeAll {
			ids, _, aerr := visibleStudentIDs(ctx, s.db, caller, scope)
			if aerr != nil {
				return nil, aerr
			}
			if !containsID(ids, a.StudentID) {
				return nil, apperr.NotFound("absence")
			}
		}
	}
	return &a, nil
}

func (s *AbsenceService) Update(ctx context.Context, caller *models.User, id uint, p models.UpdateAbsence) (*models.Absence, *apperr.Error) {
	if !authz.Can(caller.Role, authz.ActionUpdate, authz.ResourceAbsence) {
		return nil, forbidden(caller.Role)
	}
	if errs := p.Validate(); errs != nil {
		return nil, apperr.ValidationFields(errs)
	}
	var a models.Absence
	if err := s.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, storageErr(err, "absence")
	}
	if p.Date != nil {
		a.Date = strings.TrimSpace(*p.Date)
	}
	if p.Reason != nil {
		a.Reason = strings.TrimSpace(*p.Reason)
	}
	if err := s.db.WithContext(ctx).Save(&a).Error; err != nil {
		return nil, storageErr(err, "absence")
	}
	return &a, nil
}

func (s *AbsenceService) Delete(ctx context.Context, caller *models.User, id uint) *apperr.Error {
	if !authz.Can(caller.Role, authz.ActionDelete, authz.ResourceAbsence) {
		return forbidden(caller.Role)
	}
	res := s.db.WithContext(ctx).Delete(&models.Absence{}, "id = ?", id)
	if res.Error != nil {
		return storageErr(res.Error, "absence")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("absence")
	}
	return nil
}
