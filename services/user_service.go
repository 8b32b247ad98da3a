package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/radipleven/school-gradebook-project/apperr"
	"github.com/radipleven/school-gradebook-project/authz"
	"github.com/radipleven/school-gradebook-project/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

func (s *UserService) Create(ctx context.Context, caller *models.User, p models.NewUser) (*models.User, *apperr.Error) {
	if !authz.Can(caller.Role, authz.ActionCreate, authz.ResourceUser) {
		return nil, forbidden(caller.Role)
	}
	p.Normalize()
	if errs := p.Validate(); errs != nil {
		return nil, apperr.ValidationFields(errs)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	role, _ := models.ParseRole(p.Role)
	u := models.User{
		Email:     p.Email,
		Password:  string(hash),
		Role:      role,
		FirstName: p.FirstName,
		LastName:  p.LastName,
	}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, storageErr(err, "user")
	}
	return &u, nil
}

func (s *UserService) List(ctx context.Context, caller *models.User) ([]models.User, *apperr.Error) {
	if !authz.Can(caller.Role, authz.ActionList, authz.ResourceUser) {
		return nil, forbidden(caller.Role)
	}
	users := []models.User{}
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, caller *models.User, id uint) (*models.User, *apperr.Error) {
	if !authz.Can(caller.Role, authz.ActionRead, authz.ResourceUser) {
		return nil, forbidden(caller.Role)
	}
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, storageErr(err, "user")
	}
	return &u, nil
}

func (s *UserService) Update(ctx context.Context, caller *models.User, id uint, p models.UpdateUser) (*models.User, *apperr.Error) {
	if !authz.Can(caller.Role, authz.ActionUpdate, authz.ResourceUser) {
		return nil, forbidden(caller.Role)
	}
	if errs := p.Validate(); errs != nil {
		return nil, apperr.ValidationFields(errs)
	}

	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, storageErr(err, "user")
	}
	if p.Email != nil {
		u.Email = strings.TrimSpace(strings.ToLower(*p.Email))
	}
	if p.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*p.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		u.Password = string(hash)
	}
	if p.Role != nil {
		role, _ := models.ParseRole(*p.Role)
		u.Role = role
	}
	if p.FirstName != nil {
		u.FirstName = strings.TrimSpace(*p.FirstName)
	}
	if p.LastName != nil {
		u.LastName = strings.TrimSpace(*p.LastName)
	}
	if err := s.db.WithContext(ctx).Save(&u).Error; err != nil {
		return nil, storageErr(err, "user")
	}
	return &u, nil
}

// Delete refuses to remove a user that still owns a student record; the
// dependency is surfaced as a conflict rather than a storage error.
func (s *UserService) Delete(ctx context.Context, caller *models.User, id uint) *apperr.Error {
	if !authz.Can(caller.Role, authz.ActionDelete, authz.ResourceUser) {
		return forbidden(caller.Role)
	}
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Student{}).Where("user_id = ?", id).Count(&n).Error; err != nil {
		return apperr.Internal(err)
	}
	if n > 0 {
		return apperr.Conflict("user is referenced by a student record")
	}
	res := s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return storageErr(res.Error, "user")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("user")
	}
	return nil
}
