package models

import (
	"regexp"
	"strings"
	"time"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash
	Role      Role      `json:"role" gorm:"size:20;not null"`
	FirstName string    `json:"first_name" gorm:"size:50;not null"`
	LastName  string    `json:"last_name" gorm:"size:50;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type NewUser struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (p *NewUser) Normalize() {
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))
	p.Role = strings.TrimSpace(p.Role)
	p.FirstName = strings.Join(strings.Fields(p.FirstName), " ")
	p.LastName = strings.Join(strings.Fields(p.LastName), " ")
}

func (p *NewUser) Validate() map[string]string {
	errs := map[string]string{}
	if !reEmail.MatchString(p.Email) {
		errs["email"] = "email must be a valid address"
	}
	if strings.TrimSpace(p.Password) == "" {
		errs["password"] = "password is required"
	}
	if _, ok := ParseRole(p.Role); !ok {
		errs["role"] = "role must be one of admin, director, teacher, parent, student"
	}
	if p.FirstName == "" {
		errs["first_name"] = "first name is required"
	}
	if p.LastName == "" {
		errs["last_name"] = "last name is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// UpdateUser is a patch body: nil fields are left untouched.
type UpdateUser struct {
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Role      *string `json:"role"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (p *UpdateUser) Validate() map[string]string {
	errs := map[string]string{}
	if p.Email != nil && !reEmail.MatchString(strings.TrimSpace(strings.ToLower(*p.Email))) {
		errs["email"] = "email must be a valid address"
	}
	if p.Password != nil && strings.TrimSpace(*p.Password) == "" {
		errs["password"] = "password must not be empty"
	}
	if p.Role != nil {
		if _, ok := ParseRole(*p.Role); !ok {
			errs["role"] = "role must be one of admin, director, teacher, parent, student"
		}
	}
	if p.FirstName != nil && strings.TrimSpace(*p.FirstName) == "" {
		errs["first_name"] = "first name must not be empty"
	}
	if p.LastName != nil && strings.TrimSpace(*p.LastName) == "" {
		errs["last_name"] = "last name must not be empty"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
