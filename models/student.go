package models

import (
	"strings"
	"time"
)

type Student struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"` // 1:1 with users.id
	Class     string    `json:"class" gorm:"size:20;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StudentView is a Student joined with the owning user's name and email,
// the shape list/get responses use.
type StudentView struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Class     string    `json:"class"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type NewStudent struct {
	UserID uint   `json:"user_id"`
	Class  string `json:"class"`
}

func (p *NewStudent) Validate() map[string]string {
	errs := map[string]string{}
	if p.UserID == 0 {
		errs["user_id"] = "user_id is required"
	}
	if strings.TrimSpace(p.Class) == "" {
		errs["class"] = "class is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type UpdateStudent struct {
	Class *string `json:"class"`
}

func (p *UpdateStudent) Validate() map[string]string {
	if p.Class != nil && strings.TrimSpace(*p.Class) == "" {
		return map[string]string{"class": "class must not be empty"}
	}
	return nil
}
