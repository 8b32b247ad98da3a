package models

import (
	"fmt"
	"strings"
	"time"
)

type Grade struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StudentID uint      `json:"student_id" gorm:"index;not null"`
	Subject   string    `json:"subject" gorm:"size:50;not null"`
	Value     int       `json:"value" gorm:"not null"`
	TeacherID uint      `json:"teacher_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NewGrade struct {
	StudentID uint   `json:"student_id"`
	Subject   string `json:"subject"`
	Value     int    `json:"value"`
	TeacherID uint   `json:"teacher_id"`
}

// Validate checks shape; min/max come from config (default 0-20 scale).
func (p *NewGrade) Validate(min, max int) map[string]string {
	errs := map[string]string{}
	if p.StudentID == 0 {
		errs["student_id"] = "student_id is required"
	}
	if p.TeacherID == 0 {
		errs["teacher_id"] = "teacher_id is required"
	}
	if strings.TrimSpace(p.Subject) == "" {
		errs["subject"] = "subject is required"
	}
	if p.Value < min || p.Value > max {
		errs["value"] = fmt.Sprintf("value must be between %d and %d", min, max)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type UpdateGrade struct {
	Subject *string `json:"subject"`
	Value   *int    `json:"value"`
}

func (p *UpdateGrade) Validate(min, max int) map[string]string {
	errs := map[string]string{}
	if p.Subject != nil && strings.TrimSpace(*p.Subject) == "" {
		errs["subject"] = "subject must not be empty"
	}
	if p.Value != nil && (*p.Value < min || *p.Value > max) {
		errs["value"] = fmt.Sprintf("value must be between %d and %d", min, max)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
