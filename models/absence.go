package models

import (
	"strings"
	"time"
)

// DateLayout is the wire format for absence dates.
const DateLayout = "2006-01-02"

type Absence struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StudentID uint      `json:"student_id" gorm:"index;not null"`
	Date      string    `json:"date" gorm:"size:10;not null"` // YYYY-MM-DD
	Reason    string    `json:"reason,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NewAbsence struct {
	StudentID uint   `json:"student_id"`
	Date      string `json:"date"`
	Reason    string `json:"reason"`
}

func (p *NewAbsence) Validate() map[string]string {
	errs := map[string]string{}
	if p.StudentID == 0 {
		errs["student_id"] = "student_id is required"
	}
	if _, err := time.Parse(DateLayout, strings.TrimSpace(p.Date)); err != nil {
		errs["date"] = "date must be YYYY-MM-DD"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type UpdateAbsence struct {
	Date   *string `json:"date"`
	Reason *string `json:"reason"`
}

func (p *UpdateAbsence) Validate() map[string]string {
	if p.Date != nil {
		if _, err := time.Parse(DateLayout, strings.TrimSpace(*p.Date)); err != nil {
			return map[string]string{"date": "date must be YYYY-MM-DD"}
		}
	}
	return nil
}
