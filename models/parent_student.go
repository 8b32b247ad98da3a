package models

import "time"

// ParentStudent links a parent-role user to a student. The pair is the
// identity: a given parent-student edge exists at most once.
type ParentStudent struct {
	ParentID  uint      `json:"parent_id" gorm:"primaryKey;autoIncrement:false"`
	StudentID uint      `json:"student_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`
}

type LinkParentStudent struct {
	ParentID  uint `json:"parent_id"`
	StudentID uint `json:"student_id"`
}

func (p *LinkParentStudent) Validate() map[string]string {
	errs := map[string]string{}
	if p.ParentID == 0 {
		errs["parent_id"] = "parent_id is required"
	}
	if p.StudentID == 0 {
		errs["student_id"] = "student_id is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
