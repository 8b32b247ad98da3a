package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/radipleven/school-gradebook-project/apperr"
	"github.com/radipleven/school-gradebook-project/models"
)

// StatsService serves the aggregate endpoints. Any authenticated caller
// may read them; students with no grades or absences simply do not appear
// in the grouped result.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{db: db} }

type StudentAvgGrade struct {
	StudentID uint    `json:"student_id"`
	AvgGrade  float64 `json:"avg_grade"`
}

type StudentAbsenceCount struct {
	StudentID    uint  `json:"student_id"`
	AbsenceCount int64 `json:"absence_count"`
}

func (s *StatsService) AvgGrades(ctx context.Context) ([]StudentAvgGrade, *apperr.Error) {
	rows := []StudentAvgGrade{}
	err := s.db.WithContext(ctx).
		Model(&models.Grade{}).
		Select("student_id, AVG(value) AS avg_grade").
		Group("student_id").
		Order("student_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return rows, nil
}

func (s *StatsService) AbsenceCounts(ctx context.Context) ([]StudentAbsenceCount, *apperr.Error) {
	rows := []StudentAbsenceCount{}
	err := s.db.WithContext(ctx).
		Model(&models.Absence{}).
		Select("student_id, COUNT(*) AS absence_count").
		Group("student_id").
		Order("student_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return rows, nil
}
