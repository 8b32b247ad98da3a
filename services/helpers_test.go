package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/radipleven/school-gradebook-project/config"
	"github.com/radipleven/school-gradebook-project/database"
	"github.com/radipleven/school-gradebook-project/models"
)

var testCfg = &config.Config{
	JWTSecret: "test-secret",
	TokenTTL:  time.Hour,
	GradeMin:  0,
	GradeMax:  20,
}

// testDB opens an isolated in-memory database. A single connection keeps
// every statement on the same in-memory instance.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

var seedSeq int

// seedUser inserts a user with the given role; password is "secret".
func seedUser(t *testing.T, db *gorm.DB, role models.Role) *models.User {
	t.Helper()
	seedSeq++
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	u := models.User{
		Email:     fmt.Sprintf("%s%d@school.local", role, seedSeq),
		Password:  string(hash),
		Role:      role,
		FirstName: "Test",
		LastName:  string(role),
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedStudent(t *testing.T, db *gorm.DB, userID uint, class string) *models.Student {
	t.Helper()
	st := models.Student{UserID: userID, Class: class}
	require.NoError(t, db.Create(&st).Error)
	return &st
}

func seedGrade(t *testing.T, db *gorm.DB, studentID, teacherID uint, subject string, value int) *models.Grade {
	t.Helper()
	g := models.Grade{StudentID: studentID, TeacherID: teacherID, Subject: subject, Value: value}
	require.NoError(t, db.Create(&g).Error)
	return &g
}

func seedAbsence(t *testing.T, db *gorm.DB, studentID uint, date string) *models.Absence {
	t.Helper()
	a := models.Absence{StudentID: studentID, Date: date}
	require.NoError(t, db.Create(&a).Error)
	return &a
}

func seedLink(t *testing.T, db *gorm.DB, parentID, studentID uint) {
	t.Helper()
	require.NoError(t, db.Create(&models.ParentStudent{ParentID: parentID, StudentID: studentID}).Error)
}

func ctx() context.Context { return context.Background() }

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }
