package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/radipleven/school-gradebook-project/config"
	"github.com/radipleven/school-gradebook-project/database"
	"github.com/radipleven/school-gradebook-project/models"
)

func setup(t *testing.T) (*echo.Echo, *gorm.DB) {
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

	cfg := &config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		GradeMin:  0,
		GradeMax:  20,
	}
	e := echo.New()
	Register(e, db, cfg)
	return e, db
}

func addUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	u := models.User{Email: email, Password: string(hash), Role: role, FirstName: "T", LastName: "T"}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func do(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()
	rec := do(e, http.MethodPost, "/login", "", `{"email":"`+email+`","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

func TestHealthIsPublicText(t *testing.T) {
	e, _ := setup(t)
	rec := do(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DB OK", rec.Body.String())
}

func TestLoginFailureParityOverHTTP(t *testing.T) {
	e, db := setup(t)
	addUser(t, db, "known@school.local", models.RoleTeacher)

	wrongPass := do(e, http.MethodPost, "/login", "", `{"email":"known@school.local","password":"nope"}`)
	noUser := do(e, http.MethodPost, "/login", "", `{"email":"ghost@school.local","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, noUser.Code)
	assert.Equal(t, wrongPass.Body.String(), noUser.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e, _ := setup(t)
	for _, path := range []string{"/users", "/students", "/grades", "/absences", "/stats/avg_grade"} {
		rec := do(e, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestUserCreateForbiddenForDirectorOverHTTP(t *testing.T) {
	e, db := setup(t)
	addUser(t, db, "director@school.local", models.RoleDirector)
	token := login(t, e, "director@school.local")

	rec := do(e, http.MethodPost, "/users", token,
		`{"email":"n@school.local","password":"pw","role":"student","first_name":"N","last_name":"S"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestParentStudentFlowOverHTTP(t *testing.T) {
	e, db := setup(t)
	addUser(t, db, "admin@school.local", models.RoleAdmin)
	parentA := addUser(t, db, "pa@school.local", models.RoleParent)
	addUser(t, db, "pb@school.local", models.RoleParent)
	owner := addUser(t, db, "kid@school.local", models.RoleStudent)
	st := models.Student{UserID: owner.ID, Class: "5A"}
	require.NoError(t, db.Create(&st).Error)

	adminTok := login(t, e, "admin@school.local")
	parentATok := login(t, e, "pa@school.local")
	parentBTok := login(t, e, "pb@school.local")

	rec := do(e, http.MethodPost, "/parent_students", adminTok,
		`{"parent_id":`+itoa(parentA.ID)+`,"student_id":`+itoa(st.ID)+`}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// the linked parent sees exactly one record
	rec = do(e, http.MethodGet, "/parent_students/"+itoa(parentA.ID), parentATok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var links []models.ParentStudent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &links))
	require.Len(t, links, 1)
	assert.Equal(t, parentA.ID, links[0].ParentID)
	assert.Equal(t, st.ID, links[0].StudentID)

	// a different parent on the same path is Forbidden
	rec = do(e, http.MethodGet, "/parent_students/"+itoa(parentA.ID), parentBTok, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// delete by pair, then the second delete observes not-found
	rec = do(e, http.MethodDelete, "/parent_students/"+itoa(parentA.ID)+"/"+itoa(st.ID), adminTok, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(e, http.MethodDelete, "/parent_students/"+itoa(parentA.ID)+"/"+itoa(st.ID), adminTok, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGradeListFilteredOverHTTP(t *testing.T) {
	e, db := setup(t)
	teacher := addUser(t, db, "teach@school.local", models.RoleTeacher)
	ownerA := addUser(t, db, "a@school.local", models.RoleStudent)
	ownerB := addUser(t, db, "b@school.local", models.RoleStudent)
	stA := models.Student{UserID: ownerA.ID, Class: "5A"}
	stB := models.Student{UserID: ownerB.ID, Class: "5B"}
	require.NoError(t, db.Create(&stA).Error)
	require.NoError(t, db.Create(&stB).Error)
	require.NoError(t, db.Create(&models.Grade{StudentID: stA.ID, TeacherID: teacher.ID, Subject: "math", Value: 12}).Error)
	require.NoError(t, db.Create(&models.Grade{StudentID: stB.ID, TeacherID: teacher.ID, Subject: "math", Value: 18}).Error)

	tokA := login(t, e, "a@school.local")
	rec := do(e, http.MethodGet, "/grades", tokA, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var grades []models.Grade
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grades))
	require.Len(t, grades, 1)
	assert.Equal(t, stA.ID, grades[0].StudentID)

	tokT := login(t, e, "teach@school.local")
	rec = do(e, http.MethodGet, "/grades", tokT, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grades))
	assert.Len(t, grades, 2)
}

func TestStatsOverHTTP(t *testing.T) {
	e, db := setup(t)
	teacher := addUser(t, db, "teach@school.local", models.RoleTeacher)
	owner := addUser(t, db, "a@school.local", models.RoleStudent)
	st := models.Student{UserID: owner.ID, Class: "5A"}
	require.NoError(t, db.Create(&st).Error)
	for _, v := range []int{12, 16, 20} {
		require.NoError(t, db.Create(&models.Grade{StudentID: st.ID, TeacherID: teacher.ID, Subject: "math", Value: v}).Error)
	}

	tok := login(t, e, "a@school.local")
	rec := do(e, http.MethodGet, "/stats/avg_grade", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []struct {
		StudentID uint    `json:"student_id"`
		AvgGrade  float64 `json:"avg_grade"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, st.ID, rows[0].StudentID)
	assert.InDelta(t, 16.0, rows[0].AvgGrade, 1e-9)
}

func itoa(n uint) string { return strconv.FormatUint(uint64(n), 10) }
