package routes

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/radipleven/school-gradebook-project/config"
	"github.com/radipleven/school-gradebook-project/handlers"
	"github.com/radipleven/school-gradebook-project/middlewares"
	"github.com/radipleven/school-gradebook-project/services"
)

// Register wires all HTTP routes. Role checks live in the services via
// the authorization engine; the middleware here only resolves the caller.
func Register(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	auth := handlers.NewAuthHandler(services.NewAuthService(db, cfg))
	users := handlers.NewUserHandler(services.NewUserService(db))
	students := handlers.NewStudentHandler(services.NewStudentService(db, cfg))
	grades := handlers.NewGradeHandler(services.NewGradeService(db, cfg))
	absences := handlers.NewAbsenceHandler(services.NewAbsenceService(db, cfg))
	links := handlers.NewParentStudentHandler(services.NewParentLinkService(db))
	stats := handlers.NewStatsHandler(services.NewStatsService(db))
	health := handlers.NewHealthHandler(db)

	// Public
	e.GET("/health", health.Check)
	e.POST("/login", auth.Login)

	// Everything else requires a resolved caller.
	authMW := middlewares.RequireAuth(cfg.JWTSecret, db)
	api := e.Group("", authMW)

	api.POST("/users", users.Create)
	api.GET("/users", users.List)
	api.PUT("/users/:id", users.Update)
	api.DELETE("/users/:id", users.Delete)

	api.POST("/students", students.Create)
	api.GET("/students", students.List)
	api.GET("/students/:id", students.Get)
	api.PUT("/students/:id", students.Update)
	api.DELETE("/students/:id", students.Delete)

	api.POST("/grades", grades.Create)
	api.GET("/grades", grades.List)
	api.PUT("/grades/:id", grades.Update)
	api.DELETE("/grades/:id", grades.Delete)

	api.POST("/parent_students", links.Create)
	api.GET("/parent_students/:parent_id", links.List)
	api.DELETE("/parent_students/:parent_id/:student_id", links.Delete)

	api.POST("/absences", absences.Create)
	api.GET("/absences", absences.List)
	api.PUT("/absences/:id", absences.Update)
	api.DELETE("/absences/:id", absences.Delete)

	api.GET("/stats/avg_grade", stats.AvgGrades)
	api.GET("/stats/absence_count", stats.AbsenceCounts)
}
