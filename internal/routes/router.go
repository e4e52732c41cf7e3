// internal/routes/router.go
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MehvishSheikh/attendance-webapp/internal/config"
	"github.com/MehvishSheikh/attendance-webapp/internal/export"
	"github.com/MehvishSheikh/attendance-webapp/internal/handlers"
	"github.com/MehvishSheikh/attendance-webapp/internal/location"
	"github.com/MehvishSheikh/attendance-webapp/internal/middleware"
	"github.com/MehvishSheikh/attendance-webapp/internal/session"
)

func NewRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
	}))

	store := session.NewStore(db)
	svc := session.NewService(store, cfg.Timezone)
	resolver := location.NewResolver(db, cfg.LookupTimeout)
	engine := export.NewEngine(cfg.ExportYearMin, cfg.ExportYearMax)

	attH := handlers.NewAttendanceHandler(svc, resolver)
	locH := handlers.NewLocationHandler(db)
	adminH := handlers.NewAdminHandler(db, store, engine)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)
		api.GET("/locations", locH.List)
	}

	att := api.Group("/attendance")
	att.Use(middleware.AuthRequired(cfg.JWTSecret))
	{
		att.POST("/checkin", attH.CheckIn)
		att.GET("/status", attH.Status)
		att.POST("/checkout", attH.CheckOut)
		att.GET("/history", attH.History)
		att.GET("/summary", attH.Summary)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(cfg.JWTSecret), middleware.RequireAdmin())
	{
		admin.GET("/users", adminH.ListUsers)
		admin.DELETE("/users/:id", adminH.DeleteUser)
		admin.GET("/attendance", adminH.AllAttendance)
		admin.GET("/attendance/:userId", adminH.UserAttendance)
		admin.GET("/attendance/:userId/export", adminH.ExportAttendance)
	}

	return r
}
