package team

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	mw "github.com/rohand-19/gully/internal/middleware"
	"github.com/rohand-19/gully/pkg/rmiddleware"
)

// TeamRoutes sets up all team-related routes. Listing is open to any
// authenticated user; creating a team is admin-only.
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	teamRepo := NewGormTeamRepository(db)
	teamController := NewTeamController(teamRepo)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.GET("/teams", teamController.GetAllTeams)
		authRoutes.POST("/teams", rmiddleware.AdminMiddleware(), teamController.CreateTeam)
	}
}
