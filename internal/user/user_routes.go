package user

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rohand-19/gully/config"
	mw "github.com/rohand-19/gully/internal/middleware"
	"github.com/rohand-19/gully/internal/team"
)

// UserRoutes sets up all user-related routes. The totalScore func is wired
// from the game package in the router.
func UserRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, totalScore ScoreTotaler) {
	userRepo := NewUserRepository(db)
	teamRepo := team.NewGormTeamRepository(db)
	userController := NewUserController(userRepo, teamRepo, appConfig, totalScore)

	// Public routes
	userPublic := router.Group("/users")
	{
		userPublic.POST("/register", userController.Register)
		userPublic.POST("/login", userController.Login)
	}

	// Authenticated routes
	userProtected := router.Group("/users")
	userProtected.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		userProtected.GET("/profile", userController.GetProfile)
		userProtected.POST("/logout", userController.Logout)
		userProtected.PATCH("/join-team", userController.JoinTeam)
	}
}
