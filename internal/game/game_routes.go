package game

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	mw "github.com/rohand-19/gully/internal/middleware"
	"github.com/rohand-19/gully/internal/team"
	"github.com/rohand-19/gully/internal/user"
)

// GameRoutes sets up all game-related routes, including the team stats
// leaderboard (it aggregates match data, so it lives here rather than in the
// team package).
func GameRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	gameRepo := NewGormGameRepository(db)
	teamRepo := team.NewGormTeamRepository(db)
	userRepo := user.NewUserRepository(db)
	gameController := NewGameController(gameRepo, teamRepo, userRepo)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.POST("/games/start", gameController.StartGame)
		authRoutes.PATCH("/games/update-score", gameController.UpdateScore)
		authRoutes.GET("/games/my-games", gameController.GetMyGames)
		authRoutes.GET("/teams/:team_id/stats", gameController.GetTeamStats)
	}
}
