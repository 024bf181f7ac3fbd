package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/rohand-19/gully/config"
	"github.com/rohand-19/gully/internal/game"
	"github.com/rohand-19/gully/internal/team"
	"github.com/rohand-19/gully/internal/user"
)

func SetupRoutes() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	appConfig := config.GetConfig()
	db := config.DB
	jwtSecret := appConfig.JWT.AccessTokenSecret

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>Gully</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>Welcome to Gully 🏏</h1>
					<p>Turn-based cricket scoring backend. See <a href="/swagger/index.html">swagger</a>.</p>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	user.UserRoutes(api, db, appConfig, playerTotalScore(db))
	team.TeamRoutes(api, db, jwtSecret)
	game.GameRoutes(api, db, jwtSecret)

	return r
}

// playerTotalScore bridges the user profile's cumulative score to the game
// package's match history without a package cycle.
func playerTotalScore(db *gorm.DB) user.ScoreTotaler {
	gameRepo := game.NewGormGameRepository(db)
	return func(playerID uint) (int, error) {
		matches, err := gameRepo.GetMatchesByPlayer(playerID)
		if err != nil {
			return 0, err
		}
		return game.PlayerTotal(matches, playerID), nil
	}
}
