package game

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rohand-19/gully/internal/common"
	"github.com/rohand-19/gully/internal/team"
	"github.com/rohand-19/gully/internal/user"
	"github.com/rohand-19/gully/pkg/responses"
)

// maxSaveAttempts bounds the reload-and-reapply loop when a concurrent ball
// submission wins the version race.
const maxSaveAttempts = 3

// GameController handles game-related HTTP requests.
type GameController struct {
	repo     GameRepository
	teamRepo team.TeamRepository
	userRepo user.UserRepository
}

// NewGameController creates a new game controller.
func NewGameController(repo GameRepository, teamRepo team.TeamRepository, userRepo user.UserRepository) *GameController {
	return &GameController{
		repo:     repo,
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

// --- DTOs for requests ---

// StartGameRequest defines the request payload for starting a game.
type StartGameRequest struct {
	DifficultyLevel DifficultyLevel `json:"difficulty_level" binding:"required,oneof=easy medium hard"`
	NoOfOvers       int             `json:"no_of_overs" binding:"required,min=1,max=50"`
	TotalRunsNeeded int             `json:"total_runs_needed" binding:"required,min=1,max=1000"`
}

// UpdateScoreRequest defines the request payload for recording a ball.
// Runs and Wicket are pointers so zero values still satisfy "required".
type UpdateScoreRequest struct {
	MatchCode string   `json:"match_code" binding:"required"`
	Runs      *int     `json:"runs" binding:"required,min=0,max=6"`
	Wicket    *bool    `json:"wicket" binding:"required"`
	Angle     *float64 `json:"angle,omitempty"`
}

// CurrentStats is the live scoreboard returned with every recorded ball.
type CurrentStats struct {
	TotalRuns    int    `json:"total_runs"`
	TotalWickets int    `json:"total_wickets"`
	OversBowled  string `json:"overs_bowled"`
	Target       int    `json:"target"`
}

// UpdateScoreResponse is the payload returned after a ball is recorded.
type UpdateScoreResponse struct {
	CurrentStats CurrentStats `json:"current_stats"`
	LastBall     Ball         `json:"last_ball"`
	Status       MatchStatus  `json:"status"`
}

// @Summary      Start a new game
// @Description  Starts a match for the authenticated user. The user must have joined an existing team; the team name is snapshotted onto the match.
// @Tags         Games
// @Accept       json
// @Produce      json
// @Param        game  body  StartGameRequest  true  "Game parameters"
// @Success      201  {object}  responses.SuccessResponse
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      403  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /games/start [post]
func (gc *GameController) StartGame(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req StartGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	u, err := gc.userRepo.GetUserByID(userID)
	if err != nil {
		responses.NotFound(c, "User")
		return
	}
	if u.Team == "" {
		responses.Forbidden(c, "You must join a team before starting a game.")
		return
	}

	t, err := gc.teamRepo.GetTeamByName(u.Team)
	if err != nil {
		responses.InternalServerError(c, "Failed to look up team: "+err.Error())
		return
	}
	if t == nil {
		responses.SendError(c, http.StatusNotFound, "The team '"+u.Team+"' you are currently associated with does not exist. Please join a valid team.")
		return
	}

	m := Match{
		MatchCode:       NewMatchCode(),
		PlayerID:        userID,
		TeamID:          t.ID,
		TeamName:        t.Name, // snapshot, survives later team renames
		DifficultyLevel: req.DifficultyLevel,
		OversLimit:      req.NoOfOvers,
		TargetRuns:      req.TotalRunsNeeded,
		Overs:           Overs{},
		Status:          StatusInProgress,
	}
	if err := gc.repo.CreateMatch(&m); err != nil {
		responses.InternalServerError(c, "Failed to start game: "+err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Game started successfully", gin.H{
		"game_id":    m.ID,
		"match_code": m.MatchCode,
		"status":     m.Status,
		"msg":        "Game On! Good luck.",
	})
}

// @Summary      Record a ball
// @Description  Appends a ball to the caller's in-progress match and returns the updated scoreboard. Concurrent submissions for the same match are serialized by an optimistic version check with bounded retry.
// @Tags         Games
// @Accept       json
// @Produce      json
// @Param        ball  body  UpdateScoreRequest  true  "Ball outcome"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      409  {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /games/update-score [patch]
func (gc *GameController) UpdateScore(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		m, err := gc.repo.GetActiveMatchForPlayer(req.MatchCode, userID)
		if err != nil {
			responses.InternalServerError(c, "Failed to load game: "+err.Error())
			return
		}
		if m == nil {
			// Also covers matches owned by someone else: the lookup is
			// scoped to the caller, so another player's match is
			// indistinguishable from a missing one.
			responses.NotFound(c, "Active game for this match code")
			return
		}

		result, outcome, err := ApplyBall(m, *req.Runs, *req.Wicket, req.Angle)
		if errors.Is(err, ErrMatchCompleted) || errors.Is(err, ErrOversExhausted) {
			responses.BadRequest(c, err.Error())
			return
		}
		if err != nil {
			responses.InternalServerError(c, "Failed to apply ball: "+err.Error())
			return
		}

		if err := gc.repo.SaveBallUpdate(m); err != nil {
			if errors.Is(err, ErrVersionConflict) {
				continue // reload and re-apply on a fresh copy
			}
			responses.InternalServerError(c, "Failed to save game: "+err.Error())
			return
		}

		responses.SendSuccess(c, http.StatusOK, ResultMessage(outcome, m.TargetRuns, result.TotalRuns), UpdateScoreResponse{
			CurrentStats: CurrentStats{
				TotalRuns:    result.TotalRuns,
				TotalWickets: result.TotalWickets,
				OversBowled:  result.OversBowled,
				Target:       m.TargetRuns,
			},
			LastBall: result.Ball,
			Status:   m.Status,
		})
		return
	}

	responses.Conflict(c, "Game is being updated concurrently, please retry")
}

// @Summary      List the caller's games
// @Tags         Games
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse
// @Security     BearerAuth
// @Router       /games/my-games [get]
func (gc *GameController) GetMyGames(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	matches, err := gc.repo.GetMatchesByPlayer(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve games: "+err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Games retrieved successfully", gin.H{
		"results": len(matches),
		"games":   matches,
	})
}

// @Summary      Team batting leaderboard
// @Description  Per-player cumulative runs and games played across all matches recorded for the team, best batter first.
// @Tags         Teams
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /teams/{team_id}/stats [get]
func (gc *GameController) GetTeamStats(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	t, err := gc.teamRepo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to look up team: "+err.Error())
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	matches, err := gc.repo.GetMatchesByTeam(t.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve matches: "+err.Error())
		return
	}

	stats, err := AggregatePlayerStats(matches, func(playerID uint) (string, string, error) {
		u, err := gc.userRepo.GetUserByID(playerID)
		if err != nil {
			return "", "", err
		}
		return u.Name, u.Email, nil
	})
	if err != nil {
		responses.InternalServerError(c, "Failed to aggregate stats: "+err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Team stats retrieved successfully", gin.H{
		"team":  t.Name,
		"stats": stats,
	})
}
