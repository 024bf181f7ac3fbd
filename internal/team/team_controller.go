package team

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rohand-19/gully/pkg/responses"
)

// TeamController handles team-related HTTP requests.
type TeamController struct {
	repo TeamRepository
}

// NewTeamController creates a new team controller.
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

// CreateTeamRequest defines the request payload for creating a team.
type CreateTeamRequest struct {
	Name    string `json:"name" binding:"required,min=3,max=50"`
	TagLine string `json:"tag_line" binding:"required,min=5,max=100"`
	Scores  int    `json:"scores" binding:"omitempty,min=0"`
	Wins    int    `json:"wins" binding:"omitempty,min=0"`
	Draws   int    `json:"draws" binding:"omitempty,min=0"`
	Losts   int    `json:"losts" binding:"omitempty,min=0"`
}

// @Summary      Create a new team
// @Description  Creates a team players can join before starting matches. Admin only.
// @Tags         Teams
// @Accept       json
// @Produce      json
// @Param        team  body  CreateTeamRequest  true  "Team details"
// @Success      201  {object}  responses.SuccessResponse
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      403  {object}  responses.ErrorResponse
// @Failure      409  {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	existing, err := tc.repo.GetTeamByName(req.Name)
	if err != nil {
		responses.InternalServerError(c, "Failed to check team name: "+err.Error())
		return
	}
	if existing != nil {
		responses.Conflict(c, "A team with this name already exists")
		return
	}

	t := Team{
		Name:    req.Name,
		TagLine: req.TagLine,
		Scores:  req.Scores,
		Wins:    req.Wins,
		Draws:   req.Draws,
		Losts:   req.Losts,
	}
	if err := tc.repo.CreateTeam(&t); err != nil {
		responses.InternalServerError(c, "Failed to create team: "+err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", gin.H{
		"team_id":  t.ID,
		"name":     t.Name,
		"tag_line": t.TagLine,
	})
}

// @Summary      List all teams
// @Tags         Teams
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse
// @Security     BearerAuth
// @Router       /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	teams, err := tc.repo.GetAllTeams()
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve teams: "+err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Teams retrieved successfully", gin.H{
		"results": len(teams),
		"teams":   teams,
	})
}
