package user

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rohand-19/gully/config"
	"github.com/rohand-19/gully/internal/common"
	"github.com/rohand-19/gully/internal/team"
	"github.com/rohand-19/gully/pkg/responses"
	"github.com/rohand-19/gully/pkg/token"
	"github.com/rohand-19/gully/utils"
)

const DefaultUserRole = "user"

// ScoreTotaler resolves a player's cumulative run total across all their
// matches. Wired from the game package at route setup to keep this package
// independent of match storage.
type ScoreTotaler func(playerID uint) (int, error)

type UserController struct {
	repo       UserRepository
	teamRepo   team.TeamRepository
	config     *config.Config
	totalScore ScoreTotaler
}

func NewUserController(repo UserRepository, teamRepo team.TeamRepository, cfg *config.Config, totalScore ScoreTotaler) *UserController {
	return &UserController{
		repo:       repo,
		teamRepo:   teamRepo,
		config:     cfg,
		totalScore: totalScore,
	}
}

// @Summary      Register a new user
// @Description  Create a new user with name, email and password. Returns a JWT.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "User registration details"
// @Success      201  {object}  responses.SuccessResponse
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      403  {object}  responses.ErrorResponse
// @Failure      409  {object}  responses.ErrorResponse
// @Router       /users/register [post]
func (uc *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	if req.Role != "" {
		responses.Forbidden(c, "You are not allowed to set the user role manually. Registration is for regular users only.")
		return
	}

	_, err := uc.repo.GetUserByEmail(strings.ToLower(req.Email))
	if err == nil {
		responses.Conflict(c, "User with this email already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.InternalServerError(c, "Failed to check email: "+err.Error())
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "Error hashing password")
		return
	}

	newUser := &User{
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Age:      req.Age,
		Password: hashedPassword,
		Role:     DefaultUserRole,
	}
	if err := uc.repo.CreateUser(newUser); err != nil {
		responses.InternalServerError(c, "Failed to create user: "+err.Error())
		return
	}

	jwtToken, err := token.GenerateJWT(newUser.ID, newUser.Role, uc.config.JWT.AccessTokenSecret, uc.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		responses.InternalServerError(c, "Token generation failed")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "User registered successfully", AuthResponse{
		UserID: newUser.ID,
		Token:  jwtToken,
		Name:   newUser.Name,
		Email:  newUser.Email,
		Role:   newUser.Role,
	})
}

// @Summary      Login
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      401  {object}  responses.ErrorResponse
// @Router       /users/login [post]
func (uc *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	u, err := uc.repo.GetUserByEmail(strings.ToLower(req.Email))
	if err != nil || !utils.CheckPassword(u.Password, req.Password) {
		// Same answer for unknown email and wrong password.
		responses.Unauthorized(c, "Incorrect email or password")
		return
	}

	jwtToken, err := token.GenerateJWT(u.ID, u.Role, uc.config.JWT.AccessTokenSecret, uc.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		responses.InternalServerError(c, "Token generation failed")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Logged in successfully", AuthResponse{
		UserID: u.ID,
		Token:  jwtToken,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	})
}

// @Summary      Get the authenticated user's profile
// @Description  Profile fields plus the cumulative run total across all the user's matches.
// @Tags         Users
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse
// @Failure      401  {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /users/profile [get]
func (uc *UserController) GetProfile(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	u, err := uc.repo.GetUserByID(userID)
	if err != nil {
		responses.NotFound(c, "User")
		return
	}

	totalScore, err := uc.totalScore(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to compute total score: "+err.Error())
		return
	}

	teamName := u.Team
	if teamName == "" {
		teamName = "No team joined yet"
	}

	responses.SendSuccess(c, http.StatusOK, "User profile retrieved", ProfileResponse{
		UserID:     u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Age:        u.Age,
		Role:       u.Role,
		Team:       teamName,
		TotalScore: totalScore,
		CreatedAt:  u.CreatedAt,
	})
}

// @Summary      Logout
// @Description  JWTs are stateless; the client discards the token.
// @Tags         Users
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse
// @Security     BearerAuth
// @Router       /users/logout [post]
func (uc *UserController) Logout(c *gin.Context) {
	responses.SendSuccess(c, http.StatusOK, "Logged out successfully! Please delete your token on the client side.", nil)
}

// @Summary      Join a team
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        team  body  JoinTeamRequest  true  "Team to join"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /users/join-team [patch]
func (uc *UserController) JoinTeam(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req JoinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	t, err := uc.teamRepo.GetTeamByName(req.TeamName)
	if err != nil {
		responses.InternalServerError(c, "Failed to look up team: "+err.Error())
		return
	}
	if t == nil {
		responses.NotFound(c, "Team '"+req.TeamName+"'")
		return
	}

	if err := uc.repo.UpdateUserTeam(userID, t.Name); err != nil {
		responses.InternalServerError(c, "Failed to join team: "+err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Successfully joined team: "+t.Name, nil)
}
