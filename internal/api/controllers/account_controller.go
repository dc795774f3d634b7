package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fittrack/internal/models/request_models"
	"fittrack/internal/models/response_models"
	"fittrack/internal/services"
	"fittrack/pkg/middleware"
	"fittrack/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} response_models.AuthResponse
// @Failure 400 {object} utils.APIError
// @Router /api/users/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	auth, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, auth)
}

// Login godoc
// @Summary Login to an account
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} response_models.AuthResponse
// @Failure 401 {object} utils.APIError
// @Router /api/users/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	auth, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, auth)
}

// GetProfile godoc
// @Summary Current account
// @Tags Users
// @Produce json
// @Success 200 {object} response_models.AccountResponse
// @Failure 401 {object} utils.APIError
// @Security BearerAuth
// @Router /api/users/profile [get]
func (a *AccountController) GetProfile(c *gin.Context) {
	account := middleware.CurrentAccount(c)
	if account == nil {
		utils.RespondUnauthorized(c)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, response_models.NewAccountResponse(account))
}

// UpdateProfile godoc
// @Summary Update the current account
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} response_models.AccountResponse
// @Failure 400 {object} utils.APIError
// @Failure 401 {object} utils.APIError
// @Security BearerAuth
// @Router /api/users/profile [patch]
func (a *AccountController) UpdateProfile(c *gin.Context) {
	var req request_models.UpdateProfileRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	account, err := a.accountService.UpdateProfile(c.Request.Context(), middleware.CurrentAccountID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, account)
}
