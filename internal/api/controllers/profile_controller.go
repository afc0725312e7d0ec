package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anskp/Flexi-Fit-sub001/internal/models/request_models"
	"github.com/anskp/Flexi-Fit-sub001/internal/services"
	"github.com/anskp/Flexi-Fit-sub001/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// SelectRole godoc
// @Summary Choose the account's role
// @Description Persists the role and re-issues the session token with the new role claim
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param request body request_models.SelectRoleRequest true "Role selection payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /select-role [post]
func (p *ProfileController) SelectRole(c *gin.Context) {
	var req request_models.SelectRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	result, err := p.profileService.SelectRole(c.Request.Context(), accountID, req.Role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Role selected successfully")
}

// CreateMemberProfile godoc
// @Summary Create the member profile for the authenticated account
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param request body request_models.MemberProfileRequest true "Member profile payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /create-member-profile [post]
func (p *ProfileController) CreateMemberProfile(c *gin.Context) {
	var req request_models.MemberProfileRequest
	p.createProfile(c, &req)
}

// CreateTrainerProfile godoc
// @Summary Create the trainer profile and its plans in one transaction
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param request body request_models.TrainerProfileRequest true "Trainer profile payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /create-trainer-profile [post]
func (p *ProfileController) CreateTrainerProfile(c *gin.Context) {
	var req request_models.TrainerProfileRequest
	p.createProfile(c, &req)
}

// CreateGymProfile godoc
// @Summary Create the gym and its plans in one transaction
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param request body request_models.GymProfileRequest true "Gym payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /create-gym-profile [post]
func (p *ProfileController) CreateGymProfile(c *gin.Context) {
	var req request_models.GymProfileRequest
	p.createProfile(c, &req)
}

// CreateMultiGymProfile godoc
// @Summary Create the multi-gym member profile
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param request body request_models.MultiGymProfileRequest true "Multi-gym member payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /create-multi-gym-profile [post]
func (p *ProfileController) CreateMultiGymProfile(c *gin.Context) {
	var req request_models.MultiGymProfileRequest
	p.createProfile(c, &req)
}

func (p *ProfileController) createProfile(c *gin.Context, req interface{}) {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	payload, ok := dereferencePayload(req)
	if !ok {
		utils.HandleServiceError(c, utils.ErrInvalidProfileType)
		return
	}

	profile, err := p.profileService.CreateProfile(c.Request.Context(), accountID, payload)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccessWithCode(c, http.StatusCreated, profile, "Profile created successfully")
}

// dereferencePayload converts the bound pointer back to the value type the
// profile service dispatches on.
func dereferencePayload(req interface{}) (request_models.ProfilePayload, bool) {
	switch v := req.(type) {
	case *request_models.MemberProfileRequest:
		return *v, true
	case *request_models.TrainerProfileRequest:
		return *v, true
	case *request_models.GymProfileRequest:
		return *v, true
	case *request_models.MultiGymProfileRequest:
		return *v, true
	default:
		return nil, false
	}
}
