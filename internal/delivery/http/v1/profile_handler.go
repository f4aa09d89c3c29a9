package v1

import (
	"net/http"

	"reelskills-backend/internal/delivery/http/response"
	"reelskills-backend/internal/domain"
	"reelskills-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
	insightUC domain.InsightUsecase
}

func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase, insightUC domain.InsightUsecase) {
	handler := &ProfileHandler{profileUC: profileUC, insightUC: insightUC}

	profile := r.Group("/profile")
	{
		profile.GET("/me", handler.GetProfile)
		profile.PUT("/me", handler.UpdateProfile)
		profile.GET("/completion", handler.GetCompletion)
	}
}

// GetProfile godoc
// @Summary      Get current profile
// @Description  Returns the profile of the logged-in user, creating it on first access
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      401  {object}  response.Response
// @Router       /profile/me [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileUC.GetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile", profile)
}

// UpdateProfile godoc
// @Summary      Update current profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request  body      domain.UpdateProfileInput  true  "Profile fields"
// @Success      200      {object}  response.Response{data=domain.Profile}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /profile/me [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req domain.UpdateProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	profile, err := h.profileUC.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// GetCompletion godoc
// @Summary      Profile completion
// @Description  Checklist of profile steps with completion percentage
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ProfileCompletion}
// @Failure      401  {object}  response.Response
// @Router       /profile/completion [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetCompletion(c *gin.Context) {
	completion, err := h.insightUC.GetProfileCompletion(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile completion", completion)
}
