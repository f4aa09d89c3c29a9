package v1

import (
	"net/http"

	"reelskills-backend/internal/delivery/http/response"
	"reelskills-backend/internal/domain"
	"reelskills-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(r *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	skills := r.Group("/skills")
	{
		skills.GET("", handler.ListSkills)
		skills.POST("", handler.CreateSkill)
		skills.GET("/:id", handler.GetSkill)
		skills.PATCH("/:id", handler.UpdateSkill)
		skills.DELETE("/:id", handler.DeleteSkill)
		skills.POST("/:id/advance", handler.AdvanceProficiency)
		skills.GET("/:id/improvements", handler.GetImprovements)
		skills.GET("/:id/learning-path", handler.GetLearningPath)
	}
}

// ListSkills godoc
// @Summary      List skills
// @Description  Skills of the current profile, newest first
// @Tags         skills
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Skill}
// @Failure      401  {object}  response.Response
// @Router       /skills [get]
// @Security     BearerAuth
func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillUC.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills", skills)
}

// CreateSkill godoc
// @Summary      Add a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        request  body      domain.CreateSkillInput  true  "Skill"
// @Success      201      {object}  response.Response{data=domain.SkillDetail}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /skills [post]
// @Security     BearerAuth
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req domain.CreateSkillInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	detail, err := h.skillUC.CreateSkill(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Skill created", detail)
}

// GetSkill godoc
// @Summary      Get a skill
// @Description  Skill with its ranked improvement suggestions
// @Tags         skills
// @Produce      json
// @Param        id   path      string  true  "Skill ID"
// @Success      200  {object}  response.Response{data=domain.SkillDetail}
// @Failure      404  {object}  response.Response
// @Router       /skills/{id} [get]
// @Security     BearerAuth
func (h *SkillHandler) GetSkill(c *gin.Context) {
	detail, err := h.skillUC.GetSkill(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill", detail)
}

// UpdateSkill godoc
// @Summary      Update a skill
// @Description  Partial update. An empty video_demo_url detaches the current video.
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Skill ID"
// @Param        request  body      domain.UpdateSkillInput  true  "Fields to change"
// @Success      200      {object}  response.Response{data=domain.SkillDetail}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /skills/{id} [patch]
// @Security     BearerAuth
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	var req domain.UpdateSkillInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	detail, err := h.skillUC.UpdateSkill(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill updated", detail)
}

// DeleteSkill godoc
// @Summary      Delete a skill
// @Tags         skills
// @Produce      json
// @Param        id   path      string  true  "Skill ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /skills/{id} [delete]
// @Security     BearerAuth
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	if err := h.skillUC.DeleteSkill(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill deleted", nil)
}

// AdvanceProficiency godoc
// @Summary      Advance proficiency
// @Description  Moves the skill one tier up. A master skill is returned unchanged.
// @Tags         skills
// @Produce      json
// @Param        id   path      string  true  "Skill ID"
// @Success      200  {object}  response.Response{data=domain.SkillDetail}
// @Failure      404  {object}  response.Response
// @Router       /skills/{id}/advance [post]
// @Security     BearerAuth
func (h *SkillHandler) AdvanceProficiency(c *gin.Context) {
	detail, err := h.skillUC.AdvanceProficiency(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Proficiency updated", detail)
}

// GetImprovements godoc
// @Summary      Improvement suggestions
// @Tags         skills
// @Produce      json
// @Param        id   path      string  true  "Skill ID"
// @Success      200  {object}  response.Response{data=[]domain.Improvement}
// @Failure      404  {object}  response.Response
// @Router       /skills/{id}/improvements [get]
// @Security     BearerAuth
func (h *SkillHandler) GetImprovements(c *gin.Context) {
	improvements, err := h.skillUC.GetImprovements(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Improvements", improvements)
}

// GetLearningPath godoc
// @Summary      Learning path
// @Description  Steps from the current tier to the next one
// @Tags         skills
// @Produce      json
// @Param        id   path      string  true  "Skill ID"
// @Success      200  {object}  response.Response{data=domain.LearningPath}
// @Failure      404  {object}  response.Response
// @Router       /skills/{id}/learning-path [get]
// @Security     BearerAuth
func (h *SkillHandler) GetLearningPath(c *gin.Context) {
	path, err := h.skillUC.GetLearningPath(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Learning path", path)
}
