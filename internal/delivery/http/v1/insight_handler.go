package v1

import (
	"net/http"

	"reelskills-backend/internal/delivery/http/response"
	"reelskills-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type InsightHandler struct {
	insightUC domain.InsightUsecase
}

func NewInsightHandler(r *gin.RouterGroup, insightUC domain.InsightUsecase) {
	handler := &InsightHandler{insightUC: insightUC}

	r.GET("/insights", handler.GetInsights)
	r.GET("/recommendations/skills", handler.GetRecommendations)
}

// GetInsights godoc
// @Summary      Portfolio insights
// @Description  Observations computed from the whole skill portfolio
// @Tags         insights
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Insight}
// @Failure      401  {object}  response.Response
// @Router       /insights [get]
// @Security     BearerAuth
func (h *InsightHandler) GetInsights(c *gin.Context) {
	insights, err := h.insightUC.GetPortfolioInsights(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Insights", insights)
}

// GetRecommendations godoc
// @Summary      Skill recommendations
// @Description  Skills to learn next, with market demand and growth
// @Tags         insights
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.SkillRecommendation}
// @Failure      401  {object}  response.Response
// @Router       /recommendations/skills [get]
// @Security     BearerAuth
func (h *InsightHandler) GetRecommendations(c *gin.Context) {
	recs, err := h.insightUC.GetRecommendations(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill recommendations", recs)
}
