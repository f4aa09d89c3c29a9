package v1

import (
	"net/http"

	"reelskills-backend/internal/delivery/http/response"
	"reelskills-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

// HealthCheck godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func healthCheck(healthUC usecase.HealthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if healthUC == nil {
			response.Success(c, http.StatusOK, "System operational", nil)
			return
		}
		status, healthy := healthUC.Check(c.Request.Context())
		if !healthy {
			response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	}
}
