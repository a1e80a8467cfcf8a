package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Vipul1432/EmployeeManagementSystem/internal/dto"
	"github.com/Vipul1432/EmployeeManagementSystem/pkg/response"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler 健康检查
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler 创建 HealthHandler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check 返回服务与数据库状态，数据库不可达时返回 503
//
//	@Summary	Health check
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	response.Response{data=dto.HealthResponse}
//	@Failure	503	{object}	response.Response{data=dto.HealthResponse}
//	@Router		/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if h.db == nil {
		response.OK(c, dto.HealthResponse{Status: "ok", Database: "unknown"})
		return
	}
	if err := h.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.Response{
			Code:    response.CodeUnavailable,
			Message: "database unavailable",
			Data:    dto.HealthResponse{Status: "degraded", Database: "down"},
			Details: err.Error(),
		})
		return
	}
	response.OK(c, dto.HealthResponse{Status: "ok", Database: "up"})
}
