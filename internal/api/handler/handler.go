package handler

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Vipul1432/EmployeeManagementSystem/internal/service"
	apperrors "github.com/Vipul1432/EmployeeManagementSystem/pkg/errors"
	"github.com/Vipul1432/EmployeeManagementSystem/pkg/response"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Department *DepartmentHandler
	Employee   *EmployeeHandler
	Export     *ExportHandler
	Health     *HealthHandler
}

// Pinger 数据库连通性检查（*sql.DB 满足该接口）
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service, db Pinger) *Handler {
	return &Handler{
		Department: NewDepartmentHandler(svc.Department),
		Employee:   NewEmployeeHandler(svc.Employee),
		Export:     NewExportHandler(svc.Export),
		Health:     NewHealthHandler(db),
	}
}

// parseID 解析路径参数 id；非整数时写入 400 并返回 false
func parseID(c *gin.Context) (int, bool) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		_ = c.Error(fmt.Errorf("%w: %q", apperrors.ErrInvalidID, raw))
		response.BadRequest(c, response.CodeInvalidID, "The value '"+raw+"' is not a valid id.")
		return 0, false
	}
	return id, true
}
