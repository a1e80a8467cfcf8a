package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Vipul1432/EmployeeManagementSystem/internal/service"
	"github.com/Vipul1432/EmployeeManagementSystem/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportEmployees 导出员工名册
//
//	@Summary	Export employees as xlsx
//	@Tags		employee
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success	200	{file}		binary
//	@Failure	500	{object}	response.Response
//	@Router		/api/employee/export [get]
func (h *ExportHandler) ExportEmployees(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportEmployees(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Error exporting employees", err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
