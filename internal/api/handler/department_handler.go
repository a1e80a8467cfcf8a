package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Vipul1432/EmployeeManagementSystem/internal/dto"
	"github.com/Vipul1432/EmployeeManagementSystem/internal/service"
	"github.com/Vipul1432/EmployeeManagementSystem/pkg/response"
)

// 部门模块错误码
const CodeDepartmentNotFound = 14001

// DepartmentHandler 部门模块 HTTP 处理器
type DepartmentHandler struct {
	deptSvc service.DepartmentService
}

// NewDepartmentHandler 创建 DepartmentHandler
func NewDepartmentHandler(deptSvc service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptSvc: deptSvc}
}

// GetAllDepartments 获取全部部门
//
//	@Summary	List departments
//	@Tags		department
//	@Produce	json
//	@Success	200	{object}	response.Response{data=[]dto.DepartmentDto}
//	@Failure	500	{object}	response.Response
//	@Router		/api/department [get]
func (h *DepartmentHandler) GetAllDepartments(c *gin.Context) {
	depts, err := h.deptSvc.GetAllDepartments(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Error retrieving departments", err)
		return
	}
	response.OK(c, depts)
}

// GetDepartmentByID 获取部门详情
//
//	@Summary	Get a department
//	@Tags		department
//	@Produce	json
//	@Param		id	path		int	true	"Department ID"
//	@Success	200	{object}	response.Response{data=dto.DepartmentDto}
//	@Failure	400	{object}	response.Response
//	@Failure	404	{object}	response.Response
//	@Failure	500	{object}	response.Response
//	@Router		/api/department/{id} [get]
func (h *DepartmentHandler) GetDepartmentByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	dept, err := h.deptSvc.GetDepartmentByID(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, "Error retrieving department", err)
		return
	}
	if dept == nil {
		departmentNotFound(c, id)
		return
	}
	response.OK(c, dept)
}

// AddDepartment 新增部门
//
//	@Summary	Add a department
//	@Tags		department
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.DepartmentDto	true	"Department"
//	@Success	200		{object}	response.Response{data=dto.DepartmentDto}
//	@Failure	400		{object}	response.Response
//	@Failure	500		{object}	response.Response
//	@Router		/api/department [post]
func (h *DepartmentHandler) AddDepartment(c *gin.Context) {
	var req dto.DepartmentDto
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.deptSvc.AddDepartment(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, "Error adding department", err)
		return
	}
	response.OKMessage(c, "Department added successfully.", created)
}

// UpdateDepartment 修改部门名称，请求体为 JSON 字符串
//
//	@Summary	Rename a department
//	@Tags		department
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int		true	"Department ID"
//	@Param		request	body		string	true	"New department name"
//	@Success	200		{object}	response.Response
//	@Failure	400		{object}	response.Response
//	@Failure	404		{object}	response.Response
//	@Failure	500		{object}	response.Response
//	@Router		/api/department/{id} [put]
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	name, ok := bindDepartmentName(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	existing, err := h.deptSvc.GetDepartmentByID(ctx, id)
	if err != nil {
		response.InternalError(c, "Error updating department", err)
		return
	}
	if existing == nil {
		departmentNotFound(c, id)
		return
	}

	if err := h.deptSvc.UpdateDepartment(ctx, id, name); err != nil {
		response.InternalError(c, "Error updating department", err)
		return
	}
	response.OKMessage(c, fmt.Sprintf("Department with ID %d updated successfully.", id), nil)
}

// DeleteDepartment 删除部门
//
//	@Summary	Delete a department
//	@Tags		department
//	@Produce	json
//	@Param		id	path		int	true	"Department ID"
//	@Success	200	{object}	response.Response
//	@Failure	400	{object}	response.Response
//	@Failure	404	{object}	response.Response
//	@Failure	500	{object}	response.Response
//	@Router		/api/department/{id} [delete]
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	existing, err := h.deptSvc.GetDepartmentByID(ctx, id)
	if err != nil {
		response.InternalError(c, "Error deleting department", err)
		return
	}
	if existing == nil {
		departmentNotFound(c, id)
		return
	}

	if err := h.deptSvc.DeleteDepartment(ctx, id); err != nil {
		response.InternalError(c, "Error deleting department", err)
		return
	}
	response.OKMessage(c, fmt.Sprintf("Department with ID %d deleted successfully.", id), nil)
}

func departmentNotFound(c *gin.Context, id int) {
	response.NotFound(c, CodeDepartmentNotFound, fmt.Sprintf("Department with ID %d not found.", id))
}
