package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Vipul1432/EmployeeManagementSystem/internal/dto"
	"github.com/Vipul1432/EmployeeManagementSystem/internal/service"
	"github.com/Vipul1432/EmployeeManagementSystem/pkg/response"
)

// 员工模块错误码
const CodeEmployeeNotFound = 15001

// 员工接口的 500 响应共用一条提示语（部门接口按操作区分），具体错误放在 details
const msgEmployeeInternal = "Internal server error"

// EmployeeHandler 员工模块 HTTP 处理器
type EmployeeHandler struct {
	empSvc service.EmployeeService
}

// NewEmployeeHandler 创建 EmployeeHandler
func NewEmployeeHandler(empSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{empSvc: empSvc}
}

// GetAllEmployees 获取全部员工
//
//	@Summary	List employees
//	@Tags		employee
//	@Produce	json
//	@Success	200	{object}	response.Response{data=[]dto.EmployeeDto}
//	@Failure	500	{object}	response.Response
//	@Router		/api/employee [get]
func (h *EmployeeHandler) GetAllEmployees(c *gin.Context) {
	emps, err := h.empSvc.GetAllEmployees(c.Request.Context())
	if err != nil {
		response.InternalError(c, msgEmployeeInternal, err)
		return
	}
	response.OK(c, emps)
}

// GetEmployeeByID 获取员工详情
//
//	@Summary	Get an employee
//	@Tags		employee
//	@Produce	json
//	@Param		id	path		int	true	"Employee ID"
//	@Success	200	{object}	response.Response{data=dto.EmployeeDto}
//	@Failure	400	{object}	response.Response
//	@Failure	404	{object}	response.Response
//	@Failure	500	{object}	response.Response
//	@Router		/api/employee/{id} [get]
func (h *EmployeeHandler) GetEmployeeByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	emp, err := h.empSvc.GetEmployeeByID(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, msgEmployeeInternal, err)
		return
	}
	if emp == nil {
		employeeNotFound(c, id)
		return
	}
	response.OK(c, emp)
}

// AddEmployee 新增员工
//
//	@Summary	Add an employee
//	@Tags		employee
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.EmployeeDto	true	"Employee"
//	@Success	200		{object}	response.Response{data=dto.EmployeeDto}
//	@Failure	400		{object}	response.Response
//	@Failure	500		{object}	response.Response
//	@Router		/api/employee [post]
func (h *EmployeeHandler) AddEmployee(c *gin.Context) {
	var req dto.EmployeeDto
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.empSvc.AddEmployee(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, msgEmployeeInternal, err)
		return
	}
	response.OKMessage(c, "Employee added successfully.", created)
}

// UpdateEmployee 更新员工，以路径 ID 为准
//
//	@Summary	Update an employee
//	@Tags		employee
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Employee ID"
//	@Param		request	body		dto.EmployeeDto	true	"Employee"
//	@Success	200		{object}	response.Response
//	@Failure	400		{object}	response.Response
//	@Failure	404		{object}	response.Response
//	@Failure	500		{object}	response.Response
//	@Router		/api/employee/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.EmployeeDto
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	existing, err := h.empSvc.GetEmployeeByID(ctx, id)
	if err != nil {
		response.InternalError(c, msgEmployeeInternal, err)
		return
	}
	if existing == nil {
		employeeNotFound(c, id)
		return
	}

	if err := h.empSvc.UpdateEmployee(ctx, id, &req); err != nil {
		response.InternalError(c, msgEmployeeInternal, err)
		return
	}
	response.OKMessage(c, fmt.Sprintf("Employee with ID %d updated successfully.", id), nil)
}

// DeleteEmployee 删除员工
//
//	@Summary	Delete an employee
//	@Tags		employee
//	@Produce	json
//	@Param		id	path		int	true	"Employee ID"
//	@Success	200	{object}	response.Response
//	@Failure	400	{object}	response.Response
//	@Failure	404	{object}	response.Response
//	@Failure	500	{object}	response.Response
//	@Router		/api/employee/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	existing, err := h.empSvc.GetEmployeeByID(ctx, id)
	if err != nil {
		response.InternalError(c, msgEmployeeInternal, err)
		return
	}
	if existing == nil {
		employeeNotFound(c, id)
		return
	}

	if err := h.empSvc.DeleteEmployee(ctx, id); err != nil {
		response.InternalError(c, msgEmployeeInternal, err)
		return
	}
	response.OKMessage(c, fmt.Sprintf("Employee with ID %d deleted successfully.", id), nil)
}

func employeeNotFound(c *gin.Context, id int) {
	response.NotFound(c, CodeEmployeeNotFound, fmt.Sprintf("Employee with ID %d not found.", id))
}
