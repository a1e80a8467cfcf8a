package dto

import "github.com/shopspring/decimal"

// ── 员工模块 DTO ──

// EmployeeDto 员工传输对象（请求与响应共用）
type EmployeeDto struct {
	ID           *int            `json:"id,omitempty"`
	Name         string          `json:"name"         binding:"required,notblank,max=30"`
	Age          int             `json:"age"          binding:"min=21,max=100"`
	Salary       decimal.Decimal `json:"salary"`
	DepartmentID int             `json:"departmentId"`
}
