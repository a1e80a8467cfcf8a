package dto

// ── 部门模块 DTO ──

// DepartmentDto 部门传输对象（请求与响应共用）
// ID 仅用于响应，新增时由数据库分配
type DepartmentDto struct {
	ID             *int   `json:"id,omitempty"`
	DepartmentName string `json:"departmentName" binding:"required,notblank,max=50"`
}

// DepartmentNameRule 部门名称校验规则，PUT 请求体为纯字符串时复用
// notblank 由 handler 包注册，拒绝仅含空白字符的名称
const DepartmentNameRule = "required,notblank,max=50"
