// Package mapper 负责实体与 DTO 之间的逐字段转换。
package mapper

import (
	"github.com/Vipul1432/EmployeeManagementSystem/internal/dto"
	"github.com/Vipul1432/EmployeeManagementSystem/internal/model"
)

// DepartmentToDTO 实体 → DTO；nil 映射为 nil
func DepartmentToDTO(dept *model.Department) *dto.DepartmentDto {
	if dept == nil {
		return nil
	}
	id := dept.ID
	return &dto.DepartmentDto{
		ID:             &id,
		DepartmentName: dept.DepartmentName,
	}
}

// DepartmentsToDTO 批量转换，空输入返回空切片而非 nil
func DepartmentsToDTO(depts []model.Department) []dto.DepartmentDto {
	result := make([]dto.DepartmentDto, 0, len(depts))
	for i := range depts {
		result = append(result, *DepartmentToDTO(&depts[i]))
	}
	return result
}

// DepartmentFromDTO DTO → 新实体；忽略 ID，由数据库分配
func DepartmentFromDTO(d *dto.DepartmentDto) *model.Department {
	if d == nil {
		return nil
	}
	return &model.Department{
		DepartmentName: d.DepartmentName,
	}
}

// OverlayDepartment 将 DTO 字段覆盖到已有实体上并返回该实体
// Employees 等关联数据保持不变；DTO 未携带 ID 时保留实体 ID
func OverlayDepartment(d *dto.DepartmentDto, dept *model.Department) *model.Department {
	if d == nil || dept == nil {
		return dept
	}
	if d.ID != nil {
		dept.ID = *d.ID
	}
	dept.DepartmentName = d.DepartmentName
	return dept
}
