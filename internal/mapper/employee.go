package mapper

import (
	"github.com/Vipul1432/EmployeeManagementSystem/internal/dto"
	"github.com/Vipul1432/EmployeeManagementSystem/internal/model"
)

// EmployeeToDTO 实体 → DTO；nil 映射为 nil
func EmployeeToDTO(emp *model.Employee) *dto.EmployeeDto {
	if emp == nil {
		return nil
	}
	id := emp.ID
	return &dto.EmployeeDto{
		ID:           &id,
		Name:         emp.Name,
		Age:          emp.Age,
		Salary:       emp.Salary,
		DepartmentID: emp.DepartmentID,
	}
}

// EmployeesToDTO 批量转换，空输入返回空切片而非 nil
func EmployeesToDTO(emps []model.Employee) []dto.EmployeeDto {
	result := make([]dto.EmployeeDto, 0, len(emps))
	for i := range emps {
		result = append(result, *EmployeeToDTO(&emps[i]))
	}
	return result
}

// EmployeeFromDTO DTO → 新实体；忽略 ID
func EmployeeFromDTO(d *dto.EmployeeDto) *model.Employee {
	if d == nil {
		return nil
	}
	return &model.Employee{
		Name:         d.Name,
		Age:          d.Age,
		Salary:       d.Salary,
		DepartmentID: d.DepartmentID,
	}
}

// OverlayEmployee 将 DTO 字段覆盖到已有实体上并返回该实体
// Department 关联保持不变
func OverlayEmployee(d *dto.EmployeeDto, emp *model.Employee) *model.Employee {
	if d == nil || emp == nil {
		return emp
	}
	if d.ID != nil {
		emp.ID = *d.ID
	}
	emp.Name = d.Name
	emp.Age = d.Age
	emp.Salary = d.Salary
	emp.DepartmentID = d.DepartmentID
	return emp
}
