package repository

import (
	"gorm.io/gorm"

	"github.com/Vipul1432/EmployeeManagementSystem/internal/model"
)

// DepartmentRepository 部门数据访问接口
type DepartmentRepository = CRUDRepository[model.Department]

// EmployeeRepository 员工数据访问接口
type EmployeeRepository = CRUDRepository[model.Employee]

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Department DepartmentRepository
	Employee   EmployeeRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Department: NewGormRepo[model.Department](db),
		Employee:   NewGormRepo[model.Employee](db),
	}
}
