package service

import (
	"go.uber.org/zap"

	"github.com/Vipul1432/EmployeeManagementSystem/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Department DepartmentService
	Employee   EmployeeService
	Export     ExportService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Department: NewDepartmentService(repo, logger),
		Employee:   NewEmployeeService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}
