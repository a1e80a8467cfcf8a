package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Vipul1432/EmployeeManagementSystem/internal/dto"
	"github.com/Vipul1432/EmployeeManagementSystem/internal/mapper"
	"github.com/Vipul1432/EmployeeManagementSystem/internal/repository"
)

// EmployeeService 员工业务接口
type EmployeeService interface {
	GetAllEmployees(ctx context.Context) ([]dto.EmployeeDto, error)
	GetEmployeeByID(ctx context.Context, id int) (*dto.EmployeeDto, error)
	AddEmployee(ctx context.Context, req *dto.EmployeeDto) (*dto.EmployeeDto, error)
	// UpdateEmployee 以路径 ID 为准，将请求字段覆盖到已有员工上
	UpdateEmployee(ctx context.Context, id int, req *dto.EmployeeDto) error
	DeleteEmployee(ctx context.Context, id int) error
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

func (s *employeeService) GetAllEmployees(ctx context.Context) ([]dto.EmployeeDto, error) {
	emps, err := s.repo.Employee.GetAll(ctx)
	if err != nil {
		s.logger.Error("列出员工失败", zap.Error(err))
		return nil, err
	}
	return mapper.EmployeesToDTO(emps), nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, id int) (*dto.EmployeeDto, error) {
	emp, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("查询员工失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return mapper.EmployeeToDTO(emp), nil
}

func (s *employeeService) AddEmployee(ctx context.Context, req *dto.EmployeeDto) (*dto.EmployeeDto, error) {
	emp := mapper.EmployeeFromDTO(req)
	if err := s.repo.Employee.Add(ctx, emp); err != nil {
		s.logger.Error("创建员工失败",
			zap.String("name", req.Name),
			zap.Int("department_id", req.DepartmentID),
			zap.Error(err),
		)
		return nil, err
	}
	return mapper.EmployeeToDTO(emp), nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, id int, req *dto.EmployeeDto) error {
	existing, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("查询员工失败", zap.Int("id", id), zap.Error(err))
		return err
	}
	if existing == nil {
		s.logger.Debug("员工不存在，跳过更新", zap.Int("id", id))
		return nil
	}

	// 覆盖前复制一份，避免修改调用方的 DTO
	overlay := *req
	overlay.ID = &id
	emp := mapper.OverlayEmployee(&overlay, existing)

	if err := s.repo.Employee.Update(ctx, emp); err != nil {
		s.logger.Error("更新员工失败", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, id int) error {
	if err := s.repo.Employee.Delete(ctx, id); err != nil {
		s.logger.Error("删除员工失败", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}
