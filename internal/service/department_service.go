package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Vipul1432/EmployeeManagementSystem/internal/dto"
	"github.com/Vipul1432/EmployeeManagementSystem/internal/mapper"
	"github.com/Vipul1432/EmployeeManagementSystem/internal/repository"
)

// DepartmentService 部门业务接口
//
// 查询不到时返回 nil DTO 而非错误；更新不存在的部门为静默空操作。
// 字段校验在 HTTP 边界完成，Service 不做重复校验。
type DepartmentService interface {
	GetAllDepartments(ctx context.Context) ([]dto.DepartmentDto, error)
	GetDepartmentByID(ctx context.Context, id int) (*dto.DepartmentDto, error)
	AddDepartment(ctx context.Context, req *dto.DepartmentDto) (*dto.DepartmentDto, error)
	// UpdateDepartment 仅修改部门名称
	UpdateDepartment(ctx context.Context, id int, departmentName string) error
	DeleteDepartment(ctx context.Context, id int) error
}

type departmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDepartmentService 创建 DepartmentService 实例
func NewDepartmentService(repo *repository.Repository, logger *zap.Logger) DepartmentService {
	return &departmentService{repo: repo, logger: logger}
}

func (s *departmentService) GetAllDepartments(ctx context.Context) ([]dto.DepartmentDto, error) {
	depts, err := s.repo.Department.GetAll(ctx)
	if err != nil {
		s.logger.Error("列出部门失败", zap.Error(err))
		return nil, err
	}
	return mapper.DepartmentsToDTO(depts), nil
}

func (s *departmentService) GetDepartmentByID(ctx context.Context, id int) (*dto.DepartmentDto, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("查询部门失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return mapper.DepartmentToDTO(dept), nil
}

func (s *departmentService) AddDepartment(ctx context.Context, req *dto.DepartmentDto) (*dto.DepartmentDto, error) {
	dept := mapper.DepartmentFromDTO(req)
	if err := s.repo.Department.Add(ctx, dept); err != nil {
		s.logger.Error("创建部门失败", zap.String("name", req.DepartmentName), zap.Error(err))
		return nil, err
	}
	return mapper.DepartmentToDTO(dept), nil
}

func (s *departmentService) UpdateDepartment(ctx context.Context, id int, departmentName string) error {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("查询部门失败", zap.Int("id", id), zap.Error(err))
		return err
	}
	if dept == nil {
		s.logger.Debug("部门不存在，跳过更新", zap.Int("id", id))
		return nil
	}

	dept.DepartmentName = departmentName

	if err := s.repo.Department.Update(ctx, dept); err != nil {
		s.logger.Error("更新部门失败", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *departmentService) DeleteDepartment(ctx context.Context, id int) error {
	if err := s.repo.Department.Delete(ctx, id); err != nil {
		s.logger.Error("删除部门失败", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}
