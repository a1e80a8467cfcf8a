package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Vipul1432/EmployeeManagementSystem/internal/model"
	"github.com/Vipul1432/EmployeeManagementSystem/internal/repository"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = errors.New("failed to generate spreadsheet")

// 工作表名称
const (
	employeeSheet   = "Employees"
	departmentSheet = "Departments"
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出全部员工与部门为 Excel (.xlsx)，只读，不修改任何数据
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - Sheet "Employees"：ID / Name / Age / Salary / Department
//   - Sheet "Departments"：ID / Department / Headcount
type ExportService interface {
	ExportEmployees(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

func (s *exportService) ExportEmployees(ctx context.Context) (*bytes.Buffer, string, error) {
	// 1. 查询数据
	depts, err := s.repo.Department.GetAll(ctx)
	if err != nil {
		s.logger.Error("查询部门失败", zap.Error(err))
		return nil, "", err
	}
	emps, err := s.repo.Employee.GetAll(ctx)
	if err != nil {
		s.logger.Error("查询员工失败", zap.Error(err))
		return nil, "", err
	}

	deptNames := make(map[int]string, len(depts))
	for _, d := range depts {
		deptNames[d.ID] = d.DepartmentName
	}
	headcount := make(map[int]int, len(depts))
	for _, e := range emps {
		headcount[e.DepartmentID]++
	}

	// 2. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", employeeSheet); err != nil {
		s.logger.Error("初始化工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	if _, err := f.NewSheet(departmentSheet); err != nil {
		s.logger.Error("初始化工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	moneyFmt := "#,##0.00"
	moneyStyle, _ := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})

	if err := writeEmployeeSheet(f, emps, deptNames, headerStyle, moneyStyle); err != nil {
		s.logger.Error("写入员工工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	if err := writeDepartmentSheet(f, depts, headcount, headerStyle); err != nil {
		s.logger.Error("写入部门工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	// 3. 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("employees_%s.xlsx", s.now().Format("20060102"))
	return buf, filename, nil
}

func writeEmployeeSheet(f *excelize.File, emps []model.Employee, deptNames map[int]string, headerStyle, moneyStyle int) error {
	headers := []interface{}{"ID", "Name", "Age", "Salary", "Department"}
	if err := f.SetSheetRow(employeeSheet, "A1", &headers); err != nil {
		return err
	}
	if err := f.SetCellStyle(employeeSheet, "A1", "E1", headerStyle); err != nil {
		return err
	}
	f.SetColWidth(employeeSheet, "B", "B", 24)
	f.SetColWidth(employeeSheet, "D", "D", 14)
	f.SetColWidth(employeeSheet, "E", "E", 28)

	for i, e := range emps {
		row := i + 2
		values := []interface{}{e.ID, e.Name, e.Age, e.Salary.InexactFloat64(), deptNames[e.DepartmentID]}
		if err := f.SetSheetRow(employeeSheet, cell("A", row), &values); err != nil {
			return err
		}
		if err := f.SetCellStyle(employeeSheet, cell("D", row), cell("D", row), moneyStyle); err != nil {
			return err
		}
	}
	return nil
}

func writeDepartmentSheet(f *excelize.File, depts []model.Department, headcount map[int]int, headerStyle int) error {
	headers := []interface{}{"ID", "Department", "Headcount"}
	if err := f.SetSheetRow(departmentSheet, "A1", &headers); err != nil {
		return err
	}
	if err := f.SetCellStyle(departmentSheet, "A1", "C1", headerStyle); err != nil {
		return err
	}
	f.SetColWidth(departmentSheet, "B", "B", 28)

	for i, d := range depts {
		values := []interface{}{d.ID, d.DepartmentName, headcount[d.ID]}
		if err := f.SetSheetRow(departmentSheet, cell("A", i+2), &values); err != nil {
			return err
		}
	}
	return nil
}

// ── 辅助函数 ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
