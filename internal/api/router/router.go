package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/Vipul1432/EmployeeManagementSystem/config"
	_ "github.com/Vipul1432/EmployeeManagementSystem/docs" // swagger 文档注册
	"github.com/Vipul1432/EmployeeManagementSystem/internal/api/handler"
	"github.com/Vipul1432/EmployeeManagementSystem/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
// limiter 为 nil 时不做限流
func Setup(cfg *config.Config, h *handler.Handler, limiter middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── 健康检查 ──
	r.GET("/health", h.Health.Check)

	// ── API 文档 ──
	if cfg.Server.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	api.Use(middleware.RateLimit(limiter, cfg.RateLimit.Requests, cfg.RateLimit.Window, logger))
	{
		// 部门模块
		departments := api.Group("/department")
		{
			departments.GET("", h.Department.GetAllDepartments)
			departments.GET("/:id", h.Department.GetDepartmentByID)
			departments.POST("", h.Department.AddDepartment)
			departments.PUT("/:id", h.Department.UpdateDepartment)
			departments.DELETE("/:id", h.Department.DeleteDepartment)
		}

		// 员工模块（静态路径 export 优先于 :id 匹配）
		employees := api.Group("/employee")
		{
			employees.GET("", h.Employee.GetAllEmployees)
			employees.GET("/export", h.Export.ExportEmployees)
			employees.GET("/:id", h.Employee.GetEmployeeByID)
			employees.POST("", h.Employee.AddEmployee)
			employees.PUT("/:id", h.Employee.UpdateEmployee)
			employees.DELETE("/:id", h.Employee.DeleteEmployee)
		}
	}

	return r
}
