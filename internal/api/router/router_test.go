package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Vipul1432/EmployeeManagementSystem/config"
	"github.com/Vipul1432/EmployeeManagementSystem/internal/api/handler"
	"github.com/Vipul1432/EmployeeManagementSystem/internal/model"
	"github.com/Vipul1432/EmployeeManagementSystem/internal/repository"
	"github.com/Vipul1432/EmployeeManagementSystem/internal/service"
	"github.com/Vipul1432/EmployeeManagementSystem/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupEngine 组装完整依赖链：SQLite 内存库 → Repository → Service → Handler → Router
func setupEngine(t *testing.T, swagger bool) *gin.Engine {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("无法打开测试数据库: %v", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("AutoMigrate 失败: %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { sqlDB.Close() })

	cfg := &config.Config{
		Server:    config.ServerConfig{Port: 8080, BodyLimit: 1 << 20, SwaggerEnabled: swagger},
		RateLimit: config.RateLimitConfig{Requests: 100, Window: time.Minute},
	}

	svc := service.NewService(repository.NewRepository(db), zap.NewNop())
	return Setup(cfg, handler.NewHandler(svc, sqlDB), nil, zap.NewNop())
}

func call(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("响应不是合法 JSON: %v (%s)", err, w.Body.String())
	}
	return resp
}

// ═══════════════════════════════════════════════════════════
// End-to-end flows
// ═══════════════════════════════════════════════════════════

func TestRouter_DepartmentAndEmployeeLifecycle(t *testing.T) {
	r := setupEngine(t, false)

	w := call(r, http.MethodPost, "/api/department", `{"departmentName":"Engineering"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("创建部门: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = call(r, http.MethodPost, "/api/employee", `{"name":"Ann","age":30,"salary":50000,"departmentId":1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("创建员工: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = call(r, http.MethodGet, "/api/employee/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("查询员工: expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`"id":1`, `"name":"Ann"`, `"age":30`, `"salary":50000`, `"departmentId":1`} {
		if !strings.Contains(body, want) {
			t.Errorf("响应缺少 %s: %s", want, body)
		}
	}

	w = call(r, http.MethodPut, "/api/department/1", `"Platform"`)
	if w.Code != http.StatusOK {
		t.Fatalf("更新部门: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	w = call(r, http.MethodGet, "/api/department/1", "")
	if !strings.Contains(w.Body.String(), `"departmentName":"Platform"`) {
		t.Errorf("部门名称未更新: %s", w.Body.String())
	}

	w = call(r, http.MethodDelete, "/api/employee/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("删除员工: expected 200, got %d", w.Code)
	}
	w = call(r, http.MethodDelete, "/api/department/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("删除部门: expected 200, got %d", w.Code)
	}
}

func TestRouter_DeleteDepartmentRemovesItsEmployees(t *testing.T) {
	r := setupEngine(t, false)

	call(r, http.MethodPost, "/api/department", `{"departmentName":"Engineering"}`)
	call(r, http.MethodPost, "/api/department", `{"departmentName":"Finance"}`)
	call(r, http.MethodPost, "/api/employee", `{"name":"Ann","age":30,"salary":50000,"departmentId":1}`)
	call(r, http.MethodPost, "/api/employee", `{"name":"Bob","age":40,"salary":60000,"departmentId":2}`)

	w := call(r, http.MethodDelete, "/api/department/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("删除仍有员工的部门: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if resp := decode(t, w); resp.Message != "Department with ID 1 deleted successfully." {
		t.Errorf("unexpected message: %s", resp.Message)
	}

	if w := call(r, http.MethodGet, "/api/employee/1", ""); w.Code != http.StatusNotFound {
		t.Errorf("部门下的员工应一并删除: expected 404, got %d", w.Code)
	}
	if w := call(r, http.MethodGet, "/api/employee/2", ""); w.Code != http.StatusOK {
		t.Errorf("其他部门的员工应保留: expected 200, got %d", w.Code)
	}
}

func TestRouter_BlankNamesRejected(t *testing.T) {
	r := setupEngine(t, false)
	call(r, http.MethodPost, "/api/department", `{"departmentName":"Engineering"}`)

	tests := []struct {
		name, method, path, body string
	}{
		{"blank department name", http.MethodPost, "/api/department", `{"departmentName":"   "}`},
		{"blank rename", http.MethodPut, "/api/department/1", `"  "`},
		{"blank employee name", http.MethodPost, "/api/employee", `{"name":"   ","age":30,"salary":1,"departmentId":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := call(r, tt.method, tt.path, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if resp := decode(t, w); resp.Code != response.CodeValidationFailed {
				t.Errorf("expected code %d, got %d", response.CodeValidationFailed, resp.Code)
			}
		})
	}

	w := call(r, http.MethodGet, "/api/department/1", "")
	if !strings.Contains(w.Body.String(), `"departmentName":"Engineering"`) {
		t.Errorf("部门名称不应被改写: %s", w.Body.String())
	}
	w = call(r, http.MethodGet, "/api/employee", "")
	if resp := decode(t, w); len(resp.Data.([]interface{})) != 0 {
		t.Errorf("不应写入任何员工: %s", w.Body.String())
	}
}

func TestRouter_InvalidEmployeeNotStored(t *testing.T) {
	r := setupEngine(t, false)
	call(r, http.MethodPost, "/api/department", `{"departmentName":"Engineering"}`)

	w := call(r, http.MethodPost, "/api/employee", `{"name":"Kid","age":15,"salary":100,"departmentId":1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	w = call(r, http.MethodGet, "/api/employee", "")
	if resp := decode(t, w); resp.Data == nil || len(resp.Data.([]interface{})) != 0 {
		t.Errorf("不应写入任何员工: %s", w.Body.String())
	}
}

func TestRouter_MissingIDs(t *testing.T) {
	r := setupEngine(t, false)

	tests := []struct {
		method, path, body string
		status             int
	}{
		{http.MethodGet, "/api/department/5", "", http.StatusNotFound},
		{http.MethodPut, "/api/department/5", `"X"`, http.StatusNotFound},
		{http.MethodDelete, "/api/department/5", "", http.StatusNotFound},
		{http.MethodGet, "/api/employee/5", "", http.StatusNotFound},
		{http.MethodPut, "/api/employee/5", `{"name":"X","age":30,"departmentId":1}`, http.StatusNotFound},
		{http.MethodDelete, "/api/employee/5", "", http.StatusNotFound},
		{http.MethodGet, "/api/employee/abc", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		if w := call(r, tt.method, tt.path, tt.body); w.Code != tt.status {
			t.Errorf("%s %s: expected %d, got %d", tt.method, tt.path, tt.status, w.Code)
		}
	}
}

func TestRouter_ExportRouteTakesPrecedence(t *testing.T) {
	r := setupEngine(t, false)

	w := call(r, http.MethodGet, "/api/employee/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), ".xlsx") {
		t.Errorf("expected xlsx attachment, got %q", w.Header().Get("Content-Disposition"))
	}
}

func TestRouter_HealthAndRequestID(t *testing.T) {
	r := setupEngine(t, false)

	w := call(r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestRouter_SwaggerToggle(t *testing.T) {
	if w := call(setupEngine(t, false), http.MethodGet, "/swagger/doc.json", ""); w.Code != http.StatusNotFound {
		t.Errorf("swagger disabled: expected 404, got %d", w.Code)
	}
	if w := call(setupEngine(t, true), http.MethodGet, "/swagger/doc.json", ""); w.Code != http.StatusOK {
		t.Errorf("swagger enabled: expected 200, got %d", w.Code)
	}
}

func TestRouter_BodyTooLarge(t *testing.T) {
	r := setupEngine(t, false)

	big := `{"departmentName":"` + strings.Repeat("x", 2<<20) + `"}`
	w := call(r, http.MethodPost, "/api/department", big)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
}
