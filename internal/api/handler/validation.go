package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/Vipul1432/EmployeeManagementSystem/internal/dto"
	"github.com/Vipul1432/EmployeeManagementSystem/pkg/response"
)

func init() {
	// 字段错误使用 JSON 字段名，与请求体保持一致
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
		// 必填名称不能只包含空白字符
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(err)
		}
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// bindJSON 绑定并校验请求体；失败时写入 400/413 响应并返回 false
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		renderBindError(c, err)
		return false
	}
	return true
}

// bindDepartmentName 读取 PUT 部门接口的纯字符串请求体，规则与 departmentName 字段一致
func bindDepartmentName(c *gin.Context) (string, bool) {
	var name string
	if !bindJSON(c, &name) {
		return "", false
	}

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return name, true
	}
	if err := v.Var(name, dto.DepartmentNameRule); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fieldErrors := make([]response.FieldError, 0, len(ve))
			for _, fe := range ve {
				fieldErrors = append(fieldErrors, response.FieldError{
					Field:   "departmentName",
					Message: formatValidationError("departmentName", fe),
				})
			}
			response.ValidationFailed(c, fieldErrors)
			return "", false
		}
		renderBindError(c, err)
		return "", false
	}
	return name, true
}

func renderBindError(c *gin.Context, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		response.Error(c, http.StatusRequestEntityTooLarge, response.CodeBodyTooLarge, "Request body too large.")
		return
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fieldErrors := make([]response.FieldError, 0, len(ve))
		for _, fe := range ve {
			fieldErrors = append(fieldErrors, response.FieldError{
				Field:   fe.Field(),
				Message: formatValidationError(fe.Field(), fe),
			})
		}
		response.ValidationFailed(c, fieldErrors)
		return
	}

	// JSON 语法或类型错误
	response.ValidationFailed(c, []response.FieldError{{Field: "body", Message: err.Error()}})
}

// formatValidationError 生成可读的字段错误描述
func formatValidationError(field string, e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return "The " + field + " field is required."
	case "min":
		if e.Kind() == reflect.String {
			return "The field " + field + " must be at least " + e.Param() + " characters."
		}
		return "The field " + field + " must be at least " + e.Param() + "."
	case "max":
		if e.Kind() == reflect.String {
			return "The field " + field + " must be a string with a maximum length of " + e.Param() + "."
		}
		return "The field " + field + " must be at most " + e.Param() + "."
	default:
		return "The field " + field + " failed validation: " + e.Tag()
	}
}
