package dto

import "github.com/shopspring/decimal"

func init() {
	// 金额以 JSON 数字输出，与原有客户端约定一致
	decimal.MarshalJSONWithoutQuotes = true
}

// ── 通用响应 ──

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
