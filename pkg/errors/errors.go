package errors

import "errors"

// ErrInvalidID 路径参数中的 ID 不是整数
var ErrInvalidID = errors.New("invalid id")
