package services

import "errors"

// ErrNotFound 查無資料，由控制器轉為 404
var ErrNotFound = errors.New("record not found")

// ValidationError 輸入驗證錯誤，訊息可直接回覆給呼叫端
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError 建立驗證錯誤
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
