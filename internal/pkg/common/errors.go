package common

import (
	"errors"
	"net/http"
)

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap 讓 errors.Is / errors.As 能夠追溯原始錯誤
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// 預定義錯誤代碼
const (
	// 請求本身不合法（缺欄位、超大、格式錯誤），4xx，不重試
	ErrCodeInput = "INPUT_ERROR"
	// 上游生成服務失敗，5xx 或串流 error 事件，不重試
	ErrCodeUpstream = "UPSTREAM_ERROR"
	// 上游成功但沒有可用內容，5xx，與 UPSTREAM_ERROR 區分
	ErrCodeEmptyResult = "EMPTY_RESULT"

	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS"
	ErrCodeRequestTimeout  = "REQUEST_TIMEOUT"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// NewInputError 創建輸入錯誤（4xx）
func NewInputError(message string) *CustomError {
	return NewError(ErrCodeInput, message, http.StatusBadRequest, nil)
}

// NewUpstreamError 創建上游錯誤（5xx）
func NewUpstreamError(message string, err error) *CustomError {
	return NewError(ErrCodeUpstream, message, http.StatusInternalServerError, err)
}

// NewEmptyResultError 創建空結果錯誤（5xx）
func NewEmptyResultError(message string) *CustomError {
	return NewError(ErrCodeEmptyResult, message, http.StatusInternalServerError, nil)
}

// hasCode 檢查錯誤鏈中是否有指定代碼的 CustomError
func hasCode(err error, code string) bool {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}

// IsInputError 檢查是否為輸入錯誤
func IsInputError(err error) bool {
	return hasCode(err, ErrCodeInput)
}

// IsUpstreamError 檢查是否為上游錯誤
func IsUpstreamError(err error) bool {
	return hasCode(err, ErrCodeUpstream)
}

// IsEmptyResultError 檢查是否為空結果錯誤
func IsEmptyResultError(err error) bool {
	return hasCode(err, ErrCodeEmptyResult)
}

// 預定義錯誤
var (
	ErrNoImageProvided = NewError(ErrCodeInput, "No image file provided", http.StatusBadRequest, nil)
	ErrCacheDisabled   = NewError("CACHE_DISABLED", "緩存已禁用", http.StatusServiceUnavailable, nil)
	ErrCacheMiss       = NewError("CACHE_MISS", "快取未命中", http.StatusNotFound, nil)
)
