package common

import (
	"errors"
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`              // 錯誤代碼
	Error   string `json:"error"`             // 錯誤信息
	Details string `json:"details,omitempty"` // 詳細信息（僅在開發模式顯示）
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap 讓 errors.Is / errors.As 可以穿透
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is 以錯誤代碼比對，讓 errors.Is(err, ErrUpstreamFetch) 成立
func (e *CustomError) Is(target error) bool {
	t, ok := target.(*CustomError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap 以同樣的代碼與狀態包裝原始錯誤
func (e *CustomError) Wrap(err error) *CustomError {
	return &CustomError{Code: e.Code, Message: e.Message, Status: e.Status, Err: err}
}

// WithMessage 以同樣的代碼與狀態更換訊息
func (e *CustomError) WithMessage(message string) *CustomError {
	return &CustomError{Code: e.Code, Message: message, Status: e.Status, Err: e.Err}
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

// AsCustomError 取出錯誤鏈中的 CustomError，找不到時歸類為內部錯誤
func AsCustomError(err error) *CustomError {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce
	}
	return ErrInternalError.Wrap(err)
}

// 預定義錯誤代碼
const (
	// 客戶端錯誤 (4xx)
	ErrCodeInvalidRequest  = "INVALID_REQUEST"   // 400
	ErrCodeNotFound        = "NOT_FOUND"         // 404
	ErrCodeRequestTimeout  = "REQUEST_TIMEOUT"   // 408
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS" // 429

	// 上游錯誤
	ErrCodeUpstreamFetch = "UPSTREAM_FETCH_FAILED" // 502
	ErrCodeUpstreamParse = "UPSTREAM_PARSE_FAILED" // 422

	// 服務器錯誤 (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503
	ErrCodeGatewayTimeout     = "GATEWAY_TIMEOUT"     // 504
)

// 預定義錯誤
var (
	// 客戶端錯誤
	ErrInvalidRequest  = NewError(ErrCodeInvalidRequest, "invalid request", http.StatusBadRequest, nil)
	ErrNotFound        = NewError(ErrCodeNotFound, "endpoint not found", http.StatusNotFound, nil)
	ErrRequestTimeout  = NewError(ErrCodeRequestTimeout, "request timeout", http.StatusRequestTimeout, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "too many requests", http.StatusTooManyRequests, nil)

	// 上游錯誤：抓取失敗與解析失敗分開回報
	ErrUpstreamFetch = NewError(ErrCodeUpstreamFetch, "unable to fetch the recipe, please check the URL and try again", http.StatusBadGateway, nil)
	ErrUpstreamParse = NewError(ErrCodeUpstreamParse, "unable to parse the recipe, this site may not be supported", http.StatusUnprocessableEntity, nil)

	// 服務器錯誤
	ErrInternalError      = NewError(ErrCodeInternalError, "internal server error", http.StatusInternalServerError, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "service temporarily unavailable", http.StatusServiceUnavailable, nil)
	ErrGatewayTimeout     = NewError(ErrCodeGatewayTimeout, "gateway timeout", http.StatusGatewayTimeout, nil)

	// 業務錯誤
	ErrInvalidURL         = NewError(ErrCodeInvalidRequest, "invalid URL format, please provide a valid HTTP/HTTPS URL", http.StatusBadRequest, nil)
	ErrInvalidImageFormat = NewError(ErrCodeInvalidRequest, "invalid image format", http.StatusBadRequest, nil)
	ErrInvalidImageSize   = NewError(ErrCodeInvalidRequest, "image size exceeds limit", http.StatusBadRequest, nil)
	ErrInvalidImageType   = NewError(ErrCodeInvalidRequest, "unsupported image type", http.StatusBadRequest, nil)
	ErrVisionParse        = NewError(ErrCodeUpstreamParse, "failed to parse AI response, please try again", http.StatusUnprocessableEntity, nil)
	ErrVisionUnavailable  = NewError(ErrCodeInternalError, "vision provider is not configured", http.StatusInternalServerError, nil)
	ErrCacheMiss          = NewError("CACHE_MISS", "cache miss", http.StatusNotFound, nil)
	ErrCacheDisabled      = NewError("CACHE_DISABLED", "cache disabled", http.StatusServiceUnavailable, nil)
)
