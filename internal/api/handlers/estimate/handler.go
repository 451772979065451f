package estimate

import (
	"context"
	"errors"
	"net/http"

	"cleanup-estimator/internal/core/analysis"
	"cleanup-estimator/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 清潔時間估算的 HTTP 處理程序
type Handler struct {
	service *analysis.Service
	debug   bool
}

// NewHandler 創建處理程序；debug 為 true 時錯誤回應附上原始錯誤
func NewHandler(service *analysis.Service, debug bool) *Handler {
	return &Handler{service: service, debug: debug}
}

// respondOK 成功回應
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondError 依錯誤類型回應對應的狀態碼
func (h *Handler) respondError(c *gin.Context, err error) {
	var ce *common.CustomError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		ce = common.ErrGatewayTimeout.Wrap(err)
	case errors.Is(err, context.Canceled):
		ce = common.ErrRequestTimeout.Wrap(err)
	default:
		ce = common.AsCustomError(err)
	}

	fields := []zap.Field{
		zap.String("request_id", requestid.Get(c)),
		zap.String("path", c.Request.URL.Path),
		zap.String("code", ce.Code),
		zap.Error(err),
	}
	if ce.Status >= http.StatusInternalServerError {
		common.LogError("Request failed", fields...)
	} else {
		common.LogWarn("Request rejected", fields...)
	}

	resp := common.ErrorResponse{
		Success: false,
		Code:    ce.Code,
		Error:   ce.Message,
	}
	if h.debug && ce.Err != nil {
		resp.Details = ce.Err.Error()
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(ce.Status, resp)
}
