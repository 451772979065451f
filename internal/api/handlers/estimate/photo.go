package estimate

import (
	"encoding/json"
	"fmt"
	"io"

	"cleanup-estimator/internal/core/cleanup"
	"cleanup-estimator/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnalyzePhoto POST /api/v1/analyze-photo，multipart 欄位 photo 與 userPreferences
func (h *Handler) AnalyzePhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		h.respondError(c, common.ErrInvalidImageFormat.WithMessage("no file provided").Wrap(err))
		return
	}

	f, err := file.Open()
	if err != nil {
		h.respondError(c, common.ErrInvalidRequest.WithMessage("failed to read upload").Wrap(err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.respondError(c, common.ErrInvalidRequest.WithMessage("failed to read upload").Wrap(err))
		return
	}

	// 偏好解析失敗時沿用預設值
	prefs := cleanup.DefaultPreferences()
	if raw := c.PostForm("userPreferences"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
			common.LogWarn("Failed to parse userPreferences, using defaults",
				zap.String("request_id", requestid.Get(c)),
				zap.Error(err),
			)
			prefs = cleanup.DefaultPreferences()
		}
	}

	common.LogInfo("Photo received",
		zap.String("request_id", requestid.Get(c)),
		zap.String("filename", file.Filename),
		zap.String("mime", file.Header.Get("Content-Type")),
		zap.String("size", fmt.Sprintf("%.2fKB", float64(file.Size)/1024)),
	)

	result, err := h.service.AnalyzePhoto(c.Request.Context(), data, file.Header.Get("Content-Type"), prefs)
	if err != nil {
		h.respondError(c, err)
		return
	}

	common.LogInfo("Photo analysis complete",
		zap.String("request_id", requestid.Get(c)),
		zap.Int("totalTime", result.Analysis.TotalTime),
		zap.Int("itemsDetected", len(result.Analysis.Equipment)),
		zap.Int("areasDetected", len(result.Analysis.Areas)),
		zap.Float64("confidence", result.Analysis.Confidence),
	)
	respondOK(c, result.Analysis)
}
