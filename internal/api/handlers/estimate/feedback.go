package estimate

import (
	"net/http"
	"strconv"

	"cleanup-estimator/internal/core/feedback"
	"cleanup-estimator/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// SubmitFeedback POST /api/v1/feedback
func (h *Handler) SubmitFeedback(c *gin.Context) {
	var sub feedback.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		h.respondError(c, common.ErrInvalidRequest.WithMessage("invalid request format").Wrap(err))
		return
	}

	record, err := h.service.SubmitFeedback(c.Request.Context(), sub)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you for your feedback!",
		"data":    record,
	})
}

// ListFeedback GET /api/v1/feedback?limit=N
func (h *Handler) ListFeedback(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.respondError(c, common.ErrInvalidRequest.WithMessage("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	records, err := h.service.ListFeedback(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, records)
}
