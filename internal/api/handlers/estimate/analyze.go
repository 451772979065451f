package estimate

import (
	"cleanup-estimator/internal/core/cleanup"
	"cleanup-estimator/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// AnalyzeRecipeRequest 食譜網址分析請求
type AnalyzeRecipeRequest struct {
	URL             string               `json:"url"`
	UserPreferences *cleanup.Preferences `json:"userPreferences,omitempty"`
}

// AnalyzeTextRequest 直接提供食譜內容的分析請求
type AnalyzeTextRequest struct {
	Recipe          common.RecipeRecord  `json:"recipe"`
	UserPreferences *cleanup.Preferences `json:"userPreferences,omitempty"`
}

func preferencesOrDefault(p *cleanup.Preferences) cleanup.Preferences {
	if p == nil {
		return cleanup.DefaultPreferences()
	}
	return p.Normalize()
}

// AnalyzeRecipe POST /api/v1/analyze-recipe
func (h *Handler) AnalyzeRecipe(c *gin.Context) {
	var req AnalyzeRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, common.ErrInvalidRequest.WithMessage("invalid request format").Wrap(err))
		return
	}
	if req.URL == "" {
		h.respondError(c, common.ErrInvalidRequest.WithMessage("recipe URL is required"))
		return
	}

	result, err := h.service.AnalyzeRecipe(c.Request.Context(), req.URL, preferencesOrDefault(req.UserPreferences))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, result)
}

// DebugRecipe POST /api/v1/analyze-recipe/debug
func (h *Handler) DebugRecipe(c *gin.Context) {
	var req AnalyzeRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, common.ErrInvalidRequest.WithMessage("invalid request format").Wrap(err))
		return
	}
	if req.URL == "" {
		h.respondError(c, common.ErrInvalidRequest.WithMessage("recipe URL is required"))
		return
	}

	result, err := h.service.Debug(c.Request.Context(), req.URL)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, result)
}

// AnalyzeText POST /api/v1/analyze-text
func (h *Handler) AnalyzeText(c *gin.Context) {
	var req AnalyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, common.ErrInvalidRequest.WithMessage("invalid request format").Wrap(err))
		return
	}

	result, err := h.service.AnalyzeText(req.Recipe, preferencesOrDefault(req.UserPreferences))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, result)
}
