package estimate

import (
	"cleanup-estimator/internal/core/equipment"

	"github.com/gin-gonic/gin"
)

// CatalogItem 設備目錄中的一項
type CatalogItem struct {
	Type           string                     `json:"type"`
	DisplayName    string                     `json:"displayName"`
	BaseTime       int                        `json:"baseTime"`
	DishwasherSafe equipment.DishwasherSafety `json:"dishwasherSafe"`
}

// ListEquipment GET /api/v1/equipment，依分類列出設備目錄
func (h *Handler) ListEquipment(c *gin.Context) {
	catalog := make(map[equipment.Category][]CatalogItem)
	for _, category := range equipment.Categories() {
		defs := equipment.ByCategory(category)
		items := make([]CatalogItem, 0, len(defs))
		for _, t := range equipment.Types() {
			def, ok := defs[t]
			if !ok {
				continue
			}
			items = append(items, CatalogItem{
				Type:           t,
				DisplayName:    equipment.DisplayName(t),
				BaseTime:       def.BaseTime,
				DishwasherSafe: def.DishwasherSafe,
			})
		}
		catalog[category] = items
	}
	respondOK(c, catalog)
}
