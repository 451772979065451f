package common

import "strings"

// RecipeRecord 正規化後的食譜紀錄，由抓取服務或呼叫端提供
type RecipeRecord struct {
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	TotalTime    string   `json:"totalTime,omitempty"`
	PrepTime     string   `json:"prepTime,omitempty"`
	CookTime     string   `json:"cookTime,omitempty"`
	Servings     string   `json:"servings,omitempty"`
	Image        string   `json:"image,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// Text 回傳偵測用的全文：標題、食材、步驟以空白串接後轉小寫
func (r RecipeRecord) Text() string {
	return strings.ToLower(r.Title + " " + strings.Join(r.Ingredients, " ") + " " + strings.Join(r.Instructions, " "))
}

// IsEmpty 沒有任何食材與步驟
func (r RecipeRecord) IsEmpty() bool {
	return len(r.Ingredients) == 0 && len(r.Instructions) == 0
}

// RecipeSummary 回應中回傳的食譜摘要
type RecipeSummary struct {
	Title     string `json:"title"`
	TotalTime string `json:"totalTime,omitempty"`
	Servings  string `json:"servings,omitempty"`
	Image     string `json:"image,omitempty"`
	URL       string `json:"url,omitempty"`
}

// Summary 取出摘要
func (r RecipeRecord) Summary() RecipeSummary {
	return RecipeSummary{
		Title:     r.Title,
		TotalTime: r.TotalTime,
		Servings:  r.Servings,
		Image:     r.Image,
		URL:       r.URL,
	}
}
