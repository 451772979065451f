package cleanup

import (
	"strings"

	"cleanup-estimator/internal/core/equipment"
)

// unknownModifierImpact 未定義的複雜度修正一律加上的秒數
const unknownModifierImpact = 60

// impact 某種複雜度修正依設備分類增加的秒數
type impact struct {
	byCategory map[equipment.Category]int
	fallback   int
}

var modifierImpacts = map[string]impact{
	"sticky_sauce": {map[equipment.Category]int{
		equipment.CategoryCookware: 120, equipment.CategoryBaking: 90, equipment.CategoryUtensils: 45,
	}, 60},
	"oil_heavy": {map[equipment.Category]int{
		equipment.CategoryCookware: 90, equipment.CategoryBaking: 60, equipment.CategoryUtensils: 30,
	}, 45},
	"burnt_potential": {map[equipment.Category]int{
		equipment.CategoryCookware: 150, equipment.CategoryBaking: 120, equipment.CategoryUtensils: 20,
	}, 80},
	"dairy_burning": {map[equipment.Category]int{
		equipment.CategoryCookware: 100, equipment.CategoryBaking: 70, equipment.CategoryUtensils: 30,
	}, 60},
	"tomato_staining": {map[equipment.Category]int{
		equipment.CategoryCookware: 60, equipment.CategoryPrep: 40, equipment.CategoryUtensils: 30,
	}, 40},
	"raw_meat": {map[equipment.Category]int{
		equipment.CategoryPrep: 90, equipment.CategoryCookware: 60, equipment.CategoryUtensils: 45,
	}, 60},
	"flour_batter": {map[equipment.Category]int{
		equipment.CategoryPrep: 45, equipment.CategoryCookware: 30, equipment.CategoryUtensils: 40,
		equipment.CategoryAppliances: 90,
	}, 40},
	"egg_coating": {map[equipment.Category]int{
		equipment.CategoryPrep: 60, equipment.CategoryCookware: 45, equipment.CategoryUtensils: 50,
	}, 45},
	"spice_grinding": {map[equipment.Category]int{
		equipment.CategoryCultural: 60, equipment.CategoryAppliances: 90, equipment.CategoryPrep: 30,
	}, 40},
	"chocolate_melting": {map[equipment.Category]int{
		equipment.CategoryCookware: 80, equipment.CategoryUtensils: 60, equipment.CategoryAppliances: 100,
	}, 70},
	"sugar_work": {map[equipment.Category]int{
		equipment.CategoryCookware: 140, equipment.CategoryUtensils: 80,
	}, 100},
	"acidic_foods": {map[equipment.Category]int{
		equipment.CategoryCookware: 40, equipment.CategoryPrep: 30,
	}, 30},
	"dough_work": {map[equipment.Category]int{
		equipment.CategoryPrep: 60, equipment.CategoryCookware: 40, equipment.CategoryUtensils: 50,
	}, 50},
	"fermentation": {map[equipment.Category]int{
		equipment.CategoryStorage: 45, equipment.CategoryCookware: 60,
	}, 50},
	"marinating": {map[equipment.Category]int{
		equipment.CategoryStorage: 40, equipment.CategoryPrep: 50,
	}, 45},
}

// ModifierImpact 複雜度修正對某分類設備增加的秒數
func ModifierImpact(modifierType string, category equipment.Category) int {
	im, ok := modifierImpacts[modifierType]
	if !ok {
		return unknownModifierImpact
	}
	if v, ok := im.byCategory[category]; ok {
		return v
	}
	return im.fallback
}

// materialRule 依設備識別碼子字串套用的材質調整
type materialRule struct {
	needles []string
	name    string
	time    int
}

var materialRules = []materialRule{
	{[]string{"nonstick"}, "Non-stick surface", -30},
	{[]string{"cast_iron"}, "Cast iron maintenance", 45},
	{[]string{"wooden", "bamboo"}, "Hand wash only (wood)", 15},
	{[]string{"fine_mesh", "microplane"}, "Fine mesh cleaning", 30},
	{[]string{"grater", "box_grater"}, "Multiple surfaces to clean", 20},
}

// MaterialModifiers 設備材質帶來的時間調整
func MaterialModifiers(equipmentType string) []ModifierEntry {
	var out []ModifierEntry
	for _, rule := range materialRules {
		for _, needle := range rule.needles {
			if strings.Contains(equipmentType, needle) {
				out = append(out, ModifierEntry{Name: rule.name, Time: rule.time, Type: KindMaterial})
				break
			}
		}
	}
	return out
}

// soakingTime 浸泡鍋具額外需要的秒數
const soakingTime = 120

// applyPreferences 套用使用者偏好，回傳調整後時間與明細
//
// 洗碗機與清潔習慣的比例都以進入此步驟時的時間計算。
func applyPreferences(running float64, def equipment.Definition, prefs Preferences) (float64, []ModifierEntry) {
	var mods []ModifierEntry
	adjusted := running

	if prefs.HasDishwasher {
		switch def.DishwasherSafe {
		case equipment.DishwasherYes:
			reduction := running * 0.6
			adjusted -= reduction
			mods = append(mods, ModifierEntry{Name: "Dishwasher safe", Time: -round(reduction), Type: KindPreference})
		case equipment.DishwasherPartial:
			reduction := running * 0.3
			adjusted -= reduction
			mods = append(mods, ModifierEntry{Name: "Partially dishwasher safe", Time: -round(reduction), Type: KindPreference})
		}
	}

	switch prefs.CleaningStyle {
	case StyleQuick:
		adjusted *= 0.7
		mods = append(mods, ModifierEntry{Name: "Quick cleaning style", Time: -round(running * 0.3), Type: KindPreference})
	case StyleThorough:
		adjusted *= 1.4
		mods = append(mods, ModifierEntry{Name: "Thorough cleaning style", Time: round(running * 0.4), Type: KindPreference})
	}

	if prefs.SoakingPreference && def.Category == equipment.CategoryCookware {
		adjusted += soakingTime
		mods = append(mods, ModifierEntry{Name: "Soaking time included", Time: soakingTime, Type: KindPreference})
	}

	return adjusted, mods
}
