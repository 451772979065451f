package equipment

import (
	"encoding/json"
	"sort"
	"strings"
)

// Category 設備分類
type Category string

const (
	CategoryCookware   Category = "cookware"
	CategoryBaking     Category = "baking"
	CategoryPrep       Category = "prep"
	CategoryUtensils   Category = "utensils"
	CategoryStraining  Category = "straining"
	CategoryAppliances Category = "appliances"
	CategoryCultural   Category = "cultural"
	CategoryServing    Category = "serving"
	CategoryStorage    Category = "storage"
	CategoryGeneral    Category = "general"
)

// DishwasherSafety 洗碗機適用等級
type DishwasherSafety int

const (
	DishwasherNo DishwasherSafety = iota
	DishwasherYes
	DishwasherPartial
)

// MarshalJSON 輸出 true / false / "partial"
func (d DishwasherSafety) MarshalJSON() ([]byte, error) {
	switch d {
	case DishwasherYes:
		return []byte("true"), nil
	case DishwasherPartial:
		return []byte(`"partial"`), nil
	default:
		return []byte("false"), nil
	}
}

// UnmarshalJSON 接受 true / false / "partial"
func (d *DishwasherSafety) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			*d = DishwasherYes
		} else {
			*d = DishwasherNo
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "partial" {
		*d = DishwasherPartial
	} else {
		*d = DishwasherNo
	}
	return nil
}

// Definition 設備的靜態定義
type Definition struct {
	BaseTime       int              `json:"baseTimeSeconds"`
	DishwasherSafe DishwasherSafety `json:"dishwasherSafe"`
	Category       Category         `json:"category"`
}

// catalog 設備資料表：基本清潔秒數、洗碗機適用、分類
var catalog = map[string]Definition{
	// 鍋具
	"frying_pan":    {180, DishwasherYes, CategoryCookware},
	"skillet":       {180, DishwasherYes, CategoryCookware},
	"saute_pan":     {200, DishwasherYes, CategoryCookware},
	"cast_iron_pan": {240, DishwasherNo, CategoryCookware},
	"nonstick_pan":  {120, DishwasherYes, CategoryCookware},
	"wok":           {150, DishwasherNo, CategoryCookware},
	"grill_pan":     {250, DishwasherYes, CategoryCookware},
	"griddle":       {200, DishwasherYes, CategoryCookware},

	"saucepan":        {120, DishwasherYes, CategoryCookware},
	"stockpot":        {180, DishwasherYes, CategoryCookware},
	"dutch_oven":      {200, DishwasherYes, CategoryCookware},
	"pressure_cooker": {300, DishwasherPartial, CategoryCookware},
	"slow_cooker":     {180, DishwasherYes, CategoryCookware},
	"double_boiler":   {150, DishwasherYes, CategoryCookware},
	"pasta_pot":       {140, DishwasherYes, CategoryCookware},

	// 烘焙
	"baking_sheet":   {90, DishwasherYes, CategoryBaking},
	"cookie_sheet":   {90, DishwasherYes, CategoryBaking},
	"sheet_pan":      {120, DishwasherYes, CategoryBaking},
	"roasting_pan":   {200, DishwasherYes, CategoryBaking},
	"cake_pan":       {100, DishwasherYes, CategoryBaking},
	"loaf_pan":       {80, DishwasherYes, CategoryBaking},
	"muffin_tin":     {180, DishwasherYes, CategoryBaking},
	"pie_pan":        {90, DishwasherYes, CategoryBaking},
	"tart_pan":       {120, DishwasherYes, CategoryBaking},
	"bundt_pan":      {150, DishwasherYes, CategoryBaking},
	"springform_pan": {140, DishwasherYes, CategoryBaking},
	"casserole_dish": {120, DishwasherYes, CategoryBaking},
	"ramekins":       {60, DishwasherYes, CategoryBaking},
	"cooling_rack":   {30, DishwasherYes, CategoryBaking},
	"pastry_ring":    {45, DishwasherYes, CategoryBaking},

	// 備料：刀具與砧板
	"chef_knife":           {45, DishwasherNo, CategoryPrep},
	"paring_knife":         {30, DishwasherNo, CategoryPrep},
	"bread_knife":          {35, DishwasherNo, CategoryPrep},
	"cleaver":              {60, DishwasherNo, CategoryPrep},
	"utility_knife":        {35, DishwasherNo, CategoryPrep},
	"kitchen_shears":       {40, DishwasherYes, CategoryPrep},
	"cutting_board":        {45, DishwasherNo, CategoryPrep},
	"bamboo_cutting_board": {50, DishwasherNo, CategoryPrep},

	// 備料：刨絲
	"box_grater":       {120, DishwasherYes, CategoryPrep},
	"microplane":       {90, DishwasherYes, CategoryPrep},
	"zester":           {60, DishwasherYes, CategoryPrep},
	"mandoline":        {180, DishwasherPartial, CategoryPrep},
	"julienne_peeler":  {40, DishwasherYes, CategoryPrep},
	"vegetable_peeler": {30, DishwasherYes, CategoryPrep},

	// 備料：量測與攪拌
	"measuring_cups":    {40, DishwasherYes, CategoryPrep},
	"measuring_spoons":  {30, DishwasherYes, CategoryPrep},
	"kitchen_scale":     {20, DishwasherNo, CategoryPrep},
	"mixing_bowl":       {60, DishwasherYes, CategoryPrep},
	"large_mixing_bowl": {90, DishwasherYes, CategoryPrep},
	"glass_bowl":        {50, DishwasherYes, CategoryPrep},
	"metal_bowl":        {45, DishwasherYes, CategoryPrep},

	// 手持器具
	"whisk":            {35, DishwasherYes, CategoryUtensils},
	"balloon_whisk":    {40, DishwasherYes, CategoryUtensils},
	"silicone_spatula": {25, DishwasherYes, CategoryUtensils},
	"rubber_spatula":   {25, DishwasherYes, CategoryUtensils},
	"wooden_spoon":     {30, DishwasherNo, CategoryUtensils},
	"slotted_spoon":    {35, DishwasherYes, CategoryUtensils},
	"ladle":            {40, DishwasherYes, CategoryUtensils},
	"tongs":            {45, DishwasherYes, CategoryUtensils},
	"turner":           {30, DishwasherYes, CategoryUtensils},
	"fish_turner":      {35, DishwasherYes, CategoryUtensils},
	"potato_masher":    {60, DishwasherYes, CategoryUtensils},
	"pastry_brush":     {45, DishwasherYes, CategoryUtensils},
	"rolling_pin":      {50, DishwasherNo, CategoryUtensils},
	"pastry_cutter":    {40, DishwasherYes, CategoryUtensils},
	"pizza_cutter":     {35, DishwasherYes, CategoryUtensils},
	"can_opener":       {25, DishwasherYes, CategoryUtensils},
	"garlic_press":     {90, DishwasherYes, CategoryUtensils},
	"citrus_juicer":    {60, DishwasherYes, CategoryUtensils},
	"meat_mallet":      {45, DishwasherYes, CategoryUtensils},
	"ice_cream_scoop":  {30, DishwasherYes, CategoryUtensils},
	"cookie_scoop":     {25, DishwasherYes, CategoryUtensils},

	// 濾網
	"colander":           {45, DishwasherYes, CategoryStraining},
	"fine_mesh_strainer": {60, DishwasherYes, CategoryStraining},
	"sieve":              {75, DishwasherYes, CategoryStraining},
	"spider_strainer":    {50, DishwasherYes, CategoryStraining},
	"salad_spinner":      {120, DishwasherPartial, CategoryStraining},

	// 電器
	"food_processor":    {300, DishwasherPartial, CategoryAppliances},
	"blender":           {180, DishwasherPartial, CategoryAppliances},
	"immersion_blender": {120, DishwasherPartial, CategoryAppliances},
	"stand_mixer":       {240, DishwasherPartial, CategoryAppliances},
	"hand_mixer":        {90, DishwasherPartial, CategoryAppliances},
	"rice_cooker":       {120, DishwasherYes, CategoryAppliances},
	"coffee_grinder":    {60, DishwasherNo, CategoryAppliances},
	"spice_grinder":     {90, DishwasherNo, CategoryAppliances},
	"juicer":            {300, DishwasherPartial, CategoryAppliances},

	// 亞洲及地方料理器具
	"mortar_pestle":  {180, DishwasherNo, CategoryCultural},
	"bamboo_steamer": {90, DishwasherNo, CategoryCultural},
	"wok_spatula":    {40, DishwasherYes, CategoryCultural},
	"chopsticks":     {20, DishwasherYes, CategoryCultural},
	"sushi_mat":      {30, DishwasherNo, CategoryCultural},
	"dumpling_press": {45, DishwasherYes, CategoryCultural},
	"rice_paddle":    {25, DishwasherYes, CategoryCultural},
	"wok_brush":      {20, DishwasherNo, CategoryCultural},
	"tagine":         {150, DishwasherYes, CategoryCultural},
	"molcajete":      {240, DishwasherNo, CategoryCultural},
	"comal":          {120, DishwasherYes, CategoryCultural},
	"tortilla_press": {60, DishwasherYes, CategoryCultural},

	// 盛裝與保存
	"serving_bowl":       {40, DishwasherYes, CategoryServing},
	"serving_platter":    {50, DishwasherYes, CategoryServing},
	"cake_stand":         {60, DishwasherYes, CategoryServing},
	"gravy_boat":         {45, DishwasherYes, CategoryServing},
	"trivets":            {20, DishwasherYes, CategoryServing},
	"storage_containers": {30, DishwasherYes, CategoryStorage},
	"mason_jars":         {25, DishwasherYes, CategoryStorage},
}

// Lookup 查詢設備定義
func Lookup(equipmentType string) (Definition, bool) {
	def, ok := catalog[equipmentType]
	return def, ok
}

// Types 所有設備識別碼，依字母排序
func Types() []string {
	types := make([]string, 0, len(catalog))
	for t := range catalog {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// ByCategory 指定分類下的設備
func ByCategory(category Category) map[string]Definition {
	out := make(map[string]Definition)
	for t, def := range catalog {
		if def.Category == category {
			out[t] = def
		}
	}
	return out
}

// Categories 目前資料表中出現的分類，依字母排序
func Categories() []Category {
	seen := make(map[Category]bool)
	var out []Category
	for _, def := range catalog {
		if !seen[def.Category] {
			seen[def.Category] = true
			out = append(out, def.Category)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DisplayName 將識別碼轉為顯示名稱：cast_iron_pan → Cast Iron Pan
func DisplayName(equipmentType string) string {
	words := strings.Split(equipmentType, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
