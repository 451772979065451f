package scraper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"cleanup-estimator/internal/pkg/common"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const defaultTitle = "Unknown Recipe"

// rawRecipe 從頁面擷取出的未正規化資料
type rawRecipe struct {
	name         string
	ingredients  []string
	instructions any
	totalTime    string
	prepTime     string
	cookTime     string
	servings     string
	image        string
}

// Parse 解析食譜頁 HTML；先找 JSON-LD 的 Recipe，找不到再用 microdata 與 class 名稱推測
func Parse(body []byte, url string) (common.RecipeRecord, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return common.RecipeRecord{}, common.ErrUpstreamParse.Wrap(err)
	}

	raw, ok := fromJSONLD(doc)
	if !ok {
		raw = fromMarkup(doc)
	}

	recipe := normalize(raw, url)
	if recipe.IsEmpty() {
		return common.RecipeRecord{}, common.ErrUpstreamParse.Wrap(fmt.Errorf("no ingredients or instructions found"))
	}
	return recipe, nil
}

func normalize(raw rawRecipe, url string) common.RecipeRecord {
	title := cleanText(raw.name)
	if title == "" {
		title = defaultTitle
	}

	ingredients := make([]string, 0, len(raw.ingredients))
	for _, ing := range raw.ingredients {
		if t := cleanText(ing); t != "" {
			ingredients = append(ingredients, t)
		}
	}

	return common.RecipeRecord{
		Title:        title,
		Ingredients:  ingredients,
		Instructions: NormalizeInstructions(raw.instructions),
		TotalTime:    orDefault(FormatISODuration(raw.totalTime), "Unknown"),
		PrepTime:     FormatISODuration(raw.prepTime),
		CookTime:     FormatISODuration(raw.cookTime),
		Servings:     orDefault(cleanText(raw.servings), "Unknown"),
		Image:        raw.image,
		URL:          url,
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// fromJSONLD 在所有 ld+json 區塊中找第一個 Recipe 物件
func fromJSONLD(doc *html.Node) (rawRecipe, bool) {
	var found map[string]any
	walk(doc, func(n *html.Node) bool {
		if found != nil {
			return false
		}
		if n.Type != html.ElementNode || n.DataAtom != atom.Script ||
			!strings.EqualFold(strings.TrimSpace(attr(n, "type")), "application/ld+json") {
			return true
		}
		var data any
		if err := json.Unmarshal([]byte(rawText(n)), &data); err != nil {
			return false
		}
		found = findRecipeObject(data)
		return false
	})
	if found == nil {
		return rawRecipe{}, false
	}

	return rawRecipe{
		name:         stringValue(found["name"]),
		ingredients:  stringList(firstPresent(found, "recipeIngredient", "ingredients")),
		instructions: found["recipeInstructions"],
		totalTime:    stringValue(found["totalTime"]),
		prepTime:     stringValue(found["prepTime"]),
		cookTime:     stringValue(found["cookTime"]),
		servings:     yieldValue(found["recipeYield"]),
		image:        imageValue(found["image"]),
	}, true
}

// findRecipeObject 支援單一物件、陣列與 @graph
func findRecipeObject(data any) map[string]any {
	switch v := data.(type) {
	case []any:
		for _, item := range v {
			if r := findRecipeObject(item); r != nil {
				return r
			}
		}
	case map[string]any:
		if isRecipeType(v["@type"]) {
			return v
		}
		if graph, ok := v["@graph"]; ok {
			return findRecipeObject(graph)
		}
	}
	return nil
}

func isRecipeType(t any) bool {
	switch v := t.(type) {
	case string:
		return v == "Recipe"
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s == "Recipe" {
				return true
			}
		}
	}
	return false
}

func firstPresent(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return fmt.Sprintf("%g", s)
	}
	return ""
}

func stringList(v any) []string {
	switch s := v.(type) {
	case string:
		return []string{s}
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str := stringValue(item); str != "" {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// yieldValue recipeYield 可能是字串、數字或陣列，取最長的描述
func yieldValue(v any) string {
	best := ""
	for _, s := range stringList(v) {
		if len(s) > len(best) {
			best = s
		}
	}
	if best == "" {
		best = stringValue(v)
	}
	return best
}

func imageValue(v any) string {
	switch img := v.(type) {
	case string:
		return img
	case []any:
		for _, item := range img {
			if s := imageValue(item); s != "" {
				return s
			}
		}
	case map[string]any:
		return stringValue(img["url"])
	}
	return ""
}

// fromMarkup 沒有 JSON-LD 時，依 microdata 屬性與常見 class 名稱擷取
func fromMarkup(doc *html.Node) rawRecipe {
	var (
		raw          rawRecipe
		instructions []string
		ogTitle      string
		pageTitle    string
		heading      string
	)

	walk(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		switch attr(n, "itemprop") {
		case "recipeIngredient", "ingredients":
			raw.ingredients = append(raw.ingredients, nodeText(n))
			return false
		case "recipeInstructions":
			instructions = append(instructions, listOrText(n)...)
			return false
		case "name":
			if raw.name == "" {
				raw.name = nodeText(n)
			}
		case "recipeYield":
			raw.servings = firstNonEmpty(attr(n, "content"), nodeText(n))
		case "totalTime":
			raw.totalTime = firstNonEmpty(attr(n, "content"), attr(n, "datetime"))
		}

		switch n.DataAtom {
		case atom.Meta:
			if attr(n, "property") == "og:title" {
				ogTitle = attr(n, "content")
			}
			if attr(n, "property") == "og:image" && raw.image == "" {
				raw.image = attr(n, "content")
			}
		case atom.Title:
			if pageTitle == "" {
				pageTitle = nodeText(n)
			}
		case atom.H1:
			if heading == "" {
				heading = nodeText(n)
			}
		case atom.Ul, atom.Ol:
			class := strings.ToLower(attr(n, "class") + " " + attr(n, "id"))
			switch {
			case strings.Contains(class, "ingredient") && len(raw.ingredients) == 0:
				raw.ingredients = listItems(n)
				return false
			case containsAny(class, "instruction", "direction", "step", "method") && len(instructions) == 0:
				instructions = listItems(n)
				return false
			}
		}
		return true
	})

	raw.name = firstNonEmpty(raw.name, ogTitle, heading, pageTitle)
	if len(instructions) > 0 {
		raw.instructions = toAnySlice(instructions)
	}
	return raw
}

func toAnySlice(items []string) []any {
	out := make([]any, len(items))
	for i, s := range items {
		out[i] = s
	}
	return out
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// listOrText 節點內有 li 時逐項回傳，否則回傳整段文字
func listOrText(n *html.Node) []string {
	if items := listItems(n); len(items) > 0 {
		return items
	}
	if t := nodeText(n); t != "" {
		return []string{t}
	}
	return nil
}

func listItems(n *html.Node) []string {
	var items []string
	walk(n, func(c *html.Node) bool {
		if c.Type == html.ElementNode && c.DataAtom == atom.Li {
			if t := nodeText(c); t != "" {
				items = append(items, t)
			}
			return false
		}
		return true
	})
	return items
}

// walk 深度優先走訪；fn 回傳 false 時不進入子節點
func walk(n *html.Node, fn func(*html.Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func rawText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

// nodeText 節點下所有文字，空白合併
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			sb.WriteByte(' ')
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			collect(child)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
