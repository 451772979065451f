package scraper

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
)

var (
	numberedStepPattern = regexp.MustCompile(`\d+\.\s+`)
	newlinePattern      = regexp.MustCompile(`\n+`)
	// sentenceEndPattern 句點後接空白與大寫字母；大寫字母屬於下一段
	sentenceEndPattern = regexp.MustCompile(`\.\s+[A-Z]`)
	isoDurationPattern = regexp.MustCompile(`(?i)^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)
)

// NormalizeInstructions 將 recipeInstructions 各種型態轉為步驟清單
//   - 陣列：保留非空字串，HowToStep 取 text，HowToSection 展開 itemListElement
//   - 字串：依編號、換行、句點依序嘗試切分
//   - 物件：有 text 欄位時遞迴處理
func NormalizeInstructions(v any) []string {
	steps := []string{}
	switch inst := v.(type) {
	case nil:
	case string:
		for _, s := range SplitInstructions(inst) {
			if t := cleanText(s); t != "" {
				steps = append(steps, t)
			}
		}
	case []string:
		for _, s := range inst {
			if t := cleanText(s); t != "" {
				steps = append(steps, t)
			}
		}
	case []any:
		for _, item := range inst {
			switch step := item.(type) {
			case string:
				if t := cleanText(step); t != "" {
					steps = append(steps, t)
				}
			case map[string]any:
				steps = append(steps, NormalizeInstructions(step)...)
			}
		}
	case map[string]any:
		if elements, ok := inst["itemListElement"]; ok {
			steps = append(steps, NormalizeInstructions(elements)...)
		} else if text, ok := inst["text"]; ok {
			steps = append(steps, NormalizeInstructions(text)...)
		}
	}
	return steps
}

// SplitInstructions 切分單一字串的步驟說明
func SplitInstructions(text string) []string {
	parts := nonEmpty(numberedStepPattern.Split(text, -1))
	if len(parts) > 1 {
		return parts
	}
	parts = nonEmpty(newlinePattern.Split(text, -1))
	if len(parts) > 1 {
		return parts
	}
	return splitSentences(text)
}

// splitSentences 在「. X」處切開並保留 X
func splitSentences(text string) []string {
	var parts []string
	last := 0
	for _, loc := range sentenceEndPattern.FindAllStringIndex(text, -1) {
		parts = append(parts, text[last:loc[0]])
		last = loc[1] - 1
	}
	parts = append(parts, text[last:])
	return nonEmpty(parts)
}

func nonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// cleanText 解碼 HTML 實體、去除殘留標籤並合併空白
func cleanText(s string) string {
	s = html.UnescapeString(s)
	s = stripTags(s)
	return strings.Join(strings.Fields(s), " ")
}

func stripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	var sb strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
			sb.WriteByte(' ')
		case r == '>' && inTag:
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// FormatISODuration 將 PT1H30M 轉為「1 hr 30 min」；無法解析時原樣回傳
func FormatISODuration(d string) string {
	d = strings.TrimSpace(d)
	if d == "" {
		return ""
	}
	m := isoDurationPattern.FindStringSubmatch(d)
	if m == nil {
		return d
	}

	days, _ := strconv.Atoi(m[1])
	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	seconds, _ := strconv.ParseFloat(m[4], 64)

	hours += days * 24
	minutes += int(seconds / 60)

	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%d hr %d min", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%d hr", hours)
	case minutes > 0:
		return fmt.Sprintf("%d min", minutes)
	}
	return d
}
