package equipment

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// contextRadius 擷取上下文時匹配前後保留的位元組數
const contextRadius = 30

// termMatcher 不分大小寫的整詞比對
//
// RE2 的 \b 只認 ASCII，"sauté" 這類詞彙結尾會失效，
// 因此只用正規表示式找候選位置，邊界另外以 Unicode 字元類別判斷。
type termMatcher struct {
	term       string
	re         *regexp.Regexp
	checkStart bool
	checkEnd   bool
}

// match 一次匹配的位置與原文
type match struct {
	start int
	end   int
	text  string
}

func newTermMatcher(term string) *termMatcher {
	first, _ := utf8.DecodeRuneInString(term)
	last, _ := utf8.DecodeLastRuneInString(term)
	return &termMatcher{
		term:       term,
		re:         regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term)),
		checkStart: isWordRune(first),
		checkEnd:   isWordRune(last),
	}
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// bounded 匹配兩端是否落在詞邊界
func (m *termMatcher) bounded(text string, start, end int) bool {
	if m.checkStart && start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(prev) {
			return false
		}
	}
	if m.checkEnd && end < len(text) {
		next, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(next) {
			return false
		}
	}
	return true
}

// find 依出現順序回傳不重疊的整詞匹配，n < 0 表示全部
func (m *termMatcher) find(text string, n int) []match {
	var out []match
	offset := 0
	for offset < len(text) && (n < 0 || len(out) < n) {
		loc := m.re.FindStringIndex(text[offset:])
		if loc == nil {
			break
		}
		start, end := offset+loc[0], offset+loc[1]
		if end > start && m.bounded(text, start, end) {
			out = append(out, match{start: start, end: end, text: text[start:end]})
			offset = end
			continue
		}
		// 候選不在詞邊界上，往後挪一個字元再找
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + max(size, 1)
	}
	return out
}

func (m *termMatcher) findAll(text string) []match {
	return m.find(text, -1)
}

// contains 文字中是否至少有一個整詞匹配
func (m *termMatcher) contains(text string) bool {
	return len(m.find(text, 1)) > 0
}

// snippet 擷取匹配附近的文字，格式為 "...上下文..."
func snippet(text string, start, end int) string {
	from := start - contextRadius
	if from < 0 {
		from = 0
	}
	to := end + contextRadius
	if to > len(text) {
		to = len(text)
	}
	for from > 0 && !utf8.RuneStart(text[from]) {
		from--
	}
	for to < len(text) && !utf8.RuneStart(text[to]) {
		to++
	}
	return "..." + strings.TrimSpace(text[from:to]) + "..."
}
