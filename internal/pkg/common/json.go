package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ParseJSONBytes 解析 JSON 位元組切片到結構體，拒絕多餘資料
func ParseJSONBytes(data []byte, v interface{}) error {
	return decodeJSON(bytes.NewReader(data), v)
}

func decodeJSON(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return err
	}

	// 確保沒有多餘資料
	for {
		t, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if t != nil {
			return fmt.Errorf("unexpected extra JSON data")
		}
	}
}

var (
	unquotedKeyPattern = regexp.MustCompile(`([{\[,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	fencePattern       = regexp.MustCompile("(?s)```(?:json)?\\s*\\n(.*?)\\n?```")
	trailingComma      = regexp.MustCompile(`,\s*([}\]])`)
)

// QuoteJSONKeys 將未加雙引號的鍵補上雙引號
func QuoteJSONKeys(raw string) string {
	return unquotedKeyPattern.ReplaceAllString(raw, `$1"$2":`)
}

// ExtractJSONObject 從模型回應中取出 JSON 物件：先去除 markdown fence，再取第一個 { 到最後一個 }
func ExtractJSONObject(content string) string {
	content = strings.TrimSpace(content)
	if m := fencePattern.FindStringSubmatch(content); m != nil {
		content = strings.TrimSpace(m[1])
	}
	if start, end := strings.Index(content, "{"), strings.LastIndex(content, "}"); start != -1 && end > start {
		content = content[start : end+1]
	}
	return content
}

// ParseModelJSON 解析模型輸出的 JSON，失敗時修正未加引號的鍵與多餘逗號後重試
func ParseModelJSON(content string, v interface{}) error {
	raw := ExtractJSONObject(content)
	err := json.Unmarshal([]byte(raw), v)
	if err == nil {
		return nil
	}
	repaired := trailingComma.ReplaceAllString(QuoteJSONKeys(raw), "$1")
	if retryErr := json.Unmarshal([]byte(repaired), v); retryErr != nil {
		return fmt.Errorf("failed to parse model JSON: %w", err)
	}
	return nil
}
