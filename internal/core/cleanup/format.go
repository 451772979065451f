package cleanup

import "fmt"

// FormatDuration 將秒數轉為易讀文字："45 seconds"、"2 minutes"、"3m 20s"
func FormatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%d seconds", seconds)
	}
	minutes := seconds / 60
	rest := seconds % 60
	if rest == 0 {
		if minutes == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", minutes)
	}
	return fmt.Sprintf("%dm %ds", minutes, rest)
}
