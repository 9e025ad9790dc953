package answer

import "strings"

// sensitiveKeywords enumerates topics that always route to a human,
// regardless of any KB match. The check is containment against this fixed
// list, never inference.
var sensitiveKeywords = []string{
	"医療",
	"医薬品",
	"薬",
	"治療",
	"診断",
	"アレルギー",
	"妊娠",
}

// IsSensitive reports whether the message touches an enumerated sensitive
// topic.
func IsSensitive(message string) bool {
	for _, kw := range sensitiveKeywords {
		if strings.Contains(message, kw) {
			return true
		}
	}
	return false
}
