// Package llm - util.go provides response scrubbing helpers. Gemini wraps
// JSON in markdown fences or chat preamble often enough, even in JSON
// response mode, that extraction callers clean before unmarshalling.
package llm

import "strings"

// CleanJSONBlock strips a markdown code fence from around a response body.
// A language tag on the opening fence ("json", "javascript") is dropped too.
// Text without a fence passes through unchanged.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else {
		text = strings.TrimPrefix(text, "```")
		// The opening fence may carry a language tag on its own line.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			tag := strings.TrimSpace(text[:idx])
			if tag != "" && len(tag) < 20 && !strings.ContainsAny(tag, " {[") {
				text = text[idx+1:]
			}
		}
	}

	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// FirstJSONObject returns the first brace-balanced JSON object in text,
// tolerating conversational preamble before it and commentary after it.
// Braces inside JSON strings do not count. Returns "" when no complete
// object is present.
func FirstJSONObject(text string) string {
	start := strings.Index(text, "{")
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
