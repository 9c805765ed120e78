package llm

import "strings"

// ExtractJSON locates the most plausible embedded JSON object in a model
// reply and returns it as a string. Models often wrap the payload in prose
// or markdown fences even when told not to, so candidates are tried in
// order of how strong a signal of intent they carry:
//
//  1. a fenced block tagged as JSON,
//  2. the first fenced block, if it holds a bare object,
//  3. the substring from the first '{' to the last '}',
//  4. the whole trimmed text, if it is brace-delimited.
//
// Only the first fenced block is considered, and no brace balancing is
// performed: the heuristic substring may over-capture when stray braces
// follow the real object. The returned candidate is not guaranteed to
// parse; callers must treat a parse failure as InvalidJSON, distinct from
// the no-candidate case reported by ok == false.
func ExtractJSON(text string) (candidate string, ok bool) {
	// Fenced block tagged as JSON.
	if idx := strings.Index(text, "```json"); idx >= 0 {
		start := idx + len("```json")
		if end := strings.Index(text[start:], "```"); end >= 0 {
			return strings.TrimSpace(text[start : start+end]), true
		}
	}

	// Any fenced block, provided it holds a bare object.
	if idx := strings.Index(text, "```"); idx >= 0 {
		start := idx + 3
		if end := strings.Index(text[start:], "```"); end >= 0 {
			inner := strings.TrimSpace(text[start : start+end])
			if strings.HasPrefix(inner, "{") && strings.HasSuffix(inner, "}") {
				return inner, true
			}
		}
	}

	// Substring spanning the first '{' and the last '}'.
	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first >= 0 && last > first {
		return text[first : last+1], true
	}

	// The whole text, if it already looks like an object.
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		return trimmed, true
	}

	return "", false
}
